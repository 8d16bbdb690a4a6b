package token

var keywords = map[string]Kind{
	"script":    KwScript,
	"library":   KwLibrary,
	"contract":  KwContract,
	"predicate": KwPredicate,
	"struct":    KwStruct,
	"enum":      KwEnum,
	"storage":   KwStorage,
	"fn":        KwFn,
	"let":       KwLet,
	"const":     KwConst,
	"match":     KwMatch,
	"return":    KwReturn,
	"true":      KwTrue,
	"false":     KwFalse,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsModuleKindKeyword reports whether k declares a module kind.
func IsModuleKindKeyword(k Kind) bool {
	switch k {
	case KwScript, KwLibrary, KwContract, KwPredicate:
		return true
	default:
		return false
	}
}
