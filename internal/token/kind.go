package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwScript represents the 'script' module-kind keyword.
	KwScript // script
	// KwLibrary represents the 'library' module-kind keyword.
	KwLibrary // library
	// KwContract represents the 'contract' module-kind keyword.
	KwContract // contract
	// KwPredicate represents the 'predicate' module-kind keyword.
	KwPredicate // predicate
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwStorage represents the 'storage' keyword.
	KwStorage // storage
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// IntLit represents an integer literal.
	IntLit
	// StringLit represents a string literal.
	StringLit

	// Punctuation and operators.
	LParen     // (
	RParen     // )
	LBrace     // {
	RBrace     // }
	LBracket   // [
	RBracket   // ]
	Comma      // ,
	Colon      // :
	ColonColon // ::
	Semicolon  // ;
	Dot        // .
	DotDot     // ..
	Arrow      // ->
	FatArrow   // =>
	Assign     // =
	EqEq       // ==
	Bang       // !
	BangEq     // !=
	Lt         // <
	LtEq       // <=
	Gt         // >
	GtEq       // >=
	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	Percent    // %
	Amp        // &
	AmpAmp     // &&
	Pipe       // |
	PipePipe   // ||
	Underscore // _
)

var kindNames = map[Kind]string{
	Invalid:     "invalid",
	EOF:         "eof",
	Ident:       "identifier",
	KwScript:    "'script'",
	KwLibrary:   "'library'",
	KwContract:  "'contract'",
	KwPredicate: "'predicate'",
	KwStruct:    "'struct'",
	KwEnum:      "'enum'",
	KwStorage:   "'storage'",
	KwFn:        "'fn'",
	KwLet:       "'let'",
	KwConst:     "'const'",
	KwMatch:     "'match'",
	KwReturn:    "'return'",
	KwTrue:      "'true'",
	KwFalse:     "'false'",
	IntLit:      "integer literal",
	StringLit:   "string literal",
	LParen:      "'('",
	RParen:      "')'",
	LBrace:      "'{'",
	RBrace:      "'}'",
	LBracket:    "'['",
	RBracket:    "']'",
	Comma:       "','",
	Colon:       "':'",
	ColonColon:  "'::'",
	Semicolon:   "';'",
	Dot:         "'.'",
	DotDot:      "'..'",
	Arrow:       "'->'",
	FatArrow:    "'=>'",
	Assign:      "'='",
	EqEq:        "'=='",
	Bang:        "'!'",
	BangEq:      "'!='",
	Lt:          "'<'",
	LtEq:        "'<='",
	Gt:          "'>'",
	GtEq:        "'>='",
	Plus:        "'+'",
	Minus:       "'-'",
	Star:        "'*'",
	Slash:       "'/'",
	Percent:     "'%'",
	Amp:         "'&'",
	AmpAmp:      "'&&'",
	Pipe:        "'|'",
	PipePipe:    "'||'",
	Underscore:  "'_'",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
