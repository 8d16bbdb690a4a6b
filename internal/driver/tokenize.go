package driver

import (
	"pact/internal/diag"
	"pact/internal/lexer"
	"pact/internal/source"
	"pact/internal/token"
)

// TokenizeResult содержит токены одного файла и собранную диагностику.
type TokenizeResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// Tokenize загружает файл и прогоняет только лексер, без парсера.
func Tokenize(fs *source.FileSet, path string, maxDiagnostics int) (TokenizeResult, error) {
	fileID, err := fs.Load(path)
	if err != nil {
		return TokenizeResult{Path: path}, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: (&lexer.ReporterAdapter{Bag: bag}).Reporter(),
	})

	// Собираем все токены до EOF включительно.
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return TokenizeResult{
		Path:   path,
		FileID: fileID,
		Tokens: tokens,
		Bag:    bag,
	}, nil
}
