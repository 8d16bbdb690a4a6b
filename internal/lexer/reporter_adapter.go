package lexer

import (
	"pact/internal/diag"
	"pact/internal/source"
)

// ReporterAdapter translates the lexer's string error kinds into diag codes.
type ReporterAdapter struct {
	Bag *diag.Bag
}

func (a *ReporterAdapter) Reporter() Reporter {
	return reporterFunc(func(kind string, sp source.Span, msg string) {
		if a.Bag == nil {
			return
		}
		code := diag.LexInfo
		switch kind {
		case KindUnknownChar:
			code = diag.LexUnknownChar
		case KindUnterminatedString:
			code = diag.LexUnterminatedString
		case KindUnterminatedBlockComment:
			code = diag.LexUnterminatedBlockComment
		case KindBadNumber:
			code = diag.LexBadNumber
		}
		a.Bag.Add(diag.NewError(code, sp, msg))
	})
}

type reporterFunc func(kind string, sp source.Span, msg string)

func (f reporterFunc) Report(kind string, sp source.Span, msg string) {
	f(kind, sp, msg)
}
