package token

import (
	"pact/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwScript, KwLibrary, KwContract, KwPredicate, KwStruct, KwEnum,
		KwStorage, KwFn, KwLet, KwConst, KwMatch, KwReturn, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}
