package lexer

import (
	"fmt"

	"pact/internal/token"
)

// scanOperatorOrPunct сканирует операторы и пунктуацию с жадным
// сопоставлением двухсимвольных последовательностей.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b0 := lx.cursor.Bump()

	kind := token.Invalid
	switch b0 {
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semicolon
	case '_':
		kind = token.Underscore
	case '+':
		kind = token.Plus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case ':':
		kind = token.Colon
		if lx.cursor.Peek() == ':' {
			lx.cursor.Bump()
			kind = token.ColonColon
		}
	case '.':
		kind = token.Dot
		if lx.cursor.Peek() == '.' {
			lx.cursor.Bump()
			kind = token.DotDot
		}
	case '-':
		kind = token.Minus
		if lx.cursor.Peek() == '>' {
			lx.cursor.Bump()
			kind = token.Arrow
		}
	case '=':
		kind = token.Assign
		switch lx.cursor.Peek() {
		case '=':
			lx.cursor.Bump()
			kind = token.EqEq
		case '>':
			lx.cursor.Bump()
			kind = token.FatArrow
		}
	case '!':
		kind = token.Bang
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.BangEq
		}
	case '<':
		kind = token.Lt
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.LtEq
		}
	case '>':
		kind = token.Gt
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.GtEq
		}
	case '&':
		kind = token.Amp
		if lx.cursor.Peek() == '&' {
			lx.cursor.Bump()
			kind = token.AmpAmp
		}
	case '|':
		kind = token.Pipe
		if lx.cursor.Peek() == '|' {
			lx.cursor.Bump()
			kind = token.PipePipe
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if kind == token.Invalid {
		lx.report(KindUnknownChar, sp, fmt.Sprintf("unknown character %q", text))
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
