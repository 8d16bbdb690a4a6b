package lexer

import (
	"pact/internal/source"
	"pact/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1-элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий **значимый** токен.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '_':
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '_' && isIdentContinueByte(b1) {
			return lx.scanIdentOrKeyword()
		}
		// одиночный "_" → токен Underscore
		return lx.scanOperatorOrPunct()

	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '"':
		return lx.scanString()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// skipTrivia consumes whitespace, line comments and block comments.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()

		case ch == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			case '*':
				lx.skipBlockComment()
			default:
				return
			}

		default:
			return
		}
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	depth := 1
	for !lx.cursor.EOF() {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '/' && b1 == '*' {
			depth++
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		}
		if ok && b0 == '*' && b1 == '/' {
			depth--
			lx.cursor.Bump()
			lx.cursor.Bump()
			if depth == 0 {
				return
			}
			continue
		}
		lx.cursor.Bump()
	}
	lx.report(KindUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
}
