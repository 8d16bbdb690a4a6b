package lexer

import (
	"pact/internal/token"
)

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// scanNumber сканирует целочисленный литерал: десятичный или 0x-шестнадцатеричный.
// Подчёркивания-разделители допускаются между цифрами.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	b0, b1, ok := lx.cursor.Peek2()
	if ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		digits := 0
		for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			if lx.cursor.Peek() != '_' {
				digits++
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		text := string(lx.file.Content[sp.Start:sp.End])
		if digits == 0 {
			lx.report(KindBadNumber, sp, "hex literal needs at least one digit")
			return token.Token{Kind: token.Invalid, Span: sp, Text: text}
		}
		return token.Token{Kind: token.IntLit, Span: sp, Text: text}
	}

	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// Цифра, за которой идёт буква — скорее всего опечатка, не два токена.
	if isIdentStartByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		text := string(lx.file.Content[sp.Start:sp.End])
		lx.report(KindBadNumber, sp, "malformed number literal '"+text+"'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	return token.Token{Kind: token.IntLit, Span: sp, Text: text}
}
