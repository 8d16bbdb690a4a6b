package parser

import (
	"fmt"

	"pact/internal/diag"
	"pact/internal/source"
	"pact/internal/token"
)

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// advance потребляет текущий токен и запоминает его span.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// expect потребляет токен требуемого типа или репортит ошибку.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.report(code, diag.SevError, p.lx.Peek().Span, msg)
	return token.Token{}, false
}

// expectIdent потребляет идентификатор и возвращает его интернированное имя.
func (p *Parser) expectIdent(what string) (source.StringID, source.Span, bool) {
	if !p.at(token.Ident) {
		p.report(diag.SynExpectIdentifier, diag.SevError, p.lx.Peek().Span,
			fmt.Sprintf("expected %s, found %s", what, p.lx.Peek().Kind))
		return source.NoStringID, source.Span{}, false
	}
	tok := p.advance()
	return p.arenas.StringsInterner.Intern(tok.Text), tok.Span, true
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if sev >= diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}
