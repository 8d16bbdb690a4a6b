package parser

import (
	"pact/internal/ast"
	"pact/internal/diag"
	"pact/internal/source"
	"pact/internal/token"
)

// parseType разбирает ссылку на тип: идентификатор с опциональными
// `::`-сегментами.
func (p *Parser) parseType() (ast.TypeID, source.Span, bool) {
	if !p.at(token.Ident) {
		p.report(diag.SynExpectType, diag.SevError, p.lx.Peek().Span,
			"expected type, found "+p.lx.Peek().Kind.String())
		return ast.NoTypeID, source.Span{}, false
	}

	segs, span, ok := p.parsePathSegments("type name")
	if !ok {
		return ast.NoTypeID, source.Span{}, false
	}
	return p.arenas.Types.NewName(segs, span), span, true
}

// parsePathSegments читает `ident (:: ident)*`.
func (p *Parser) parsePathSegments(what string) ([]source.StringID, source.Span, bool) {
	name, span, ok := p.expectIdent(what)
	if !ok {
		return nil, source.Span{}, false
	}
	segs := []source.StringID{name}
	for p.at(token.ColonColon) {
		p.advance()
		seg, segSpan, ok := p.expectIdent(what + " segment")
		if !ok {
			return nil, source.Span{}, false
		}
		segs = append(segs, seg)
		span = span.Cover(segSpan)
	}
	return segs, span, true
}
