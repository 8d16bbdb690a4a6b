package parser

import (
	"pact/internal/ast"
	"pact/internal/diag"
	"pact/internal/token"
)

// parseFnDecl разбирает `fn name(pattern: Type, ...) -> Type? { ... }`.
// Параметр — полноценный паттерн, так что деструктурирующие параметры
// проходят те же проверки формы, что и любые другие паттерны.
func (p *Parser) parseFnDecl() (ast.DeclID, bool) {
	kwTok := p.advance() // 'fn'

	name, nameSpan, ok := p.expectIdent("function name")
	if !ok {
		return ast.NoDeclID, false
	}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		return ast.NoDeclID, false
	}

	params := make([]ast.FnParam, 0, 4)
	for !p.at(token.RParen) && !p.at(token.EOF) {
		pattern, ok := p.parsePattern()
		if !ok {
			p.resyncUntil(token.Comma, token.RParen)
		} else {
			param := ast.FnParam{Pattern: pattern, Span: p.arenas.Patterns.Get(pattern).Span}
			if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after parameter pattern"); !ok {
				p.resyncUntil(token.Comma, token.RParen)
			} else {
				typeID, typeSpan, ok := p.parseType()
				if !ok {
					p.resyncUntil(token.Comma, token.RParen)
				} else {
					param.Type = typeID
					param.Span = param.Span.Cover(typeSpan)
				}
			}
			params = append(params, param)
		}
		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close parameter list"); !ok {
		return ast.NoDeclID, false
	}

	returnType := ast.NoTypeID
	if p.at(token.Arrow) {
		p.advance()
		typeID, _, ok := p.parseType()
		if !ok {
			return ast.NoDeclID, false
		}
		returnType = typeID
	}

	body, ok := p.parseBlockExpr()
	if !ok {
		return ast.NoDeclID, false
	}

	span := kwTok.Span.Cover(p.arenas.Exprs.Get(body).Span)
	return p.arenas.Decls.NewFn(name, nameSpan, params, returnType, body, span), true
}
