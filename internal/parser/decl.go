package parser

import (
	"pact/internal/ast"
	"pact/internal/diag"
	"pact/internal/token"
)

// parseStructDecl разбирает `struct Name { field: Type, ... }`.
func (p *Parser) parseStructDecl() (ast.DeclID, bool) {
	kwTok := p.advance() // 'struct'

	name, nameSpan, ok := p.expectIdent("struct name")
	if !ok {
		return ast.NoDeclID, false
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after struct name"); !ok {
		return ast.NoDeclID, false
	}

	fields := make([]ast.StructField, 0, 4)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fieldName, fieldNameSpan, ok := p.expectIdent("field name")
		if !ok {
			p.resyncUntil(token.Comma, token.RBrace)
		} else {
			if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after field name"); !ok {
				p.resyncUntil(token.Comma, token.RBrace)
			} else {
				typeID, typeSpan, ok := p.parseType()
				if !ok {
					p.resyncUntil(token.Comma, token.RBrace)
				} else {
					fields = append(fields, ast.StructField{
						Name:     fieldName,
						NameSpan: fieldNameSpan,
						Type:     typeID,
						Span:     fieldNameSpan.Cover(typeSpan),
					})
				}
			}
		}
		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close struct declaration")
	if !ok {
		return ast.NoDeclID, false
	}

	span := kwTok.Span.Cover(closeTok.Span)
	return p.arenas.Decls.NewStruct(name, nameSpan, fields, span), true
}

// parseEnumDecl разбирает `enum Name { Variant, Variant(Type, ...), ... }`.
func (p *Parser) parseEnumDecl() (ast.DeclID, bool) {
	kwTok := p.advance() // 'enum'

	name, nameSpan, ok := p.expectIdent("enum name")
	if !ok {
		return ast.NoDeclID, false
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after enum name"); !ok {
		return ast.NoDeclID, false
	}

	variants := make([]ast.EnumVariant, 0, 4)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		varName, varNameSpan, ok := p.expectIdent("variant name")
		if !ok {
			p.resyncUntil(token.Comma, token.RBrace)
		} else {
			variant := ast.EnumVariant{Name: varName, NameSpan: varNameSpan, Span: varNameSpan}
			if p.at(token.LParen) {
				p.advance()
				for !p.at(token.RParen) && !p.at(token.EOF) {
					typeID, _, ok := p.parseType()
					if !ok {
						p.resyncUntil(token.Comma, token.RParen)
					} else {
						variant.Elems = append(variant.Elems, typeID)
					}
					if p.at(token.Comma) {
						p.advance()
					} else {
						break
					}
				}
				closeTok, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close variant payload")
				if ok {
					variant.Span = variant.Span.Cover(closeTok.Span)
				}
			}
			variants = append(variants, variant)
		}
		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close enum declaration")
	if !ok {
		return ast.NoDeclID, false
	}

	span := kwTok.Span.Cover(closeTok.Span)
	return p.arenas.Decls.NewEnum(name, nameSpan, variants, span), true
}

// parseStorageDecl разбирает `storage { name: Type = init, ... }`.
// Span декларации — от ключевого слова до закрывающей скобки включительно.
func (p *Parser) parseStorageDecl() (ast.DeclID, bool) {
	kwTok := p.advance() // 'storage'

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after 'storage'"); !ok {
		return ast.NoDeclID, false
	}

	fields := make([]ast.StorageField, 0, 4)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fieldName, fieldNameSpan, ok := p.expectIdent("storage field name")
		if !ok {
			p.resyncUntil(token.Comma, token.RBrace)
		} else {
			if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after storage field name"); !ok {
				p.resyncUntil(token.Comma, token.RBrace)
			} else {
				typeID, typeSpan, ok := p.parseType()
				if !ok {
					p.resyncUntil(token.Comma, token.RBrace)
				} else {
					field := ast.StorageField{
						Name:     fieldName,
						NameSpan: fieldNameSpan,
						Type:     typeID,
						Span:     fieldNameSpan.Cover(typeSpan),
					}
					if p.at(token.Assign) {
						p.advance()
						if init, ok := p.parseExpr(); ok {
							field.Init = init
							field.Span = field.Span.Cover(p.arenas.Exprs.Get(init).Span)
						} else {
							p.resyncUntil(token.Comma, token.RBrace)
						}
					}
					fields = append(fields, field)
				}
			}
		}
		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close storage block")
	if !ok {
		return ast.NoDeclID, false
	}

	span := kwTok.Span.Cover(closeTok.Span)
	return p.arenas.Decls.NewStorage(fields, span), true
}

// parseConstDecl разбирает `const NAME: Type = expr;`.
func (p *Parser) parseConstDecl() (ast.DeclID, bool) {
	kwTok := p.advance() // 'const'

	name, nameSpan, ok := p.expectIdent("constant name")
	if !ok {
		return ast.NoDeclID, false
	}

	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after constant name"); !ok {
		return ast.NoDeclID, false
	}
	typeID, _, ok := p.parseType()
	if !ok {
		return ast.NoDeclID, false
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in constant declaration"); !ok {
		return ast.NoDeclID, false
	}
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoDeclID, false
	}

	span := kwTok.Span.Cover(p.arenas.Exprs.Get(value).Span)
	if semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after constant declaration"); ok {
		span = span.Cover(semi.Span)
	}
	return p.arenas.Decls.NewConst(name, nameSpan, typeID, value, span), true
}
