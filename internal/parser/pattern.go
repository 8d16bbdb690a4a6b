package parser

import (
	"pact/internal/ast"
	"pact/internal/diag"
	"pact/internal/source"
	"pact/internal/token"
)

// parsePattern разбирает деструктурирующий паттерн:
//
//	_                      wildcard
//	42 / "s" / true        литерал
//	name                   binding
//	Name { f: pat, f, .. } struct pattern
//	Name(pat, .., pat)     tuple-struct pattern
//	Path::Variant(...)     enum-variant pattern (также { ... } и unit-форма)
//
// Порядок элементов списков полей сохраняется ровно как в исходнике —
// на нём держится проверка формы rest-паттерна.
func (p *Parser) parsePattern() (ast.PatternID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Underscore:
		p.advance()
		return p.arenas.Patterns.NewWildcard(tok.Span), true

	case token.IntLit:
		p.advance()
		return p.arenas.Patterns.NewLit(ast.LitInt, p.arenas.StringsInterner.Intern(tok.Text), tok.Span), true

	case token.StringLit:
		p.advance()
		return p.arenas.Patterns.NewLit(ast.LitString, p.arenas.StringsInterner.Intern(tok.Text), tok.Span), true

	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.arenas.Patterns.NewLit(ast.LitBool, p.arenas.StringsInterner.Intern(tok.Text), tok.Span), true

	case token.Ident:
		return p.parseNamedPattern()

	default:
		p.report(diag.SynExpectPattern, diag.SevError, tok.Span,
			"expected pattern, found "+tok.Kind.String())
		return ast.NoPatternID, false
	}
}

// parseNamedPattern различает binding, struct, tuple-struct и enum-variant
// паттерны по тому, что идёт за именем.
func (p *Parser) parseNamedPattern() (ast.PatternID, bool) {
	segs, pathSpan, ok := p.parsePathSegments("pattern name")
	if !ok {
		return ast.NoPatternID, false
	}

	qualified := len(segs) > 1
	switch {
	case p.at(token.LBrace):
		fields, closeSpan, ok := p.parseFieldPatterns(token.LBrace, token.RBrace)
		if !ok {
			return ast.NoPatternID, false
		}
		span := pathSpan.Cover(closeSpan)
		if qualified {
			return p.arenas.Patterns.NewEnumVariant(segs, pathSpan, fields, true, span), true
		}
		return p.arenas.Patterns.NewStruct(segs[0], pathSpan, fields, span), true

	case p.at(token.LParen):
		elems, closeSpan, ok := p.parseFieldPatterns(token.LParen, token.RParen)
		if !ok {
			return ast.NoPatternID, false
		}
		span := pathSpan.Cover(closeSpan)
		if qualified {
			return p.arenas.Patterns.NewEnumVariant(segs, pathSpan, elems, false, span), true
		}
		return p.arenas.Patterns.NewTupleStruct(segs[0], pathSpan, elems, span), true

	default:
		if qualified {
			// unit-вариант: Path::Variant без аргументов
			return p.arenas.Patterns.NewEnumVariant(segs, pathSpan, nil, false, pathSpan), true
		}
		return p.arenas.Patterns.NewBinding(segs[0], pathSpan), true
	}
}

// parseFieldPatterns читает список элементов паттерна между open и close.
// В фигурных скобках элементы именованные (`name: pat` или shorthand `name`),
// в круглых — позиционные; `..` допускается в обоих видах списков.
func (p *Parser) parseFieldPatterns(open, close token.Kind) ([]ast.FieldPat, source.Span, bool) {
	braced := open == token.LBrace
	p.advance() // open

	fields := make([]ast.FieldPat, 0, 4)
	for !p.at(close) && !p.at(token.EOF) {
		if p.at(token.DotDot) {
			restTok := p.advance()
			fields = append(fields, ast.FieldPat{
				Kind: ast.FieldPatRest,
				Span: restTok.Span,
			})
		} else if braced {
			field, ok := p.parseNamedFieldPattern()
			if !ok {
				p.resyncUntil(token.Comma, close)
			} else {
				fields = append(fields, field)
			}
		} else {
			sub, ok := p.parsePattern()
			if !ok {
				p.resyncUntil(token.Comma, close)
			} else {
				fields = append(fields, ast.FieldPat{
					Kind: ast.FieldPatPositional,
					Sub:  sub,
					Span: p.arenas.Patterns.Get(sub).Span,
				})
			}
		}
		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	closeTok, ok := p.expect(close, diag.SynUnclosedDelimiter,
		"expected "+close.String()+" to close pattern")
	if !ok {
		return nil, source.Span{}, false
	}
	return fields, closeTok.Span, true
}

// parseNamedFieldPattern читает `name: pattern` или shorthand `name`.
func (p *Parser) parseNamedFieldPattern() (ast.FieldPat, bool) {
	name, nameSpan, ok := p.expectIdent("field name")
	if !ok {
		return ast.FieldPat{}, false
	}

	if !p.at(token.Colon) {
		// shorthand: `x` связывает поле x с одноимённой переменной
		sub := p.arenas.Patterns.NewBinding(name, nameSpan)
		return ast.FieldPat{
			Kind: ast.FieldPatNamed,
			Name: name,
			Sub:  sub,
			Span: nameSpan,
		}, true
	}
	p.advance()

	sub, ok := p.parsePattern()
	if !ok {
		return ast.FieldPat{}, false
	}
	return ast.FieldPat{
		Kind: ast.FieldPatNamed,
		Name: name,
		Sub:  sub,
		Span: nameSpan.Cover(p.arenas.Patterns.Get(sub).Span),
	}, true
}
