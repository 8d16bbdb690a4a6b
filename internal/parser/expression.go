package parser

import (
	"pact/internal/ast"
	"pact/internal/diag"
	"pact/internal/token"
)

// binaryPrec возвращает приоритет бинарного оператора, 0 — не оператор.
func binaryPrec(k token.Kind) int {
	switch k {
	case token.PipePipe:
		return 1
	case token.AmpAmp:
		return 2
	case token.EqEq, token.BangEq:
		return 3
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return 4
	case token.Plus, token.Minus:
		return 5
	case token.Star, token.Slash, token.Percent:
		return 6
	default:
		return 0
	}
}

func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(1)
}

// parseBinaryExpr — precedence climbing над parsePostfixExpr.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parsePostfixExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		opTok := p.lx.Peek()
		prec := binaryPrec(opTok.Kind)
		if prec < minPrec || prec == 0 {
			return left, true
		}
		p.advance()

		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			return ast.NoExprID, false
		}

		span := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewBinary(opTok.Kind, left, right, span)
	}
}

// parsePostfixExpr разбирает первичное выражение с хвостом вызовов и
// обращений к полям.
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			p.advance()
			args := make([]ast.ExprID, 0, 4)
			for !p.at(token.RParen) && !p.at(token.EOF) {
				arg, ok := p.parseExpr()
				if !ok {
					p.resyncUntil(token.Comma, token.RParen)
				} else {
					args = append(args, arg)
				}
				if p.at(token.Comma) {
					p.advance()
				} else {
					break
				}
			}
			closeTok, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close argument list")
			if !ok {
				return ast.NoExprID, false
			}
			span := p.arenas.Exprs.Get(expr).Span.Cover(closeTok.Span)
			expr = p.arenas.Exprs.NewCall(expr, args, span)

		case token.Dot:
			p.advance()
			name, nameSpan, ok := p.expectIdent("field name")
			if !ok {
				return ast.NoExprID, false
			}
			span := p.arenas.Exprs.Get(expr).Span.Cover(nameSpan)
			expr = p.arenas.Exprs.NewField(expr, name, span)

		default:
			return expr, true
		}
	}
}

func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		return p.arenas.Exprs.NewLit(ast.LitInt, p.arenas.StringsInterner.Intern(tok.Text), tok.Span), true

	case token.StringLit:
		p.advance()
		return p.arenas.Exprs.NewLit(ast.LitString, p.arenas.StringsInterner.Intern(tok.Text), tok.Span), true

	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.arenas.Exprs.NewLit(ast.LitBool, p.arenas.StringsInterner.Intern(tok.Text), tok.Span), true

	case token.Ident:
		segs, span, ok := p.parsePathSegments("name")
		if !ok {
			return ast.NoExprID, false
		}
		if len(segs) == 1 {
			return p.arenas.Exprs.NewIdent(segs[0], span), true
		}
		return p.arenas.Exprs.NewPath(segs, span), true

	case token.KwMatch:
		return p.parseMatchExpr()

	case token.LBrace:
		return p.parseBlockExpr()

	case token.LParen:
		p.advance()
		expr, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'"); !ok {
			return ast.NoExprID, false
		}
		return expr, true

	default:
		p.report(diag.SynExpectExpression, diag.SevError, tok.Span,
			"expected expression, found "+tok.Kind.String())
		return ast.NoExprID, false
	}
}

// parseMatchExpr разбирает `match expr { pattern => expr, ... }`.
func (p *Parser) parseMatchExpr() (ast.ExprID, bool) {
	kwTok := p.advance() // 'match'

	scrutinee, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after match scrutinee"); !ok {
		return ast.NoExprID, false
	}

	arms := make([]ast.MatchArm, 0, 4)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		pattern, ok := p.parsePattern()
		if !ok {
			p.resyncUntil(token.Comma, token.RBrace)
		} else {
			if _, ok := p.expect(token.FatArrow, diag.SynUnexpectedToken, "expected '=>' after match pattern"); !ok {
				p.resyncUntil(token.Comma, token.RBrace)
			} else {
				body, ok := p.parseExpr()
				if !ok {
					p.resyncUntil(token.Comma, token.RBrace)
				} else {
					arms = append(arms, ast.MatchArm{
						Pattern: pattern,
						Body:    body,
						Span:    p.arenas.Patterns.Get(pattern).Span.Cover(p.arenas.Exprs.Get(body).Span),
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

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close match expression")
	if !ok {
		return ast.NoExprID, false
	}

	span := kwTok.Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewMatch(scrutinee, arms, span), true
}
