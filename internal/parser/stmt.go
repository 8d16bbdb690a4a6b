package parser

import (
	"pact/internal/ast"
	"pact/internal/diag"
	"pact/internal/token"
)

// parseBlockExpr разбирает `{ stmt* tail? }` как выражение-блок.
// Выражение без завершающей ';' перед '}' становится tail-значением блока.
func (p *Parser) parseBlockExpr() (ast.ExprID, bool) {
	openTok, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return ast.NoExprID, false
	}

	stmts := make([]ast.StmtID, 0, 4)
	tail := ast.NoExprID

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		switch p.lx.Peek().Kind {
		case token.KwLet:
			if stmt, ok := p.parseLetStmt(); ok {
				stmts = append(stmts, stmt)
			} else {
				p.resyncUntil(token.Semicolon, token.RBrace)
				if p.at(token.Semicolon) {
					p.advance()
				}
			}

		case token.KwReturn:
			if stmt, ok := p.parseReturnStmt(); ok {
				stmts = append(stmts, stmt)
			} else {
				p.resyncUntil(token.Semicolon, token.RBrace)
				if p.at(token.Semicolon) {
					p.advance()
				}
			}

		default:
			expr, ok := p.parseExpr()
			if !ok {
				p.resyncUntil(token.Semicolon, token.RBrace)
				if p.at(token.Semicolon) {
					p.advance()
				}
				continue
			}
			exprSpan := p.arenas.Exprs.Get(expr).Span
			if p.at(token.Semicolon) {
				semi := p.advance()
				stmts = append(stmts, p.arenas.Stmts.NewExpr(expr, exprSpan.Cover(semi.Span)))
			} else {
				// выражение без ';' допустимо только последним в блоке
				tail = expr
				if !p.at(token.RBrace) {
					p.report(diag.SynExpectSemicolon, diag.SevError, p.lx.Peek().Span,
						"expected ';' after expression statement")
					p.resyncUntil(token.Semicolon, token.RBrace)
					if p.at(token.Semicolon) {
						p.advance()
					}
				}
			}
		}
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close block")
	if !ok {
		return ast.NoExprID, false
	}

	span := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewBlock(stmts, tail, span), true
}

// parseLetStmt разбирает `let PATTERN (: Type)? = expr;`.
func (p *Parser) parseLetStmt() (ast.StmtID, bool) {
	kwTok := p.advance() // 'let'

	pattern, ok := p.parsePattern()
	if !ok {
		return ast.NoStmtID, false
	}

	typeID := ast.NoTypeID
	if p.at(token.Colon) {
		p.advance()
		t, _, ok := p.parseType()
		if !ok {
			return ast.NoStmtID, false
		}
		typeID = t
	}

	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in let binding"); !ok {
		return ast.NoStmtID, false
	}

	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	span := kwTok.Span.Cover(p.arenas.Exprs.Get(value).Span)
	if semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after let binding"); ok {
		span = span.Cover(semi.Span)
	}
	return p.arenas.Stmts.NewLet(pattern, typeID, value, span), true
}

// parseReturnStmt разбирает `return expr?;`.
func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	kwTok := p.advance() // 'return'
	span := kwTok.Span

	value := ast.NoExprID
	if !p.at(token.Semicolon) {
		expr, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		value = expr
		span = span.Cover(p.arenas.Exprs.Get(expr).Span)
	}

	if semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return"); ok {
		span = span.Cover(semi.Span)
	}
	return p.arenas.Stmts.NewReturn(value, span), true
}
