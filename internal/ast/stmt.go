package ast

import "pact/internal/source"

type StmtKind uint8

const (
	StmtLet StmtKind = iota
	StmtExpr
	StmtReturn
)

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// LetStmt binds a pattern to a value: `let PATTERN (: Type)? = expr;`.
type LetStmt struct {
	Pattern PatternID
	Type    TypeID // NoTypeID when inferred
	Value   ExprID
	Span    source.Span
}

type ExprStmt struct {
	Expr ExprID
	Span source.Span
}

type ReturnStmt struct {
	Value ExprID // NoExprID for bare `return;`
	Span  source.Span
}

type Stmts struct {
	Arena   *Arena[Stmt]
	Lets    *Arena[LetStmt]
	Exprs   *Arena[ExprStmt]
	Returns *Arena[ReturnStmt]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Lets:    NewArena[LetStmt](capHint),
		Exprs:   NewArena[ExprStmt](capHint),
		Returns: NewArena[ReturnStmt](capHint),
	}
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) Let(id StmtID) (*LetStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) Expr(id StmtID) (*ExprStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) Return(id StmtID) (*ReturnStmt, bool) {
	stmt := s.Arena.Get(uint32(id))
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewLet(pattern PatternID, typeID TypeID, value ExprID, span source.Span) StmtID {
	payload := PayloadID(s.Lets.Allocate(LetStmt{Pattern: pattern, Type: typeID, Value: value, Span: span}))
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtLet, Span: span, Payload: payload}))
}

func (s *Stmts) NewExpr(expr ExprID, span source.Span) StmtID {
	payload := PayloadID(s.Exprs.Allocate(ExprStmt{Expr: expr, Span: span}))
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtExpr, Span: span, Payload: payload}))
}

func (s *Stmts) NewReturn(value ExprID, span source.Span) StmtID {
	payload := PayloadID(s.Returns.Allocate(ReturnStmt{Value: value, Span: span}))
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtReturn, Span: span, Payload: payload}))
}
