package ast

import (
	"pact/internal/source"
	"pact/internal/token"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprPath
	ExprLit
	ExprCall
	ExprField
	ExprBinary
	ExprMatch
	ExprBlock
)

// LitKind discriminates literal payloads.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitString
	LitBool
)

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type IdentExpr struct {
	Name source.StringID
}

// PathExpr is a `::`-separated name like Color::Red.
type PathExpr struct {
	Segs []source.StringID
}

type LitExpr struct {
	Lit  LitKind
	Text source.StringID // raw source text of the literal
}

type CallExpr struct {
	Callee ExprID
	Args   []ExprID
}

type FieldExpr struct {
	Recv ExprID
	Name source.StringID
}

type BinaryExpr struct {
	Op          token.Kind
	Left, Right ExprID
}

// MatchArm is `pattern => expr`.
type MatchArm struct {
	Pattern PatternID
	Body    ExprID
	Span    source.Span
}

type MatchExpr struct {
	Scrutinee ExprID
	Arms      []MatchArm
}

// BlockExpr is `{ stmts... tail? }`; Tail is the trailing expression without
// a semicolon, NoExprID when absent.
type BlockExpr struct {
	Stmts []StmtID
	Tail  ExprID
}

type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[IdentExpr]
	Paths    *Arena[PathExpr]
	Lits     *Arena[LitExpr]
	Calls    *Arena[CallExpr]
	Fields   *Arena[FieldExpr]
	Binaries *Arena[BinaryExpr]
	Matches  *Arena[MatchExpr]
	Blocks   *Arena[BlockExpr]
}

func NewExprs(capHint uint) *Exprs {
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[IdentExpr](capHint),
		Paths:    NewArena[PathExpr](capHint),
		Lits:     NewArena[LitExpr](capHint),
		Calls:    NewArena[CallExpr](capHint),
		Fields:   NewArena[FieldExpr](capHint),
		Binaries: NewArena[BinaryExpr](capHint),
		Matches:  NewArena[MatchExpr](capHint),
		Blocks:   NewArena[BlockExpr](capHint),
	}
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) newExpr(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

func (e *Exprs) NewIdent(name source.StringID, span source.Span) ExprID {
	return e.newExpr(ExprIdent, span, PayloadID(e.Idents.Allocate(IdentExpr{Name: name})))
}

func (e *Exprs) NewPath(segs []source.StringID, span source.Span) ExprID {
	return e.newExpr(ExprPath, span, PayloadID(e.Paths.Allocate(PathExpr{Segs: segs})))
}

func (e *Exprs) NewLit(lit LitKind, text source.StringID, span source.Span) ExprID {
	return e.newExpr(ExprLit, span, PayloadID(e.Lits.Allocate(LitExpr{Lit: lit, Text: text})))
}

func (e *Exprs) NewCall(callee ExprID, args []ExprID, span source.Span) ExprID {
	return e.newExpr(ExprCall, span, PayloadID(e.Calls.Allocate(CallExpr{Callee: callee, Args: args})))
}

func (e *Exprs) NewField(recv ExprID, name source.StringID, span source.Span) ExprID {
	return e.newExpr(ExprField, span, PayloadID(e.Fields.Allocate(FieldExpr{Recv: recv, Name: name})))
}

func (e *Exprs) NewBinary(op token.Kind, left, right ExprID, span source.Span) ExprID {
	return e.newExpr(ExprBinary, span, PayloadID(e.Binaries.Allocate(BinaryExpr{Op: op, Left: left, Right: right})))
}

func (e *Exprs) NewMatch(scrutinee ExprID, arms []MatchArm, span source.Span) ExprID {
	return e.newExpr(ExprMatch, span, PayloadID(e.Matches.Allocate(MatchExpr{Scrutinee: scrutinee, Arms: arms})))
}

func (e *Exprs) NewBlock(stmts []StmtID, tail ExprID, span source.Span) ExprID {
	return e.newExpr(ExprBlock, span, PayloadID(e.Blocks.Allocate(BlockExpr{Stmts: stmts, Tail: tail})))
}

func (e *Exprs) Ident(id ExprID) (*IdentExpr, bool)   { return payload(e, id, ExprIdent, e.Idents) }
func (e *Exprs) Path(id ExprID) (*PathExpr, bool)     { return payload(e, id, ExprPath, e.Paths) }
func (e *Exprs) Lit(id ExprID) (*LitExpr, bool)       { return payload(e, id, ExprLit, e.Lits) }
func (e *Exprs) Call(id ExprID) (*CallExpr, bool)     { return payload(e, id, ExprCall, e.Calls) }
func (e *Exprs) Field(id ExprID) (*FieldExpr, bool)   { return payload(e, id, ExprField, e.Fields) }
func (e *Exprs) Binary(id ExprID) (*BinaryExpr, bool) { return payload(e, id, ExprBinary, e.Binaries) }
func (e *Exprs) Match(id ExprID) (*MatchExpr, bool)   { return payload(e, id, ExprMatch, e.Matches) }
func (e *Exprs) Block(id ExprID) (*BlockExpr, bool)   { return payload(e, id, ExprBlock, e.Blocks) }

func payload[T any](e *Exprs, id ExprID, kind ExprKind, arena *Arena[T]) (*T, bool) {
	expr := e.Arena.Get(uint32(id))
	if expr == nil || expr.Kind != kind {
		return nil, false
	}
	return arena.Get(uint32(expr.Payload)), true
}
