package ast

import (
	"pact/internal/source"
)

type Hints struct{ Units, Decls, Stmts, Exprs, Patterns, Types uint }

// Builder owns every arena of one AST plus the identifier interner.
type Builder struct {
	Units           *Units
	Decls           *Decls
	Stmts           *Stmts
	Exprs           *Exprs
	Patterns        *Patterns
	Types           *Types
	StringsInterner *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Units == 0 {
		hints.Units = 1 << 3
	}
	if hints.Decls == 0 {
		hints.Decls = 1 << 6
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Patterns == 0 {
		hints.Patterns = 1 << 7
	}
	if hints.Types == 0 {
		hints.Types = 1 << 6
	}
	return &Builder{
		Units:           NewUnits(hints.Units),
		Decls:           NewDecls(hints.Decls),
		Stmts:           NewStmts(hints.Stmts),
		Exprs:           NewExprs(hints.Exprs),
		Patterns:        NewPatterns(hints.Patterns),
		Types:           NewTypes(hints.Types),
		StringsInterner: source.NewInterner(),
	}
}

// PushDecl appends a top-level declaration to unit and widens the unit span.
func (b *Builder) PushDecl(unit UnitID, decl DeclID) {
	u := b.Units.Get(unit)
	u.Decls = append(u.Decls, decl)
	u.Span = u.Span.Cover(b.Decls.Get(decl).Span)
}
