package ast

import (
	"pact/internal/source"
)

// Unit is one compilation unit: a module-kind header followed by an ordered
// sequence of top-level declarations.
type Unit struct {
	Kind     ModuleKind
	KindSpan source.Span // span of the header keyword
	Span     source.Span // whole unit
	Decls    []DeclID
}

type Units struct {
	Arena *Arena[Unit]
}

func NewUnits(capHint uint) *Units {
	return &Units{
		Arena: NewArena[Unit](capHint),
	}
}

func (u *Units) New(kind ModuleKind, kindSpan source.Span) UnitID {
	return UnitID(u.Arena.Allocate(Unit{
		Kind:     kind,
		KindSpan: kindSpan,
		Span:     kindSpan,
		Decls:    make([]DeclID, 0),
	}))
}

func (u *Units) Get(id UnitID) *Unit {
	return u.Arena.Get(uint32(id))
}
