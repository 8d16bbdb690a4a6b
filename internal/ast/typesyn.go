package ast

import "pact/internal/source"

// TypeKind discriminates type-syntax variants.
type TypeKind uint8

const (
	// TypeName is a plain named type reference (possibly path-qualified).
	TypeName TypeKind = iota
)

// Type is a type annotation as written in source, not a resolved type.
type Type struct {
	Kind TypeKind
	Segs []source.StringID
	Span source.Span
}

type Types struct {
	Arena *Arena[Type]
}

func NewTypes(capHint uint) *Types {
	return &Types{
		Arena: NewArena[Type](capHint),
	}
}

func (t *Types) NewName(segs []source.StringID, span source.Span) TypeID {
	return TypeID(t.Arena.Allocate(Type{
		Kind: TypeName,
		Segs: segs,
		Span: span,
	}))
}

func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}
