package ast

import (
	"pact/internal/source"
)

// DeclKind discriminates top-level declaration variants.
type DeclKind uint8

const (
	DeclStruct DeclKind = iota
	DeclEnum
	DeclFn
	DeclStorage
	DeclConst
)

func (k DeclKind) String() string {
	switch k {
	case DeclStruct:
		return "struct"
	case DeclEnum:
		return "enum"
	case DeclFn:
		return "function"
	case DeclStorage:
		return "storage"
	case DeclConst:
		return "constant"
	}
	return "unknown"
}

// Decl is the tagged header of a declaration; the payload lives in the
// per-kind arena selected by Kind. Span covers the full textual extent of the
// declaration, brace to brace.
type Decl struct {
	Kind    DeclKind
	Span    source.Span
	Payload PayloadID
}

type Decls struct {
	Arena    *Arena[Decl]
	Structs  *Arena[StructDecl]
	Enums    *Arena[EnumDecl]
	Fns      *Arena[FnDecl]
	Storages *Arena[StorageDecl]
	Consts   *Arena[ConstDecl]
}

func NewDecls(capHint uint) *Decls {
	return &Decls{
		Arena:    NewArena[Decl](capHint),
		Structs:  NewArena[StructDecl](capHint),
		Enums:    NewArena[EnumDecl](capHint),
		Fns:      NewArena[FnDecl](capHint),
		Storages: NewArena[StorageDecl](capHint),
		Consts:   NewArena[ConstDecl](capHint),
	}
}

func (d *Decls) New(kind DeclKind, span source.Span, payload PayloadID) DeclID {
	return DeclID(d.Arena.Allocate(Decl{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (d *Decls) Get(id DeclID) *Decl {
	return d.Arena.Get(uint32(id))
}
