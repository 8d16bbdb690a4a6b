package ast

import "pact/internal/source"

// EnumVariant is one variant of an enum declaration. Elems are the payload
// types of a tuple-style variant; a unit variant has none.
type EnumVariant struct {
	Name     source.StringID
	NameSpan source.Span
	Elems    []TypeID
	Span     source.Span
}

type EnumDecl struct {
	Name     source.StringID
	NameSpan source.Span
	Variants []EnumVariant
	Span     source.Span
}

func (d *Decls) Enum(id DeclID) (*EnumDecl, bool) {
	decl := d.Arena.Get(uint32(id))
	if decl == nil || decl.Kind != DeclEnum {
		return nil, false
	}
	return d.Enums.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewEnum(name source.StringID, nameSpan source.Span, variants []EnumVariant, span source.Span) DeclID {
	payload := PayloadID(d.Enums.Allocate(EnumDecl{
		Name:     name,
		NameSpan: nameSpan,
		Variants: variants,
		Span:     span,
	}))
	return d.New(DeclEnum, span, payload)
}
