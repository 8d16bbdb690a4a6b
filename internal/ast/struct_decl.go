package ast

import "pact/internal/source"

// StructField is one `name: Type` entry of a struct declaration.
type StructField struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID
	Span     source.Span
}

type StructDecl struct {
	Name     source.StringID
	NameSpan source.Span
	Fields   []StructField
	Span     source.Span
}

func (d *Decls) Struct(id DeclID) (*StructDecl, bool) {
	decl := d.Arena.Get(uint32(id))
	if decl == nil || decl.Kind != DeclStruct {
		return nil, false
	}
	return d.Structs.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewStruct(name source.StringID, nameSpan source.Span, fields []StructField, span source.Span) DeclID {
	payload := PayloadID(d.Structs.Allocate(StructDecl{
		Name:     name,
		NameSpan: nameSpan,
		Fields:   fields,
		Span:     span,
	}))
	return d.New(DeclStruct, span, payload)
}
