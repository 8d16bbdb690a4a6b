package ast

import "pact/internal/source"

// StorageField is one `name: Type = init` entry of a storage block.
type StorageField struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID
	Init     ExprID // NoExprID when omitted
	Span     source.Span
}

// StorageDecl is a persistent-state block. It has no name of its own; its
// span runs from the `storage` keyword to the closing brace.
type StorageDecl struct {
	Fields []StorageField
	Span   source.Span
}

func (d *Decls) Storage(id DeclID) (*StorageDecl, bool) {
	decl := d.Arena.Get(uint32(id))
	if decl == nil || decl.Kind != DeclStorage {
		return nil, false
	}
	return d.Storages.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewStorage(fields []StorageField, span source.Span) DeclID {
	payload := PayloadID(d.Storages.Allocate(StorageDecl{
		Fields: fields,
		Span:   span,
	}))
	return d.New(DeclStorage, span, payload)
}
