package ast

import "pact/internal/source"

type ConstDecl struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID
	Value    ExprID
	Span     source.Span
}

func (d *Decls) Const(id DeclID) (*ConstDecl, bool) {
	decl := d.Arena.Get(uint32(id))
	if decl == nil || decl.Kind != DeclConst {
		return nil, false
	}
	return d.Consts.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewConst(name source.StringID, nameSpan source.Span, typeID TypeID, value ExprID, span source.Span) DeclID {
	payload := PayloadID(d.Consts.Allocate(ConstDecl{
		Name:     name,
		NameSpan: nameSpan,
		Type:     typeID,
		Value:    value,
		Span:     span,
	}))
	return d.New(DeclConst, span, payload)
}
