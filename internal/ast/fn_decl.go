package ast

import "pact/internal/source"

// FnParam is one function parameter. The binding side is a full pattern, so
// destructuring parameters carry the same shape rules as any other pattern.
type FnParam struct {
	Pattern PatternID
	Type    TypeID
	Span    source.Span
}

type FnDecl struct {
	Name       source.StringID
	NameSpan   source.Span
	Params     []FnParam
	ReturnType TypeID // NoTypeID when omitted
	Body       ExprID // always an ExprBlock
	Span       source.Span
}

func (d *Decls) Fn(id DeclID) (*FnDecl, bool) {
	decl := d.Arena.Get(uint32(id))
	if decl == nil || decl.Kind != DeclFn {
		return nil, false
	}
	return d.Fns.Get(uint32(decl.Payload)), true
}

func (d *Decls) NewFn(
	name source.StringID,
	nameSpan source.Span,
	params []FnParam,
	returnType TypeID,
	body ExprID,
	span source.Span,
) DeclID {
	payload := PayloadID(d.Fns.Allocate(FnDecl{
		Name:       name,
		NameSpan:   nameSpan,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		Span:       span,
	}))
	return d.New(DeclFn, span, payload)
}
