package ast

import "pact/internal/source"

// PatternKind discriminates destructuring-pattern variants.
type PatternKind uint8

const (
	PatWildcard PatternKind = iota
	PatBinding
	PatLit
	PatStruct
	PatTupleStruct
	PatEnumVariant
)

// FieldPatKind discriminates the elements of a field-pattern sequence.
type FieldPatKind uint8

const (
	// FieldPatNamed is `name: subpattern` or the shorthand `name`.
	FieldPatNamed FieldPatKind = iota
	// FieldPatPositional is a bare sub-pattern in a tuple-struct or
	// enum-variant argument list.
	FieldPatPositional
	// FieldPatRest is the `..` marker matching all unmentioned fields.
	FieldPatRest
)

// FieldPat is one element of a field-pattern sequence. Element order is
// exactly source order; the pattern-shape rules depend on it.
type FieldPat struct {
	Kind FieldPatKind
	Name source.StringID // FieldPatNamed only
	Sub  PatternID       // NoPatternID for FieldPatRest
	Span source.Span
}

type Pattern struct {
	Kind    PatternKind
	Span    source.Span
	Payload PayloadID
}

type BindingPat struct {
	Name source.StringID
}

type LitPat struct {
	Lit  LitKind
	Text source.StringID
}

// StructPat is `Name { field: pat, field, .. }`.
type StructPat struct {
	Name     source.StringID
	NameSpan source.Span
	Fields   []FieldPat
}

// TupleStructPat is `Name(pat, pat, ..)`.
type TupleStructPat struct {
	Name     source.StringID
	NameSpan source.Span
	Elems    []FieldPat
}

// EnumVariantPat is `Enum::Variant(...)` or `Enum::Variant { ... }`.
type EnumVariantPat struct {
	Segs     []source.StringID
	PathSpan source.Span
	Elems    []FieldPat
	Braced   bool
}

type Patterns struct {
	Arena        *Arena[Pattern]
	Bindings     *Arena[BindingPat]
	Lits         *Arena[LitPat]
	Structs      *Arena[StructPat]
	TupleStructs *Arena[TupleStructPat]
	EnumVariants *Arena[EnumVariantPat]
}

func NewPatterns(capHint uint) *Patterns {
	return &Patterns{
		Arena:        NewArena[Pattern](capHint),
		Bindings:     NewArena[BindingPat](capHint),
		Lits:         NewArena[LitPat](capHint),
		Structs:      NewArena[StructPat](capHint),
		TupleStructs: NewArena[TupleStructPat](capHint),
		EnumVariants: NewArena[EnumVariantPat](capHint),
	}
}

func (p *Patterns) Get(id PatternID) *Pattern {
	return p.Arena.Get(uint32(id))
}

func (p *Patterns) newPattern(kind PatternKind, span source.Span, payload PayloadID) PatternID {
	return PatternID(p.Arena.Allocate(Pattern{Kind: kind, Span: span, Payload: payload}))
}

func (p *Patterns) NewWildcard(span source.Span) PatternID {
	return p.newPattern(PatWildcard, span, NoPayloadID)
}

func (p *Patterns) NewBinding(name source.StringID, span source.Span) PatternID {
	return p.newPattern(PatBinding, span, PayloadID(p.Bindings.Allocate(BindingPat{Name: name})))
}

func (p *Patterns) NewLit(lit LitKind, text source.StringID, span source.Span) PatternID {
	return p.newPattern(PatLit, span, PayloadID(p.Lits.Allocate(LitPat{Lit: lit, Text: text})))
}

func (p *Patterns) NewStruct(name source.StringID, nameSpan source.Span, fields []FieldPat, span source.Span) PatternID {
	return p.newPattern(PatStruct, span, PayloadID(p.Structs.Allocate(StructPat{
		Name: name, NameSpan: nameSpan, Fields: fields,
	})))
}

func (p *Patterns) NewTupleStruct(name source.StringID, nameSpan source.Span, elems []FieldPat, span source.Span) PatternID {
	return p.newPattern(PatTupleStruct, span, PayloadID(p.TupleStructs.Allocate(TupleStructPat{
		Name: name, NameSpan: nameSpan, Elems: elems,
	})))
}

func (p *Patterns) NewEnumVariant(segs []source.StringID, pathSpan source.Span, elems []FieldPat, braced bool, span source.Span) PatternID {
	return p.newPattern(PatEnumVariant, span, PayloadID(p.EnumVariants.Allocate(EnumVariantPat{
		Segs: segs, PathSpan: pathSpan, Elems: elems, Braced: braced,
	})))
}

func (p *Patterns) Binding(id PatternID) (*BindingPat, bool) {
	return patPayload(p, id, PatBinding, p.Bindings)
}

func (p *Patterns) Lit(id PatternID) (*LitPat, bool) {
	return patPayload(p, id, PatLit, p.Lits)
}

func (p *Patterns) Struct(id PatternID) (*StructPat, bool) {
	return patPayload(p, id, PatStruct, p.Structs)
}

func (p *Patterns) TupleStruct(id PatternID) (*TupleStructPat, bool) {
	return patPayload(p, id, PatTupleStruct, p.TupleStructs)
}

func (p *Patterns) EnumVariant(id PatternID) (*EnumVariantPat, bool) {
	return patPayload(p, id, PatEnumVariant, p.EnumVariants)
}

// FieldList returns the ordered field-pattern sequence of a struct,
// tuple-struct or enum-variant pattern, or nil for other kinds.
func (p *Patterns) FieldList(id PatternID) []FieldPat {
	pat := p.Get(id)
	if pat == nil {
		return nil
	}
	switch pat.Kind {
	case PatStruct:
		return p.Structs.Get(uint32(pat.Payload)).Fields
	case PatTupleStruct:
		return p.TupleStructs.Get(uint32(pat.Payload)).Elems
	case PatEnumVariant:
		return p.EnumVariants.Get(uint32(pat.Payload)).Elems
	default:
		return nil
	}
}

func patPayload[T any](p *Patterns, id PatternID, kind PatternKind, arena *Arena[T]) (*T, bool) {
	pat := p.Arena.Get(uint32(id))
	if pat == nil || pat.Kind != kind {
		return nil, false
	}
	return arena.Get(uint32(pat.Payload)), true
}
