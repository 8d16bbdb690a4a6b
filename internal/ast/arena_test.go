package ast

import (
	"testing"

	"pact/internal/source"
)

func TestArena_HandlesAreOneBased(t *testing.T) {
	a := NewArena[int](4)
	first := a.Allocate(10)
	second := a.Allocate(20)

	if first != 1 || second != 2 {
		t.Fatalf("handles = %d, %d; want 1, 2", first, second)
	}
	if a.Get(0) != nil {
		t.Error("handle 0 must resolve to nil")
	}
	if got := *a.Get(first); got != 10 {
		t.Errorf("Get(1) = %d, want 10", got)
	}
	if a.Len() != 2 {
		t.Errorf("Len = %d, want 2", a.Len())
	}
}

func TestArena_GetReturnsMutableSlot(t *testing.T) {
	a := NewArena[int](1)
	id := a.Allocate(5)
	*a.Get(id) = 7
	if got := *a.Get(id); got != 7 {
		t.Errorf("slot = %d, want 7", got)
	}
}

func TestBuilder_PushDeclWidensUnitSpan(t *testing.T) {
	b := NewBuilder(Hints{})
	headerSpan := source.Span{File: 0, Start: 0, End: 8}
	unit := b.Units.New(ModuleLibrary, headerSpan)

	declSpan := source.Span{File: 0, Start: 10, End: 40}
	decl := b.Decls.NewStorage(nil, declSpan)
	b.PushDecl(unit, decl)

	u := b.Units.Get(unit)
	if len(u.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(u.Decls))
	}
	if u.Span.Start != 0 || u.Span.End != 40 {
		t.Errorf("unit span = [%d,%d), want [0,40)", u.Span.Start, u.Span.End)
	}
}

func TestDeclKindString(t *testing.T) {
	tests := []struct {
		kind DeclKind
		want string
	}{
		{DeclStruct, "struct"},
		{DeclEnum, "enum"},
		{DeclFn, "function"},
		{DeclStorage, "storage"},
		{DeclConst, "constant"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestModuleKindString(t *testing.T) {
	tests := []struct {
		kind ModuleKind
		want string
	}{
		{ModuleScript, "script"},
		{ModuleLibrary, "library"},
		{ModuleContract, "contract"},
		{ModulePredicate, "predicate"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPatterns_FieldList(t *testing.T) {
	b := NewBuilder(Hints{})
	name := b.StringsInterner.Intern("Point")
	sp := source.Span{File: 0, Start: 0, End: 10}

	fields := []FieldPat{
		{Kind: FieldPatNamed, Name: b.StringsInterner.Intern("x")},
		{Kind: FieldPatRest},
	}
	structPat := b.Patterns.NewStruct(name, sp, fields, sp)
	if got := b.Patterns.FieldList(structPat); len(got) != 2 {
		t.Errorf("struct field list len = %d, want 2", len(got))
	}

	binding := b.Patterns.NewBinding(b.StringsInterner.Intern("x"), sp)
	if got := b.Patterns.FieldList(binding); got != nil {
		t.Errorf("binding pattern has no field list, got %v", got)
	}
}
