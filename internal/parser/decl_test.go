package parser

import (
	"testing"

	"pact/internal/ast"
	"pact/internal/diag"
)

func TestParseStructDecl(t *testing.T) {
	input := `library;
struct Point {
    x: u64,
    y: u64,
}`
	builder, unit := mustParseClean(t, input)
	if len(unit.Decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(unit.Decls))
	}
	declID := unit.Decls[0]
	decl := builder.Decls.Get(declID)
	if decl.Kind != ast.DeclStruct {
		t.Fatalf("kind = %s, want struct", decl.Kind)
	}
	payload, ok := builder.Decls.Struct(declID)
	if !ok {
		t.Fatal("payload accessor failed")
	}
	if got := builder.StringsInterner.MustLookup(payload.Name); got != "Point" {
		t.Errorf("name = %q, want Point", got)
	}
	if len(payload.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(payload.Fields))
	}
	// Span декларации — от ключевого слова до закрывающей скобки.
	wantSpan := "struct Point {\n    x: u64,\n    y: u64,\n}"
	if got := spanText(input, decl.Span); got != wantSpan {
		t.Errorf("decl span covers %q", got)
	}
}

func TestParseEnumDecl(t *testing.T) {
	input := `library;
enum Shape {
    Circle(u64),
    Rect(u64, u64),
    Empty,
}`
	builder, unit := mustParseClean(t, input)
	payload, ok := builder.Decls.Enum(unit.Decls[0])
	if !ok {
		t.Fatal("payload accessor failed")
	}
	if len(payload.Variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(payload.Variants))
	}
	wantElems := []int{1, 2, 0}
	for i, variant := range payload.Variants {
		if len(variant.Elems) != wantElems[i] {
			t.Errorf("variant %d has %d payload types, want %d",
				i, len(variant.Elems), wantElems[i])
		}
	}
}

func TestParseStorageDecl(t *testing.T) {
	input := `contract;
storage {
    total: u64 = 0,
    owner: Address,
}`
	builder, unit := mustParseClean(t, input)
	declID := unit.Decls[0]
	decl := builder.Decls.Get(declID)
	if decl.Kind != ast.DeclStorage {
		t.Fatalf("kind = %s, want storage", decl.Kind)
	}
	payload, _ := builder.Decls.Storage(declID)
	if len(payload.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(payload.Fields))
	}
	if payload.Fields[0].Init == ast.NoExprID {
		t.Error("first field should carry an initializer")
	}
	if payload.Fields[1].Init != ast.NoExprID {
		t.Error("second field should not carry an initializer")
	}
	wantSpan := "storage {\n    total: u64 = 0,\n    owner: Address,\n}"
	if got := spanText(input, decl.Span); got != wantSpan {
		t.Errorf("decl span covers %q", got)
	}
}

func TestParseConstDecl(t *testing.T) {
	input := "library;\nconst LIMIT: u64 = 10 + 2;"
	builder, unit := mustParseClean(t, input)
	payload, ok := builder.Decls.Const(unit.Decls[0])
	if !ok {
		t.Fatal("payload accessor failed")
	}
	if got := builder.StringsInterner.MustLookup(payload.Name); got != "LIMIT" {
		t.Errorf("name = %q, want LIMIT", got)
	}
	if payload.Value == ast.NoExprID {
		t.Error("const value missing")
	}
}

func TestParseFnDecl(t *testing.T) {
	input := `script;
fn dist(a: Point, b: Point) -> u64 {
    let dx = a.x - b.x;
    dx * dx
}`
	builder, unit := mustParseClean(t, input)
	payload, ok := builder.Decls.Fn(unit.Decls[0])
	if !ok {
		t.Fatal("payload accessor failed")
	}
	if len(payload.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(payload.Params))
	}
	if payload.ReturnType == ast.NoTypeID {
		t.Error("return type missing")
	}
	body, ok := builder.Exprs.Block(payload.Body)
	if !ok {
		t.Fatal("body is not a block")
	}
	if len(body.Stmts) != 1 || body.Tail == ast.NoExprID {
		t.Errorf("expected 1 stmt and a tail expression, got %d stmts, tail=%v",
			len(body.Stmts), body.Tail)
	}
}

func TestParseDecl_RecoveryKeepsFollowingDecls(t *testing.T) {
	input := `library;
struct { x: u64 }
const GOOD: u64 = 1;
`
	builder, unitID, bag := parseSource(t, input)
	if !bag.HasErrors() {
		t.Fatal("expected errors from the broken struct")
	}
	unit := builder.Units.Get(unitID)
	found := false
	for _, declID := range unit.Decls {
		if builder.Decls.Get(declID).Kind == ast.DeclConst {
			found = true
		}
	}
	if !found {
		t.Errorf("const declaration after the broken struct was lost: %s",
			diagnosticsSummary(bag))
	}
}

func TestParseDecl_UnexpectedTopLevel(t *testing.T) {
	_, _, bag := parseSource(t, "library;\n42;")
	if !hasCode(bag, diag.SynUnexpectedTopLevel) {
		t.Fatalf("expected unexpected-top-level diagnostic, got: %s", diagnosticsSummary(bag))
	}
}
