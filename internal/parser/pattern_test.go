package parser

import (
	"testing"

	"pact/internal/ast"
)

// letPattern parses a single let statement and returns its pattern.
func letPattern(t *testing.T, patternSrc string) (*ast.Builder, ast.PatternID) {
	t.Helper()
	input := "script;\nfn main(v: T) {\n    let " + patternSrc + " = v;\n}"
	builder, unit := mustParseClean(t, input)
	fn, _ := builder.Decls.Fn(unit.Decls[0])
	body, _ := builder.Exprs.Block(fn.Body)
	if len(body.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(body.Stmts))
	}
	let, ok := builder.Stmts.Let(body.Stmts[0])
	if !ok {
		t.Fatal("statement is not a let")
	}
	return builder, let.Pattern
}

func TestParsePattern_Simple(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    ast.PatternKind
	}{
		{"wildcard", "_", ast.PatWildcard},
		{"binding", "x", ast.PatBinding},
		{"int literal", "42", ast.PatLit},
		{"string literal", `"ok"`, ast.PatLit},
		{"bool literal", "true", ast.PatLit},
		{"struct", "Point { x, y }", ast.PatStruct},
		{"tuple struct", "Pair(a, b)", ast.PatTupleStruct},
		{"unit enum variant", "Color::Red", ast.PatEnumVariant},
		{"tuple enum variant", "Option::Some(x)", ast.PatEnumVariant},
		{"braced enum variant", "Event::Move { dx, dy }", ast.PatEnumVariant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder, patID := letPattern(t, tt.pattern)
			pat := builder.Patterns.Get(patID)
			if pat.Kind != tt.want {
				t.Errorf("kind = %v, want %v", pat.Kind, tt.want)
			}
		})
	}
}

func TestParsePattern_FieldListOrder(t *testing.T) {
	builder, patID := letPattern(t, "Point { x: a, y, .. }")
	fields := builder.Patterns.FieldList(patID)
	if len(fields) != 3 {
		t.Fatalf("expected 3 field patterns, got %d", len(fields))
	}
	wantKinds := []ast.FieldPatKind{ast.FieldPatNamed, ast.FieldPatNamed, ast.FieldPatRest}
	for i, field := range fields {
		if field.Kind != wantKinds[i] {
			t.Errorf("field %d kind = %v, want %v", i, field.Kind, wantKinds[i])
		}
	}
	// Сокращённая форма `y` даёт вложенный binding-паттерн.
	sub := builder.Patterns.Get(fields[1].Sub)
	if sub.Kind != ast.PatBinding {
		t.Errorf("shorthand field sub-pattern kind = %v, want binding", sub.Kind)
	}
	if fields[2].Sub != ast.NoPatternID {
		t.Error("rest field must not carry a sub-pattern")
	}
}

func TestParsePattern_RestPositionIsPreserved(t *testing.T) {
	// Парсер не проверяет позицию `..`, он только фиксирует её.
	builder, patID := letPattern(t, "Triple(a, .., c)")
	fields := builder.Patterns.FieldList(patID)
	if len(fields) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(fields))
	}
	if fields[1].Kind != ast.FieldPatRest {
		t.Errorf("middle element kind = %v, want rest", fields[1].Kind)
	}
}

func TestParsePattern_Nested(t *testing.T) {
	builder, patID := letPattern(t, "Shape { center: Point { x, .. }, .. }")
	outer := builder.Patterns.FieldList(patID)
	if len(outer) != 2 {
		t.Fatalf("expected 2 outer fields, got %d", len(outer))
	}
	inner := builder.Patterns.Get(outer[0].Sub)
	if inner.Kind != ast.PatStruct {
		t.Fatalf("inner pattern kind = %v, want struct", inner.Kind)
	}
	innerFields := builder.Patterns.FieldList(outer[0].Sub)
	if len(innerFields) != 2 || innerFields[1].Kind != ast.FieldPatRest {
		t.Errorf("inner field list shape unexpected: %d fields", len(innerFields))
	}
}

func TestParsePattern_EnumVariantPath(t *testing.T) {
	builder, patID := letPattern(t, "state::Status::Active(since)")
	payload, ok := builder.Patterns.EnumVariant(patID)
	if !ok {
		t.Fatal("expected enum variant pattern")
	}
	if len(payload.Segs) != 3 {
		t.Fatalf("expected 3 path segments, got %d", len(payload.Segs))
	}
	if got := builder.StringsInterner.MustLookup(payload.Segs[2]); got != "Active" {
		t.Errorf("last segment = %q, want Active", got)
	}
	if payload.Braced {
		t.Error("parenthesized variant must not be marked braced")
	}
}
