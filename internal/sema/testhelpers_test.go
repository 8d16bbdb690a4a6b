package sema

import (
	"fmt"
	"strings"
	"testing"

	"pact/internal/ast"
	"pact/internal/diag"
	"pact/internal/lexer"
	"pact/internal/parser"
	"pact/internal/source"
)

// checkSource parses input and runs the structural validators over it. Parse
// errors abort the test; the returned bag holds validator diagnostics only.
func checkSource(t *testing.T, input string) (*ast.Builder, *diag.Bag, Result) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.pact", []byte(input))
	file := fs.Get(fileID)

	parseBag := diag.NewBag(64)
	lx := lexer.New(file, lexer.Options{
		Reporter: (&lexer.ReporterAdapter{Bag: parseBag}).Reporter(),
	})
	builder := ast.NewBuilder(ast.Hints{})
	parseRes := parser.ParseUnit(lx, builder, parser.Options{
		Reporter: &diag.BagReporter{Bag: parseBag},
	})
	if parseBag.HasErrors() {
		t.Fatalf("unexpected parse errors: %s", diagnosticsSummary(parseBag))
	}
	if parseRes.Unit == ast.NoUnitID {
		t.Fatalf("parser produced no unit")
	}

	semaBag := diag.NewBag(64)
	res := Check(builder, parseRes.Unit, Options{
		Reporter: &diag.BagReporter{Bag: semaBag},
	})
	return builder, semaBag, res
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// spanText returns the source slice a span covers.
func spanText(input string, span source.Span) string {
	return input[span.Start:span.End]
}
