package parser

import (
	"fmt"
	"strings"
	"testing"

	"pact/internal/ast"
	"pact/internal/diag"
	"pact/internal/lexer"
	"pact/internal/source"
)

// parseSource tokenizes and parses input as a single virtual file.
func parseSource(t *testing.T, input string) (*ast.Builder, ast.UnitID, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.pact", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(64)
	lx := lexer.New(file, lexer.Options{
		Reporter: (&lexer.ReporterAdapter{Bag: bag}).Reporter(),
	})
	builder := ast.NewBuilder(ast.Hints{})
	res := ParseUnit(lx, builder, Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	return builder, res.Unit, bag
}

// mustParseClean fails the test when parsing produced any error.
func mustParseClean(t *testing.T, input string) (*ast.Builder, *ast.Unit) {
	t.Helper()
	builder, unitID, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}
	return builder, builder.Units.Get(unitID)
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

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func spanText(input string, span source.Span) string {
	return input[span.Start:span.End]
}
