package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"pact/internal/diag"
	"pact/internal/source"
)

func testBag(fs *source.FileSet) (*diag.Bag, source.FileID) {
	content := "library;\nstorage { total: u64 }\n"
	fileID := fs.AddVirtual("vault.pact", []byte(content))

	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SemaDeclNotAllowedInModule,
		source.Span{File: fileID, Start: 9, End: 30},
		"Declaring storage in a library is not allowed").
		WithNote(source.Span{File: fileID, Start: 0, End: 8},
			"unit is declared as a library here"))
	return bag, fileID
}

func TestPretty(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	out := buf.String()

	for _, want := range []string{
		"vault.pact:2:1:",
		"ERROR SEM3002:",
		"Declaring storage in a library is not allowed",
		"storage { total: u64 }",
		"note:",
		"unit is declared as a library here",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Подчёркивание начинается в первой колонке строки 2.
	if !strings.Contains(out, "\n  ^~~~") {
		t.Errorf("underline missing or misplaced:\n%s", out)
	}
}

func TestPretty_NotesHiddenByDefault(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "note:") {
		t.Error("notes printed without ShowNotes")
	}
}

func TestPretty_SpanlessDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(2)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: gone"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	out := buf.String()
	if !strings.Contains(out, "ERROR IO4001: failed to load file: gone") {
		t.Errorf("unexpected output: %s", out)
	}
	if strings.Contains(out, ":0:0") {
		t.Error("spanless diagnostic must not print a position")
	}
}

func TestJSON(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`"count": 1`,
		`"severity": "ERROR"`,
		`"code": "SEM3002"`,
		`"file": "vault.pact"`,
		`"start_line": 2`,
		`"unit is declared as a library here"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %q:\n%s", want, out)
		}
	}
}

func TestJSON_MaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("many.pact", []byte("library;\n"))
	bag := diag.NewBag(8)
	for i := uint32(0); i < 5; i++ {
		bag.Add(diag.NewError(diag.SemaMisplacedRestPattern,
			source.Span{File: fileID, Start: i, End: i + 1}, "x"))
	}

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{Max: 2}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"count": 2`) {
		t.Errorf("expected truncated count 2:\n%s", buf.String())
	}
}
