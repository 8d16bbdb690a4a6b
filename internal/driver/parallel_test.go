package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pact/internal/ast"
	"pact/internal/diag"
	"pact/internal/source"
)

func mkSpan(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.pact", "contract;\nstorage { total: u64 = 0 }\n")
	writeFile(t, dir, "bad.pact", "library;\nstorage { total: u64 }\n")
	writeFile(t, dir, "notes.txt", "not a source file")

	fs, results, err := CheckDir(context.Background(), dir, CheckDirOptions{Jobs: 2})
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if fs.Len() != 2 {
		t.Errorf("file set holds %d files, want 2", fs.Len())
	}

	// Результаты идут в отсортированном порядке путей.
	if filepath.Base(results[0].Path) != "bad.pact" {
		t.Errorf("first result = %s, want bad.pact", results[0].Path)
	}
	if !results[0].Bag.HasErrors() {
		t.Error("library with storage should produce an error")
	}
	if results[1].Bag.Len() != 0 {
		t.Errorf("clean contract produced diagnostics: %d", results[1].Bag.Len())
	}
	if results[1].Kind != ast.ModuleContract {
		t.Errorf("kind = %s, want contract", results[1].Kind)
	}
	if !HasErrors(results) {
		t.Error("HasErrors missed the bad file")
	}
}

func TestCheckDir_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	_, results, err := CheckDir(context.Background(), dir, CheckDirOptions{})
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestCheckDir_SubdirectoriesAreWalked(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o750); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "top.pact", "script;\n")
	writeFile(t, sub, "deep.pact", "predicate;\nstorage { a: u64 }\n")

	_, results, err := CheckDir(context.Background(), dir, CheckDirOptions{})
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	found := false
	for _, res := range results {
		if filepath.Base(res.Path) == "deep.pact" && res.Bag.HasErrors() {
			found = true
		}
	}
	if !found {
		t.Error("nested file was not checked")
	}
}

func TestCheckDir_WithCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "unit.pact", "library;\nstorage { a: u64 }\n")

	cache, err := NewDiskCache(filepath.Join(dir, ".cache"))
	if err != nil {
		t.Fatalf("NewDiskCache: %v", err)
	}
	opts := CheckDirOptions{Cache: cache}

	_, first, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("first CheckDir: %v", err)
	}
	_, second, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("second CheckDir: %v", err)
	}

	// Второй прогон берётся из кэша: AST нет, диагностика совпадает.
	if second[0].Builder != nil {
		t.Error("cached result should not carry an AST")
	}
	if first[0].Bag.Len() != second[0].Bag.Len() {
		t.Fatalf("diag count changed: %d then %d", first[0].Bag.Len(), second[0].Bag.Len())
	}
	a, b := first[0].Bag.Items()[0], second[0].Bag.Items()[0]
	if a.Code != b.Code || a.Message != b.Message || a.Primary != b.Primary {
		t.Errorf("cached diagnostic differs: %+v vs %+v", a, b)
	}
	if second[0].Kind != first[0].Kind {
		t.Errorf("cached kind = %s, want %s", second[0].Kind, first[0].Kind)
	}
}

func TestDiskCache_LookupMiss(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var hash [32]byte
	if _, ok := cache.Lookup(hash); ok {
		t.Error("lookup of an unknown hash must miss")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.SemaDeclNotAllowedInModule,
		mkSpan(0, 9, 27), "Declaring storage in a library is not allowed").
		WithNote(mkSpan(0, 0, 8), "unit is declared as a library here"))

	hash := [32]byte{1, 2, 3}
	cache.Store(hash, CheckResult{Kind: ast.ModuleLibrary, Bag: bag})

	payload, ok := cache.Lookup(hash)
	if !ok {
		t.Fatal("stored payload not found")
	}
	res := payload.toResult("unit.pact", 5, 16)
	if res.Kind != ast.ModuleLibrary {
		t.Errorf("kind = %s, want library", res.Kind)
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", res.Bag.Len())
	}
	d := res.Bag.Items()[0]
	if d.Code != diag.SemaDeclNotAllowedInModule {
		t.Errorf("code = %s", d.Code.ID())
	}
	// Span-ы перевязываются на новый FileID.
	if d.Primary.File != 5 || d.Primary.Start != 9 || d.Primary.End != 27 {
		t.Errorf("primary span = %+v", d.Primary)
	}
	if len(d.Notes) != 1 || d.Notes[0].Span.File != 5 {
		t.Errorf("note not restored: %+v", d.Notes)
	}
}
