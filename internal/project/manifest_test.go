package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "token-vault"
entry = "src/main.pact"
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Name != "token-vault" {
		t.Errorf("name = %q", m.Name)
	}
	if m.Entry != "src/main.pact" {
		t.Errorf("entry = %q", m.Entry)
	}
	if m.Dir != dir {
		t.Errorf("dir = %q, want %q", m.Dir, dir)
	}
}

func TestLoad_EntryIsOptional(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"lib\"\n")
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Entry != "" {
		t.Errorf("entry = %q, want empty", m.Entry)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"missing package section", "title = \"oops\"\n", ErrPackageSectionMissing},
		{"missing name", "[package]\nentry = \"main.pact\"\n", ErrPackageNameMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeManifest(t, dir, tt.content)
			_, err := Load(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_BadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package\nname = ")
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestEntryPath(t *testing.T) {
	m := &Manifest{Name: "app", Entry: "src/main.pact", Dir: "/proj"}
	if got := m.EntryPath(); got != filepath.Join("/proj", "src", "main.pact") {
		t.Errorf("entry path = %q", got)
	}
	m.Entry = ""
	if got := m.EntryPath(); got != "" {
		t.Errorf("entry path without entry = %q, want empty", got)
	}
}

func TestLocate(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"vault\"\nentry = \"main.pact\"\n")
	nested := filepath.Join(root, "src")
	if err := os.MkdirAll(nested, 0o750); err != nil {
		t.Fatal(err)
	}

	m, ok, err := Locate(nested)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if !ok {
		t.Fatal("manifest not located from nested directory")
	}
	if m.Name != "vault" {
		t.Errorf("name = %q", m.Name)
	}
	resolvedRoot, _ := filepath.EvalSymlinks(root)
	resolvedDir, _ := filepath.EvalSymlinks(m.Dir)
	if resolvedDir != resolvedRoot {
		t.Errorf("dir = %q, want %q", m.Dir, root)
	}
}

func TestLocate_ParseErrorSurfaces(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package\nname = ")
	m, ok, err := Locate(root)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !ok {
		t.Error("ok = false for a manifest that exists but fails to parse")
	}
	if m != nil {
		t.Errorf("manifest = %+v, want nil", m)
	}
}

func TestLocate_NotFound(t *testing.T) {
	dir := t.TempDir()
	m, ok, err := Locate(dir)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if ok || m != nil {
		t.Error("unexpected manifest located in an empty temp dir")
	}
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"app\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o750); err != nil {
		t.Fatal(err)
	}

	got, ok := FindRoot(nested)
	if !ok {
		t.Fatal("manifest not found from nested directory")
	}
	resolvedRoot, _ := filepath.EvalSymlinks(root)
	resolvedGot, _ := filepath.EvalSymlinks(got)
	if resolvedGot != resolvedRoot {
		t.Errorf("root = %q, want %q", got, root)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	dir := t.TempDir()
	if _, ok := FindRoot(dir); ok {
		t.Error("unexpected manifest found in an empty temp dir")
	}
}
