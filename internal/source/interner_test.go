package source

import "testing"

func TestInterner_Dedup(t *testing.T) {
	in := NewInterner()
	a := in.Intern("balance")
	b := in.Intern("owner")
	c := in.Intern("balance")

	if a == NoStringID || b == NoStringID {
		t.Fatal("valid strings must not intern to NoStringID")
	}
	if a != c {
		t.Errorf("same string interned to %d and %d", a, c)
	}
	if a == b {
		t.Error("different strings share an ID")
	}
}

func TestInterner_Lookup(t *testing.T) {
	in := NewInterner()
	id := in.InternBytes([]byte("storage"))

	got, ok := in.Lookup(id)
	if !ok || got != "storage" {
		t.Errorf("Lookup = %q, %v", got, ok)
	}
	if got, ok := in.Lookup(NoStringID); !ok || got != "" {
		t.Error("NoStringID must resolve to the empty string")
	}
	if _, ok := in.Lookup(StringID(999)); ok {
		t.Error("unknown ID must not resolve")
	}
}

func TestInterner_Len(t *testing.T) {
	in := NewInterner()
	in.Intern("a")
	in.Intern("b")
	in.Intern("a")
	// NoStringID занимает нулевой слот.
	if got := in.Len(); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}
}
