package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Span
		wantStart uint32
		wantEnd   uint32
	}{
		{"disjoint", Span{0, 0, 5}, Span{0, 10, 15}, 0, 15},
		{"overlapping", Span{0, 3, 8}, Span{0, 5, 12}, 3, 12},
		{"contained", Span{0, 0, 20}, Span{0, 5, 10}, 0, 20},
		{"reversed order", Span{0, 10, 15}, Span{0, 0, 5}, 0, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cover(tt.b)
			if got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Errorf("Cover = [%d,%d), want [%d,%d)", got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestSpanCover_DifferentFiles(t *testing.T) {
	a := Span{File: 0, Start: 0, End: 5}
	b := Span{File: 1, Start: 10, End: 20}
	if got := a.Cover(b); got != a {
		t.Errorf("spans from different files must not merge, got %v", got)
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 0, Start: 5, End: 20}
	if !outer.Contains(Span{File: 0, Start: 5, End: 20}) {
		t.Error("span must contain itself")
	}
	if !outer.Contains(Span{File: 0, Start: 7, End: 10}) {
		t.Error("inner span not contained")
	}
	if outer.Contains(Span{File: 0, Start: 4, End: 10}) {
		t.Error("span starting before must not be contained")
	}
	if outer.Contains(Span{File: 1, Start: 7, End: 10}) {
		t.Error("span from another file must not be contained")
	}
}

func TestSpanEmptyAndLen(t *testing.T) {
	if !(Span{File: 0, Start: 3, End: 3}).Empty() {
		t.Error("zero-length span should be empty")
	}
	if (Span{File: 0, Start: 3, End: 4}).Empty() {
		t.Error("non-zero span reported empty")
	}
	if got := (Span{File: 0, Start: 3, End: 9}).Len(); got != 6 {
		t.Errorf("Len = %d, want 6", got)
	}
}
