package lexer

import (
	"testing"

	"pact/internal/diag"
	"pact/internal/source"
	"pact/internal/token"
)

func lexAll(t *testing.T, input string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.pact", []byte(input)))

	bag := diag.NewBag(32)
	lx := New(file, Options{
		Reporter: (&ReporterAdapter{Bag: bag}).Reporter(),
	})

	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks, bag
}

func kindsOf(toks []token.Token) []token.Kind {
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestLexer_TokenSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{
			name:  "module header",
			input: "contract;",
			want:  []token.Kind{token.KwContract, token.Semicolon},
		},
		{
			name:  "keywords and idents",
			input: "fn main let matcher",
			want:  []token.Kind{token.KwFn, token.Ident, token.KwLet, token.Ident},
		},
		{
			name:  "two char operators",
			input: ":: .. -> => == != <= >= && ||",
			want: []token.Kind{
				token.ColonColon, token.DotDot, token.Arrow, token.FatArrow,
				token.EqEq, token.BangEq, token.LtEq, token.GtEq,
				token.AmpAmp, token.PipePipe,
			},
		},
		{
			name:  "single dot vs dot dot",
			input: "a.b ..",
			want:  []token.Kind{token.Ident, token.Dot, token.Ident, token.DotDot},
		},
		{
			name:  "underscore forms",
			input: "_ _x",
			want:  []token.Kind{token.Underscore, token.Ident},
		},
		{
			name:  "literals",
			input: `42 0xFF 1_000 "hi" true false`,
			want: []token.Kind{
				token.IntLit, token.IntLit, token.IntLit,
				token.StringLit, token.KwTrue, token.KwFalse,
			},
		},
		{
			name:  "rest pattern context",
			input: "Point { x, .. }",
			want: []token.Kind{
				token.Ident, token.LBrace, token.Ident, token.Comma,
				token.DotDot, token.RBrace,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, bag := lexAll(t, tt.input)
			if bag.Len() != 0 {
				t.Fatalf("unexpected diagnostics: %d", bag.Len())
			}
			got := kindsOf(toks)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexer_CommentsAreTrivia(t *testing.T) {
	input := `// line comment
let x = 1; /* block
comment */ let y = 2;
/* nested /* block */ comment */ z`
	toks, bag := lexAll(t, input)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
	want := []token.Kind{
		token.KwLet, token.Ident, token.Assign, token.IntLit, token.Semicolon,
		token.KwLet, token.Ident, token.Assign, token.IntLit, token.Semicolon,
		token.Ident,
	}
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode diag.Code
	}{
		{"unknown char", "let § = 1;", diag.LexUnknownChar},
		{"unterminated string", `"abc`, diag.LexUnterminatedString},
		{"string broken by newline", "\"abc\nlet", diag.LexUnterminatedString},
		{"unterminated block comment", "/* never closed", diag.LexUnterminatedBlockComment},
		{"number with trailing letter", "123abc", diag.LexBadNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := lexAll(t, tt.input)
			found := false
			for _, d := range bag.Items() {
				if d.Code == tt.wantCode {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected code %s in diagnostics (%d total)", tt.wantCode.ID(), bag.Len())
			}
		})
	}
}

func TestLexer_TextAndSpans(t *testing.T) {
	input := `ident 42 "s"`
	toks, _ := lexAll(t, input)
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(toks))
	}
	wantText := []string{"ident", "42", `"s"`}
	for i, tok := range toks {
		if tok.Text != wantText[i] {
			t.Errorf("token %d text = %q, want %q", i, tok.Text, wantText[i])
		}
		if got := input[tok.Span.Start:tok.Span.End]; got != wantText[i] {
			t.Errorf("token %d span covers %q, want %q", i, got, wantText[i])
		}
	}
}

func TestLexer_EOFIsSticky(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.pact", []byte("x")))
	lx := New(file, Options{})
	lx.Next() // x
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d after end = %s, want EOF", i, tok.Kind)
		}
	}
}
