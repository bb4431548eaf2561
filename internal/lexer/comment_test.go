package lexer

import "testing"

func tokenValues(t *testing.T, input string) []string {
	t.Helper()
	tokens, err := Tokenize([]byte(input), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values := make([]string, len(tokens))
	for i, tok := range tokens {
		values[i] = tok.Value
	}
	return values
}

func TestLineComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"comment to end of line", "(a) ; comment\n(b)", []string{"(", "a", ")", "(", "b", ")"}},
		{"comment without newline", "(a) ; trailing", []string{"(", "a", ")"}},
		{"comment splits words", "(a;b\nc)", []string{"(", "a", "c", ")"}},
		{"full line comment", "; nothing here\n(a)", []string{"(", "a", ")"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := tokenValues(t, tt.input)
			if len(values) != len(tt.expected) {
				t.Fatalf("token count wrong. expected=%d, got=%d (%q)", len(tt.expected), len(values), values)
			}
			for i := range values {
				if values[i] != tt.expected[i] {
					t.Errorf("tokens[%d] wrong. expected=%q, got=%q", i, tt.expected[i], values[i])
				}
			}
		})
	}
}

func TestMultiLineComments(t *testing.T) {
	input := "(a ;* this\nspans\nlines *; b)"
	values := tokenValues(t, input)

	expected := []string{"(", "a", "b", ")"}
	if len(values) != len(expected) {
		t.Fatalf("token count wrong. expected=%d, got=%d (%q)", len(expected), len(values), values)
	}
	for i := range values {
		if values[i] != expected[i] {
			t.Errorf("tokens[%d] wrong. expected=%q, got=%q", i, expected[i], values[i])
		}
	}
}

func TestMultiLineCommentTracksLines(t *testing.T) {
	input := "(a ;*\n\n*; b)"
	tokens, err := Tokenize([]byte(input), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// b follows a two-newline comment, so it sits on line 3.
	b := tokens[2]
	if b.Value != "b" {
		t.Fatalf("expected token 'b', got %q", b.Value)
	}
	if b.Line != 3 {
		t.Errorf("line wrong after multi-line comment. expected=3, got=%d", b.Line)
	}
}

func TestUnterminatedMultiLineComment(t *testing.T) {
	_, err := Tokenize([]byte("(a) ;* never closed"), 0)
	if err == nil {
		t.Fatal("expected an error for unterminated comment")
	}
	if err.Line != 1 || err.Column != 5 {
		t.Errorf("error position wrong. expected=1:5, got=%d:%d", err.Line, err.Column)
	}
}

func TestSingleSemicolonStar(t *testing.T) {
	// A lone ';' at EOF is a line comment even though there is no newline.
	values := tokenValues(t, "(a);")
	if len(values) != 3 {
		t.Fatalf("token count wrong. expected=3, got=%d", len(values))
	}
}
