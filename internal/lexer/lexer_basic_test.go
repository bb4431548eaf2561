package lexer

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	input := `(global short x 5)
(script startup my_script (print "hello world"))
`

	tests := []struct {
		expectedValue string
		expectedParen int8
	}{
		{"(", 1},
		{"global", 0},
		{"short", 0},
		{"x", 0},
		{"5", 0},
		{")", -1},
		{"(", 1},
		{"script", 0},
		{"startup", 0},
		{"my_script", 0},
		{"(", 1},
		{"print", 0},
		{"hello world", 0},
		{")", -1},
		{")", -1},
	}

	tokens, err := Tokenize([]byte(input), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tokens) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(tests), len(tokens))
	}

	for i, tt := range tests {
		tok := tokens[i]

		if tok.Value != tt.expectedValue {
			t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q", i, tt.expectedValue, tok.Value)
		}

		if tok.Parenthesis != tt.expectedParen {
			t.Fatalf("tests[%d] - parenthesis wrong. expected=%d, got=%d", i, tt.expectedParen, tok.Parenthesis)
		}
	}
}

func TestTokenizeCoordinates(t *testing.T) {
	input := "(a\n  bc d)"

	tests := []struct {
		value  string
		line   int
		column int
	}{
		{"(", 1, 1},
		{"a", 1, 2},
		{"bc", 2, 3},
		{"d", 2, 6},
		{")", 2, 7},
	}

	tokens, err := Tokenize([]byte(input), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tokens) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(tests), len(tokens))
	}

	for i, tt := range tests {
		tok := tokens[i]
		if tok.Value != tt.value {
			t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q", i, tt.value, tok.Value)
		}
		if tok.Line != tt.line || tok.Column != tt.column {
			t.Fatalf("tests[%d] - position wrong. expected=%d:%d, got=%d:%d", i, tt.line, tt.column, tok.Line, tok.Column)
		}
	}
}

func TestTokenizeFileIndex(t *testing.T) {
	tokens, err := Tokenize([]byte("(a)"), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, tok := range tokens {
		if tok.File != 3 {
			t.Errorf("tokens[%d] - file index wrong. expected=3, got=%d", i, tok.File)
		}
	}
}

func TestTokenizeStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", `("abc")`, "abc"},
		{"empty", `("")`, ""},
		{"with spaces", `("a b  c")`, "a b  c"},
		{"with parens", `("(not a block)")`, "(not a block)"},
		{"with semicolon", `("; not a comment")`, "; not a comment"},
		{"multiline", "(\"a\nb\")", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize([]byte(tt.input), 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tokens) != 3 {
				t.Fatalf("token count wrong. expected=3, got=%d", len(tokens))
			}
			if tokens[1].Value != tt.expected {
				t.Errorf("string payload wrong. expected=%q, got=%q", tt.expected, tokens[1].Value)
			}
			if tokens[1].Parenthesis != 0 {
				t.Errorf("string token should have no parenthesis tag, got %d", tokens[1].Parenthesis)
			}
		})
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens, err := Tokenize(nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %d", len(tokens))
	}
}

func TestParenthesisPrefixSum(t *testing.T) {
	input := `(script static real f (+ (* 2 3) (- 5 1)))`

	tokens, err := Tokenize([]byte(input), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	depth := 0
	for i, tok := range tokens {
		depth += int(tok.Parenthesis)
		if depth < 0 {
			t.Fatalf("tokens[%d] - prefix sum went negative", i)
		}
	}
	if depth != 0 {
		t.Fatalf("prefix sum should end at 0, got %d", depth)
	}
}
