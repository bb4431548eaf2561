package lexer

import "testing"

func TestTokenPredicates(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		left  bool
		right bool
		word  bool
	}{
		{"left", Token{Value: "(", Parenthesis: 1}, true, false, false},
		{"right", Token{Value: ")", Parenthesis: -1}, false, true, false},
		{"word", Token{Value: "begin"}, false, false, true},
		{"empty string payload", Token{Value: ""}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.IsLeftParenthesis(); got != tt.left {
				t.Errorf("IsLeftParenthesis wrong. expected=%v, got=%v", tt.left, got)
			}
			if got := tt.token.IsRightParenthesis(); got != tt.right {
				t.Errorf("IsRightParenthesis wrong. expected=%v, got=%v", tt.right, got)
			}
			if got := tt.token.IsWord(); got != tt.word {
				t.Errorf("IsWord wrong. expected=%v, got=%v", tt.word, got)
			}
		})
	}
}
