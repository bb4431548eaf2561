// Package lexer converts raw script source bytes into a flat token stream
// with source coordinates and parenthesis deltas.
//
// The source format is parenthesised S-expressions: parentheses are
// single-character tokens, `"` delimits string literals, `;` starts a line
// comment, `;* ... *;` is a multi-line comment, and every other maximal run
// of non-separator bytes is a word. Column positions count bytes, 1-based.
package lexer

import (
	"github.com/cwbudde/go-hsc/errors"
)

// Lexer scans a single source buffer. Tokens carry the file index given at
// creation so streams from multiple files can be concatenated.
type Lexer struct {
	input  []byte
	file   int
	pos    int
	line   int
	column int
}

// New creates a Lexer for one source buffer. file is the index this source
// will occupy in the instance's file list.
func New(input []byte, file int) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		line:   1,
		column: 1,
	}
}

// Tokenize scans the whole input and returns the token stream. After
// scanning, the parenthesis balance is verified: the running sum of deltas
// must stay non-negative and end at zero.
func Tokenize(input []byte, file int) ([]Token, *errors.CompileError) {
	l := New(input, file)

	var tokens []Token
	for {
		tok, done, err := l.next()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		tokens = append(tokens, tok)
	}

	if err := checkBalance(tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// next scans forward to the next token. done is true once the input is
// exhausted.
func (l *Lexer) next() (tok Token, done bool, err *errors.CompileError) {
	for l.pos < len(l.input) {
		c := l.input[l.pos]

		switch {
		case c == 0:
			return Token{}, false, errors.NewSyntaxError(l.line, l.column, "token error: unexpected null terminator")

		case c == ' ' || c == '\t' || c == '\r':
			l.advance()

		case c == '\n':
			l.advanceLine()

		case c == '(' || c == ')':
			tok := Token{
				Value:  string(c),
				File:   l.file,
				Line:   l.line,
				Column: l.column,
			}
			if c == '(' {
				tok.Parenthesis = 1
			} else {
				tok.Parenthesis = -1
			}
			l.advance()
			return tok, false, nil

		case c == ';':
			if err := l.skipComment(); err != nil {
				return Token{}, false, err
			}

		case c == '"':
			tok, err := l.readString()
			if err != nil {
				return Token{}, false, err
			}
			return tok, false, nil

		default:
			return l.readWord(), false, nil
		}
	}

	return Token{}, true, nil
}

// skipComment consumes a `;` line comment or a `;* ... *;` multi-line
// comment. The multi-line form requires its terminator before EOF.
func (l *Lexer) skipComment() *errors.CompileError {
	startLine, startColumn := l.line, l.column

	// Two-character lookahead for the multi-line form.
	if l.pos+1 < len(l.input) && l.input[l.pos+1] == '*' {
		l.advance() // ';'
		l.advance() // '*'

		for l.pos < len(l.input) {
			if l.input[l.pos] == '*' && l.pos+1 < len(l.input) && l.input[l.pos+1] == ';' {
				l.advance()
				l.advance()
				return nil
			}
			if l.input[l.pos] == '\n' {
				l.advanceLine()
			} else {
				l.advance()
			}
		}
		return errors.NewSyntaxError(startLine, startColumn, "token error: unterminated comment")
	}

	// Line comment: everything up to (but not including) the newline.
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.advance()
	}
	return nil
}

// readString consumes a quoted string literal. The token's value is the
// inside of the string; the delimiters are stripped.
func (l *Lexer) readString() (Token, *errors.CompileError) {
	startLine, startColumn := l.line, l.column
	l.advance() // opening quote

	start := l.pos
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '"':
			tok := Token{
				Value:  string(l.input[start:l.pos]),
				File:   l.file,
				Line:   startLine,
				Column: startColumn,
			}
			l.advance() // closing quote
			return tok, nil
		case 0:
			return Token{}, errors.NewSyntaxError(l.line, l.column, "token error: unexpected null terminator")
		case '\n':
			l.advanceLine()
		default:
			l.advance()
		}
	}

	return Token{}, errors.NewSyntaxError(startLine, startColumn, "token error: unterminated string")
}

// readWord consumes a maximal run of non-separator bytes.
func (l *Lexer) readWord() Token {
	startLine, startColumn := l.line, l.column
	start := l.pos
	for l.pos < len(l.input) && !isSeparator(l.input[l.pos]) {
		l.advance()
	}
	return Token{
		Value:  string(l.input[start:l.pos]),
		File:   l.file,
		Line:   startLine,
		Column: startColumn,
	}
}

// isSeparator reports whether a byte terminates a word.
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', ';', '"', 0:
		return true
	}
	return false
}

func (l *Lexer) advance() {
	l.pos++
	l.column++
}

func (l *Lexer) advanceLine() {
	l.pos++
	l.line++
	l.column = 1
}

// checkBalance verifies that left and right parentheses match and that the
// depth never goes negative. An unmatched right parenthesis is reported at
// its own position; an unmatched left parenthesis at the position of the
// first unbalanced opener.
func checkBalance(tokens []Token) *errors.CompileError {
	depth := 0
	firstOpener := -1

	for i := range tokens {
		delta := int(tokens[i].Parenthesis)
		if delta == 0 {
			continue
		}

		depth += delta

		// Note each top-level opener; the one recorded last is reported if
		// it turns out never to be closed.
		if depth == 1 && delta == 1 {
			firstOpener = i
		}

		if depth < 0 {
			return errors.NewSyntaxError(tokens[i].Line, tokens[i].Column, "token error: right parenthesis without matching left")
		}
	}

	if depth > 0 {
		opener := tokens[firstOpener]
		return errors.NewSyntaxError(opener.Line, opener.Column, "token error: left parenthesis without matching right")
	}

	return nil
}
