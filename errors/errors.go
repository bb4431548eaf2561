// Package errors provides the compiler's diagnostic type and formatting
// utilities. Diagnostics carry a message, the file name, and 1-based
// line/column coordinates; the formatter renders them with source context
// and a visual caret pointing at the error location.
package errors

import (
	"fmt"
	"strings"
)

// Kind discriminates the two failure classes a compile operation can report.
type Kind int

const (
	// KindSyntax is any source-level violation. It carries a location.
	KindSyntax Kind = iota

	// KindAllocation is a failure to allocate working memory. It carries no
	// location; its message is always "allocation error".
	KindAllocation
)

// CompileError is a single compilation diagnostic.
type CompileError struct {
	Message string

	// File is the source file name. The compiler stages below the facade
	// only know file indices; the facade resolves FileIndex into File.
	File      string
	FileIndex int

	Kind   Kind
	Line   int
	Column int
}

// NewSyntaxError creates a syntax diagnostic at the given location. The file
// name is typically filled in later by the caller that knows the file list.
func NewSyntaxError(line, column int, format string, args ...any) *CompileError {
	return &CompileError{
		Kind:    KindSyntax,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  column,
	}
}

// NewSyntaxErrorAt is NewSyntaxError with a file index, for stages that see
// tokens from multiple concatenated sources.
func NewSyntaxErrorAt(file, line, column int, format string, args ...any) *CompileError {
	e := NewSyntaxError(line, column, format, args...)
	e.FileIndex = file
	return e
}

// NewAllocationError creates an allocation diagnostic.
func NewAllocationError() *CompileError {
	return &CompileError{Kind: KindAllocation, Message: "allocation error"}
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Kind == KindAllocation {
		return e.Message
	}
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Format formats the error with the offending source line and a caret.
// If color is true, ANSI color codes are used for terminal output.
func (e *CompileError) Format(source string, color bool) string {
	var sb strings.Builder

	if e.Kind == KindAllocation {
		sb.WriteString(e.Message)
		return sb.String()
	}

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Line, e.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Line, e.Column))
	}

	sourceLine := sourceLineAt(source, e.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		// Caret indicator
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Column-1))
		if color {
			sb.WriteString("\033[1;31m") // Red bold
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m") // Reset
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m") // Bold
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m") // Reset
	}

	return sb.String()
}

// sourceLineAt extracts a specific line from the source code.
// Lines are 1-indexed.
func sourceLineAt(source string, lineNum int) string {
	if source == "" {
		return ""
	}

	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}

	return strings.TrimSuffix(lines[lineNum-1], "\r")
}
