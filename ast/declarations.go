package ast

import (
	"strings"

	"github.com/cwbudde/go-hsc/types"
)

// Global is a named top-level binding of a value type to an initializer
// expression.
type Global struct {
	// Name is stored lowercased and truncated at MaxNameLength bytes.
	Name string

	ValueType types.ValueType

	// FirstNode is the index of the initializer node.
	FirstNode NodeIndex

	File   int
	Line   int
	Column int
}

// Script is a named top-level procedure.
type Script struct {
	// Name is stored lowercased and truncated at MaxNameLength bytes.
	Name string

	ReturnType types.ValueType
	ScriptType types.ScriptType

	// FirstNode is the index of the root call node of the script's body.
	FirstNode NodeIndex

	File   int
	Line   int
	Column int
}

// StoreName lowercases a declared name and truncates it to the engine's
// storage limit.
func StoreName(name string) string {
	if len(name) > MaxNameLength {
		name = name[:MaxNameLength]
	}
	return strings.ToLower(name)
}
