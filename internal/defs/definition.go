// Package defs holds the static catalogue of built-in functions and globals
// for every supported engine variant, and the name lookup used by the type
// resolver.
//
// The table is sorted lexicographically by name (byte order) so lookups can
// binary-search it. Engine-variant presence is a secondary filter applied
// after the name match, not a secondary key; this is what lets diagnostics
// distinguish "no such name" from "defined on another engine".
package defs

import (
	"sort"

	"github.com/cwbudde/go-hsc/types"
)

const (
	// IndexNotPresent marks a definition as absent from an engine variant.
	IndexNotPresent uint16 = 65535

	// IndexUnknown marks a definition as present on an engine variant with
	// an unverified index.
	IndexUnknown uint16 = 65534
)

// Kind discriminates functions from globals in the catalogue.
type Kind int

const (
	// KindAny matches either kind during lookup.
	KindAny Kind = iota
	KindFunction
	KindGlobal
)

// Parameter describes one declared parameter of a built-in function.
type Parameter struct {
	Type types.ValueType

	// Optional marks a parameter that may be omitted. Every parameter after
	// an omitted one must also be optional.
	Optional bool

	// Many marks a variadic tail: extra arguments past the declared arity
	// are resolved with this parameter's type.
	Many bool

	// PassthroughLast marks a passthrough parameter where only the final
	// occurrence carries the caller's preferred type; every earlier
	// occurrence is resolved as void.
	PassthroughLast bool

	// AllowUppercase suppresses lowercasing of a string argument. Used for
	// string parameters that name assets.
	AllowUppercase bool
}

// EngineIndices holds the function or global index on each engine variant,
// or one of the sentinels.
type EngineIndices struct {
	Xbox      uint16
	GbxRetail uint16
	GbxDemo   uint16
	GbxCustom uint16
	MCCCEA    uint16
}

// ForTarget returns the index slot for a concrete target. TargetAny has no
// slot; it returns IndexUnknown.
func (e EngineIndices) ForTarget(target types.CompileTarget) uint16 {
	switch target {
	case types.TargetXbox:
		return e.Xbox
	case types.TargetGearboxRetail:
		return e.GbxRetail
	case types.TargetGearboxDemo:
		return e.GbxDemo
	case types.TargetGearboxCustomEdition:
		return e.GbxCustom
	case types.TargetMCCCEA:
		return e.MCCCEA
	}
	return IndexUnknown
}

// Definition is one entry of the catalogue: a built-in function or an
// engine global.
type Definition struct {
	Name      string
	Kind      Kind
	ValueType types.ValueType
	Indices   EngineIndices

	// Parameters is empty for globals and parameterless functions. At most
	// six parameters are representable in the engine's descriptor format.
	Parameters []Parameter
}

// MaxParameters is the engine's limit on declared parameters.
const MaxParameters = 6

// Lookup finds the definition with the given name, filtered by kind and by
// presence on the given compile target. Returns nil when the name is not in
// the table, when the kind filter excludes the match, or when the target is
// concrete and the entry is not present on it.
func Lookup(name string, target types.CompileTarget, kind Kind) *Definition {
	i := sort.Search(len(definitions), func(i int) bool {
		return definitions[i].Name >= name
	})
	if i >= len(definitions) || definitions[i].Name != name {
		return nil
	}

	def := &definitions[i]
	if kind != KindAny && def.Kind != kind {
		return nil
	}
	if target != types.TargetAny && def.Indices.ForTarget(target) == IndexNotPresent {
		return nil
	}
	return def
}

// All returns the full catalogue, sorted by name. Exposed for tooling and
// tests; callers must not mutate it.
func All() []Definition {
	return definitions
}
