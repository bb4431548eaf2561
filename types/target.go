package types

// CompileTarget selects which engine variant's definition set is consulted
// during name lookup.
type CompileTarget int

const (
	// TargetAny matches a definition if it is present on any engine.
	TargetAny CompileTarget = iota
	TargetXbox
	TargetGearboxRetail
	TargetGearboxDemo
	TargetGearboxCustomEdition
	TargetMCCCEA
)

var targetNames = map[CompileTarget]string{
	TargetAny:                  "any",
	TargetXbox:                 "xbox",
	TargetGearboxRetail:        "gbx-retail",
	TargetGearboxDemo:          "gbx-demo",
	TargetGearboxCustomEdition: "gbx-custom",
	TargetMCCCEA:               "mcc-cea",
}

// String returns the CLI spelling of the target.
func (t CompileTarget) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return "any"
}

// CompileTargetFromString maps a CLI spelling to a compile target.
func CompileTargetFromString(s string) (CompileTarget, bool) {
	for t, name := range targetNames {
		if s == name {
			return t, true
		}
	}
	return TargetAny, false
}

// OptimizationLevel controls how conservatively the compiler preserves the
// structure of the source when building the node graph.
type OptimizationLevel int

const (
	// OptimizationParanoid preserves everything, including redundant
	// begin wrappers around script bodies.
	OptimizationParanoid OptimizationLevel = iota

	// OptimizationPreventGenerationalLoss drops the implicit begin wrapper
	// when the script body is already a single begin call, so that
	// recompiling compiler output does not accrete wrappers.
	OptimizationPreventGenerationalLoss

	// OptimizationDedupeExtra drops the implicit begin wrapper whenever the
	// script body is a single call of any kind.
	OptimizationDedupeExtra

	// OptimizationAggressive enables every optimization.
	OptimizationAggressive
)
