package types

// ScriptType identifies a script's lifecycle. The numeric values match the
// engine's script tag encoding.
type ScriptType uint16

const (
	Startup ScriptType = iota
	Dormant
	Continuous
	Static
	Stub
)

var scriptTypeNames = [...]string{
	Startup:    "startup",
	Dormant:    "dormant",
	Continuous: "continuous",
	Static:     "static",
	Stub:       "stub",
}

// String returns the source keyword for the script type.
func (st ScriptType) String() string {
	if int(st) < len(scriptTypeNames) {
		return scriptTypeNames[st]
	}
	return "startup"
}

// ScriptTypeFromString maps a source keyword to its script type tag.
func ScriptTypeFromString(s string) (ScriptType, bool) {
	for st, name := range scriptTypeNames {
		if s == name {
			return ScriptType(st), true
		}
	}
	return Startup, false
}

// TakesReturnType reports whether a script declaration of this type carries
// an explicit return type keyword. Every other script type returns void.
func (st ScriptType) TakesReturnType() bool {
	return st == Static || st == Stub
}
