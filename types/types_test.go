package types

import "testing"

func TestValueTypeEncoding(t *testing.T) {
	// The numeric values are part of the engine's script tag format and
	// must never drift.
	tests := []struct {
		vt       ValueType
		expected uint16
	}{
		{Unparsed, 0},
		{SpecialForm, 1},
		{FunctionName, 2},
		{Passthrough, 3},
		{Void, 4},
		{Boolean, 5},
		{Real, 6},
		{Short, 7},
		{Long, 8},
		{String, 9},
		{Script, 10},
		{TriggerVolume, 11},
		{GameDifficulty, 32},
		{Team, 33},
		{Object, 37},
		{Unit, 38},
		{Vehicle, 39},
		{Weapon, 40},
		{Device, 41},
		{Scenery, 42},
		{SceneryName, 47},
	}

	for _, tt := range tests {
		if uint16(tt.vt) != tt.expected {
			t.Errorf("%s encoding wrong. expected=%d, got=%d", tt.vt, tt.expected, uint16(tt.vt))
		}
	}
}

func TestValueTypeKeywordRoundTrip(t *testing.T) {
	for vt := Void; vt <= SceneryName; vt++ {
		parsed, ok := ValueTypeFromString(vt.String())
		if !ok {
			t.Errorf("%s should be a source keyword", vt)
			continue
		}
		if parsed != vt {
			t.Errorf("round trip wrong for %s: got %s", vt, parsed)
		}
	}
}

func TestInternalTagsAreNotKeywords(t *testing.T) {
	for _, word := range []string{"unparsed", "special_form", "function_name", "passthrough"} {
		if _, ok := ValueTypeFromString(word); ok {
			t.Errorf("%q must not be a source keyword", word)
		}
	}
}

func TestScriptTypeEncoding(t *testing.T) {
	tests := []struct {
		st       ScriptType
		expected uint16
		keyword  string
	}{
		{Startup, 0, "startup"},
		{Dormant, 1, "dormant"},
		{Continuous, 2, "continuous"},
		{Static, 3, "static"},
		{Stub, 4, "stub"},
	}

	for _, tt := range tests {
		if uint16(tt.st) != tt.expected {
			t.Errorf("%s encoding wrong. expected=%d, got=%d", tt.st, tt.expected, uint16(tt.st))
		}
		if tt.st.String() != tt.keyword {
			t.Errorf("keyword wrong. expected=%q, got=%q", tt.keyword, tt.st.String())
		}
		parsed, ok := ScriptTypeFromString(tt.keyword)
		if !ok || parsed != tt.st {
			t.Errorf("ScriptTypeFromString(%q) = %v, %v", tt.keyword, parsed, ok)
		}
	}

	if _, ok := ScriptTypeFromString("bogus"); ok {
		t.Error("bogus script type should not parse")
	}
}

func TestTakesReturnType(t *testing.T) {
	for _, st := range []ScriptType{Startup, Dormant, Continuous} {
		if st.TakesReturnType() {
			t.Errorf("%s should not take a return type", st)
		}
	}
	for _, st := range []ScriptType{Static, Stub} {
		if !st.TakesReturnType() {
			t.Errorf("%s should take a return type", st)
		}
	}
}

func TestCompileTargetRoundTrip(t *testing.T) {
	targets := []CompileTarget{
		TargetAny, TargetXbox, TargetGearboxRetail,
		TargetGearboxDemo, TargetGearboxCustomEdition, TargetMCCCEA,
	}
	for _, target := range targets {
		parsed, ok := CompileTargetFromString(target.String())
		if !ok || parsed != target {
			t.Errorf("round trip wrong for %s: got %v, %v", target, parsed, ok)
		}
	}
}
