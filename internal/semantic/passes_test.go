package semantic

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-hsc/ast"
	"github.com/cwbudde/go-hsc/internal/lexer"
	"github.com/cwbudde/go-hsc/internal/parser"
	"github.com/cwbudde/go-hsc/types"
)

func checkNoOrphans(t *testing.T, result *parser.Result) {
	t.Helper()
	for i := range result.Nodes.Nodes {
		n := &result.Nodes.Nodes[i]
		if n.Type == types.Unparsed {
			t.Errorf("nodes[%d] is still unparsed after compaction", i)
		}
		if n.NextNode != ast.NullNode && (n.NextNode < 0 || int(n.NextNode) >= result.Nodes.Len()) {
			t.Errorf("nodes[%d] has next link out of range: %d", i, n.NextNode)
		}
		if !n.IsPrimitive && (n.ChildNode < 0 || int(n.ChildNode) >= result.Nodes.Len()) {
			t.Errorf("nodes[%d] has child link out of range: %d", i, n.ChildNode)
		}
	}
	for s, script := range result.Scripts {
		if script.FirstNode < 0 || int(script.FirstNode) >= result.Nodes.Len() {
			t.Errorf("scripts[%d] first node out of range: %d", s, script.FirstNode)
		}
	}
	for g, global := range result.Globals {
		if global.FirstNode < 0 || int(global.FirstNode) >= result.Nodes.Len() {
			t.Errorf("globals[%d] first node out of range: %d", g, global.FirstNode)
		}
	}
}

func TestStubReplacement(t *testing.T) {
	result := mustAnalyze(t, "(script stub void s (sleep 30)) (script static void s (cinematic_start))")

	if len(result.Scripts) != 1 {
		t.Fatalf("script count wrong. expected=1, got=%d", len(result.Scripts))
	}
	script := result.Scripts[0]
	if script.ScriptType != types.Static {
		t.Errorf("surviving script should be the static one, got %s", script.ScriptType)
	}

	// The stub's subtree is gone entirely.
	checkNoOrphans(t, result)
	for i := range result.Nodes.Nodes {
		n := &result.Nodes.Nodes[i]
		if n.StringData != nil && *n.StringData == "sleep" {
			t.Error("the stub body should have been removed")
		}
	}
}

func TestStubReplacementOrderIndependent(t *testing.T) {
	result := mustAnalyze(t, "(script static void s (cinematic_start)) (script stub void s (sleep 30))")

	if len(result.Scripts) != 1 {
		t.Fatalf("script count wrong. expected=1, got=%d", len(result.Scripts))
	}
	if result.Scripts[0].ScriptType != types.Static {
		t.Errorf("surviving script should be static, got %s", result.Scripts[0].ScriptType)
	}
	checkNoOrphans(t, result)
}

func TestStubMismatchErrors(t *testing.T) {
	mustFail(t,
		"(script stub void s (cinematic_start)) (script startup s (cinematic_start))",
		"can only be replaced by a static script")
	mustFail(t,
		"(script stub real s 5) (script static void s (cinematic_start))",
		"returns a")
}

func TestUnmatchedStubSurvives(t *testing.T) {
	result := mustAnalyze(t, "(script stub void s (cinematic_start))")

	if len(result.Scripts) != 1 {
		t.Fatalf("script count wrong. expected=1, got=%d", len(result.Scripts))
	}
	if result.Scripts[0].ScriptType != types.Stub {
		t.Errorf("an unmatched stub survives as declared, got %s", result.Scripts[0].ScriptType)
	}
}

func TestDoubleStubCollides(t *testing.T) {
	// Two stubs with no static replacement are reported as duplicates, not
	// as a stub mismatch.
	mustFail(t,
		"(script stub void s (cinematic_start)) (script stub void s (cinematic_stop))",
		"multiple scripts exist with the name 's'")
}

func TestCallIndicesAfterStubRemoval(t *testing.T) {
	input := `
(script stub void a (cinematic_start))
(script static void a (cinematic_stop))
(script static void b (cinematic_start))
(script startup c (b) (a))
`
	result := mustAnalyze(t, input)

	// Final table: a (static), b, c.
	if len(result.Scripts) != 3 {
		t.Fatalf("script count wrong. expected=3, got=%d", len(result.Scripts))
	}
	names := []string{"a", "b", "c"}
	for i, name := range names {
		if result.Scripts[i].Name != name {
			t.Fatalf("scripts[%d] wrong. expected=%q, got=%q", i, name, result.Scripts[i].Name)
		}
	}

	found := map[string]uint16{}
	for i := range result.Nodes.Nodes {
		n := &result.Nodes.Nodes[i]
		if n.IsScriptCall {
			found[result.Nodes.At(n.ChildNode).String()] = n.CallIndex
		}
	}

	if found["a"] != 0 {
		t.Errorf("call index for a wrong. expected=0, got=%d", found["a"])
	}
	if found["b"] != 1 {
		t.Errorf("call index for b wrong. expected=1, got=%d", found["b"])
	}
	checkNoOrphans(t, result)
}

func TestDuplicateScriptNames(t *testing.T) {
	err := mustFail(t,
		"(script startup s (cinematic_start)) (script dormant s (cinematic_stop))",
		"multiple scripts exist with the name 's'")
	// Reported at the later declaration.
	if err.Line != 1 || err.Column != 39 {
		t.Errorf("error position wrong. expected=1:39, got=%d:%d", err.Line, err.Column)
	}
}

func TestDuplicateGlobalNames(t *testing.T) {
	mustFail(t, "(global short x 1) (global short x 2)", "multiple globals exist with the name 'x'")
}

func TestScriptGlobalNameCollisionWarns(t *testing.T) {
	tokens, err := lexer.Tokenize([]byte("(global short x 1)\n(script startup x (cinematic_start))"), 0)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	result, buildErr := parser.Build(tokens, types.OptimizationParanoid)
	if buildErr != nil {
		t.Fatalf("build failed: %v", buildErr)
	}

	var warnings []string
	var warnLine int
	warn := func(message string, file, line, column int) {
		warnings = append(warnings, message)
		warnLine = line
	}

	if err := New(result, types.TargetAny, warn).Analyze(); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if len(warnings) != 1 {
		t.Fatalf("warning count wrong. expected=1, got=%d", len(warnings))
	}
	if !strings.Contains(warnings[0], "both have the name 'x'") {
		t.Errorf("warning message wrong. got=%q", warnings[0])
	}
	// The script is the later declaration.
	if warnLine != 2 {
		t.Errorf("warning should point at the later declaration. expected line 2, got %d", warnLine)
	}
}

func TestCompactionRemovesElidedWrappers(t *testing.T) {
	tokens, err := lexer.Tokenize([]byte("(script static boolean f (= 1 1))"), 0)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	result, buildErr := parser.Build(tokens, types.OptimizationDedupeExtra)
	if buildErr != nil {
		t.Fatalf("build failed: %v", buildErr)
	}
	if analyzeErr := New(result, types.TargetAny, nil).Analyze(); analyzeErr != nil {
		t.Fatalf("analyze failed: %v", analyzeErr)
	}

	// The elided wrapper is gone and the script points straight at the
	// `=` call.
	checkNoOrphans(t, result)
	root := result.Nodes.At(result.Scripts[0].FirstNode)
	if name := result.Nodes.At(root.ChildNode).String(); name != "=" {
		t.Errorf("script body should be the = call directly, got %q", name)
	}
	if root.Type != types.Boolean {
		t.Errorf("body type wrong. expected=boolean, got=%s", root.Type)
	}
}
