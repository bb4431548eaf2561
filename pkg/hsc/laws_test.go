package hsc

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/go-hsc/ast"
	"github.com/cwbudde/go-hsc/types"
)

const lawsFixture = `
(global short counter 0)
(global real threshold 0.5)

(script static boolean above_threshold
  (> (unit_get_health (unit (list_get (players) 0))) threshold))

(script static void bump (set counter (+ counter 1)))

(script continuous watchdog
  (sleep_until (above_threshold) 30)
  (bump))

(script startup main
  (cond
    ((= counter 0) (bump))
    ((above_threshold) (bump) (bump))))
`

// Compiling the same concatenated source twice yields structurally
// identical outputs.
func TestCompileIsIdempotent(t *testing.T) {
	first := compileSource(t, lawsFixture)
	second := compileSource(t, lawsFixture)

	if diff := cmp.Diff(first.Nodes(), second.Nodes()); diff != "" {
		t.Errorf("node arrays differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Scripts(), second.Scripts()); diff != "" {
		t.Errorf("script tables differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Globals(), second.Globals()); diff != "" {
		t.Errorf("global tables differ (-first +second):\n%s", diff)
	}
}

// Compiling files A;B and B;A yields the same set of scripts and globals,
// differing only in declaration order and file-index tags.
func TestFileOrderIndependence(t *testing.T) {
	fileA := "(global short x 5) (script static void f (set x 2))"
	fileB := "(script startup s (f) (set x 3))"

	compileInOrder := func(sources [][2]string) *Instance {
		instance := New(types.TargetAny)
		for _, source := range sources {
			require.NoError(t, instance.LoadSource([]byte(source[1]), source[0]))
		}
		require.NoError(t, instance.Compile())
		checkInvariants(t, instance)
		return instance
	}

	ab := compileInOrder([][2]string{{"a.hsc", fileA}, {"b.hsc", fileB}})
	ba := compileInOrder([][2]string{{"b.hsc", fileB}, {"a.hsc", fileA}})

	summarize := func(instance *Instance) (scripts, globals []string) {
		for _, s := range instance.Scripts() {
			scripts = append(scripts, s.Name+"/"+s.ScriptType.String()+"/"+s.ReturnType.String())
		}
		for _, g := range instance.Globals() {
			globals = append(globals, g.Name+"/"+g.ValueType.String())
		}
		sort.Strings(scripts)
		sort.Strings(globals)
		return scripts, globals
	}

	abScripts, abGlobals := summarize(ab)
	baScripts, baGlobals := summarize(ba)

	if diff := cmp.Diff(abScripts, baScripts); diff != "" {
		t.Errorf("script sets differ (-ab +ba):\n%s", diff)
	}
	if diff := cmp.Diff(abGlobals, baGlobals); diff != "" {
		t.Errorf("global sets differ (-ab +ba):\n%s", diff)
	}
}

// Inserting comments between tokens preserves the resulting graph up to
// source coordinates.
func TestCommentTransparency(t *testing.T) {
	plain := "(global short x 5) (script startup s (set x 7))"
	commented := `(global ; a line comment
  short x ;* a block
  comment *; 5)
(script startup ;* tight *;s (set x 7))`

	first := compileSource(t, plain)
	second := compileSource(t, commented)

	ignoreCoordinates := cmpopts.IgnoreFields(ast.Node{}, "File", "Line", "Column")

	if diff := cmp.Diff(first.Nodes(), second.Nodes(), ignoreCoordinates); diff != "" {
		t.Errorf("node graphs differ (-plain +commented):\n%s", diff)
	}
}
