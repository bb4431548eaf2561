package hsc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-hsc/types"
)

// formatGraph renders the published arrays as a stable text form for
// snapshotting.
func formatGraph(instance *Instance) string {
	var sb strings.Builder

	for i, g := range instance.Globals() {
		fmt.Fprintf(&sb, "global[%d] %s %s -> node %d\n", i, g.ValueType, g.Name, g.FirstNode)
	}
	for i, s := range instance.Scripts() {
		fmt.Fprintf(&sb, "script[%d] %s %s %s -> node %d\n", i, s.ScriptType, s.ReturnType, s.Name, s.FirstNode)
	}
	for i := range instance.Nodes() {
		n := &instance.Nodes()[i]
		fmt.Fprintf(&sb, "node[%d] type=%s", i, n.Type)
		if n.IsPrimitive {
			sb.WriteString(" primitive")
		}
		if n.IsGlobal {
			sb.WriteString(" global")
		}
		if n.IsScriptCall {
			fmt.Fprintf(&sb, " call=%d", n.CallIndex)
		}
		if n.StringData != nil {
			fmt.Fprintf(&sb, " str=%q", *n.StringData)
		} else if n.IsPrimitive {
			switch n.Type {
			case types.Boolean:
				fmt.Fprintf(&sb, " bool=%d", n.BoolInt)
			case types.Real:
				fmt.Fprintf(&sb, " real=%g", n.Real)
			case types.Short, types.GameDifficulty, types.Team:
				fmt.Fprintf(&sb, " short=%d", n.ShortInt)
			case types.Long:
				fmt.Fprintf(&sb, " long=%d", n.LongInt)
			}
		}
		if !n.IsPrimitive {
			fmt.Fprintf(&sb, " child=%d", n.ChildNode)
		}
		if n.NextNode >= 0 {
			fmt.Fprintf(&sb, " next=%d", n.NextNode)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func TestCompiledGraphSnapshot(t *testing.T) {
	source := `
(global short counter 0)
(global boolean armed false)

(script stub void alarm (sleep 30))
(script static void alarm (set armed true))

(script startup main
  (cond
    ((= counter 0) (alarm))
    ((!= counter 0) (set counter 0))))
`
	instance := compileSource(t, source)
	snaps.MatchSnapshot(t, "compiled_graph", formatGraph(instance))
}

func TestCompiledGraphSnapshotOptimized(t *testing.T) {
	source := "(script static boolean ready (= 1 1))"

	instance := compileSource(t, source, WithOptimizationLevel(types.OptimizationDedupeExtra))
	snaps.MatchSnapshot(t, "optimized_graph", formatGraph(instance))
}
