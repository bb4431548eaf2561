package semantic

import (
	"github.com/cwbudde/go-hsc/ast"
	"github.com/cwbudde/go-hsc/errors"
	"github.com/cwbudde/go-hsc/types"
)

// resolveStubs replaces every stub script that has a same-named peer: the
// peer must be a static script with the same return type. The stub's node
// subtree is disabled and the stub is shifted out of the script table,
// preserving the relative order of everything else. A stub with no peer
// survives; if the name is declared twice as a stub the duplicate-name
// check reports it later.
func (a *Analyzer) resolveStubs() *errors.CompileError {
	scripts := a.res.Scripts

	for i := 0; i < len(scripts); {
		stub := &scripts[i]
		if stub.ScriptType != types.Stub {
			i++
			continue
		}

		// Another stub is not a replacement; a stub pair survives into the
		// duplicate-name check instead.
		replacement := -1
		for j := range scripts {
			if j != i && scripts[j].Name == stub.Name && scripts[j].ScriptType != types.Stub {
				replacement = j
				break
			}
		}
		if replacement < 0 {
			i++
			continue
		}

		other := &scripts[replacement]
		if other.ScriptType != types.Static {
			return errors.NewSyntaxErrorAt(other.File, other.Line, other.Column, "the script '%s' is a stub, and can only be replaced by a static script (got a %s script instead)", stub.Name, other.ScriptType)
		}
		if other.ReturnType != stub.ReturnType {
			return errors.NewSyntaxErrorAt(other.File, other.Line, other.Column, "the stub script '%s' returns a %s, but its replacement returns a %s", stub.Name, stub.ReturnType, other.ReturnType)
		}

		a.disableSubtree(stub.FirstNode)
		scripts = append(scripts[:i], scripts[i+1:]...)
	}

	a.res.Scripts = scripts
	return nil
}

// disableSubtree marks every node reachable from the given node as
// Unparsed so the compaction pass removes it.
func (a *Analyzer) disableSubtree(node ast.NodeIndex) {
	for node != ast.NullNode {
		n := a.res.Nodes.At(node)
		n.Type = types.Unparsed
		if !n.IsPrimitive && n.ChildNode != ast.NullNode {
			a.disableSubtree(n.ChildNode)
		}
		node = n.NextNode
	}
}

// compact removes every Unparsed node by swapping it with the last node and
// rewriting every cross-reference to the moved node: script and global
// first-node indices, child links, and sibling links.
func (a *Analyzer) compact() {
	nodes := a.res.Nodes.Nodes
	count := len(nodes)

	for i := 0; i < count; {
		if nodes[i].Type != types.Unparsed {
			i++
			continue
		}

		last := count - 1
		if i != last {
			nodes[i] = nodes[last]
			a.rewriteReferences(nodes[:last], ast.NodeIndex(last), ast.NodeIndex(i))
		}
		count--
		// Do not advance: the node moved into this slot may itself be
		// Unparsed.
	}

	a.res.Nodes.Nodes = nodes[:count]
}

// rewriteReferences redirects every edge pointing at `from` to `to`.
func (a *Analyzer) rewriteReferences(nodes []ast.Node, from, to ast.NodeIndex) {
	for i := range nodes {
		if nodes[i].ChildNode == from {
			nodes[i].ChildNode = to
		}
		if nodes[i].NextNode == from {
			nodes[i].NextNode = to
		}
	}
	for s := range a.res.Scripts {
		if a.res.Scripts[s].FirstNode == from {
			a.res.Scripts[s].FirstNode = to
		}
	}
	for g := range a.res.Globals {
		if a.res.Globals[g].FirstNode == from {
			a.res.Globals[g].FirstNode = to
		}
	}
}

// resolveCallIndices back-fills every script-call node with the index of
// its target script. This runs after stub removal so the indices reference
// the script table's final positions.
func (a *Analyzer) resolveCallIndices() {
	for i := range a.res.Nodes.Nodes {
		n := &a.res.Nodes.Nodes[i]
		if !n.IsScriptCall {
			continue
		}

		name := a.res.Nodes.At(n.ChildNode).String()
		for s := range a.res.Scripts {
			if a.res.Scripts[s].Name == name {
				n.CallIndex = uint16(s)
				break
			}
		}
	}
}

// finalChecks enforces name uniqueness. A name shared between one script
// and one global is legal but suspicious; it is reported through the warn
// callback at the later of the two declarations.
func (a *Analyzer) finalChecks() *errors.CompileError {
	scripts := a.res.Scripts
	for i := range scripts {
		for j := i + 1; j < len(scripts); j++ {
			if scripts[i].Name == scripts[j].Name {
				return errors.NewSyntaxErrorAt(scripts[j].File, scripts[j].Line, scripts[j].Column, "multiple scripts exist with the name '%s'", scripts[j].Name)
			}
		}
	}

	globals := a.res.Globals
	for i := range globals {
		for j := i + 1; j < len(globals); j++ {
			if globals[i].Name == globals[j].Name {
				return errors.NewSyntaxErrorAt(globals[j].File, globals[j].Line, globals[j].Column, "multiple globals exist with the name '%s'", globals[j].Name)
			}
		}
	}

	for s := range scripts {
		for g := range globals {
			if scripts[s].Name != globals[g].Name {
				continue
			}
			script, global := &scripts[s], &globals[g]
			later := declaredLater(script.File, script.Line, script.Column, global.File, global.Line, global.Column)
			if later {
				a.warn("a script and a global both have the name '"+script.Name+"'", script.File, script.Line, script.Column)
			} else {
				a.warn("a script and a global both have the name '"+global.Name+"'", global.File, global.Line, global.Column)
			}
		}
	}

	return nil
}

// declaredLater reports whether declaration a comes after declaration b in
// the concatenated translation unit.
func declaredLater(aFile, aLine, aColumn, bFile, bLine, bColumn int) bool {
	if aFile != bFile {
		return aFile > bFile
	}
	if aLine != bLine {
		return aLine > bLine
	}
	return aColumn > bColumn
}
