// Package semantic walks the node graph produced by the parser, resolves
// names against the local tables and the builtin catalogue, reconciles
// value types across the whole expression graph, specializes literals into
// typed primitives, replaces stub scripts, compacts disabled nodes, and
// assigns script-call indices.
//
// Types flow in both directions: the declared return type of a script or
// global pushes downward as the "preferred" type of its root, while
// primitive literals and global lookups push their types upward, reconciled
// at every step by the engine's conversion rules.
package semantic

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-hsc/ast"
	"github.com/cwbudde/go-hsc/internal/defs"
	"github.com/cwbudde/go-hsc/errors"
	"github.com/cwbudde/go-hsc/internal/parser"
	"github.com/cwbudde/go-hsc/types"
)

// WarnFunc receives non-fatal diagnostics found during analysis. The file
// argument is a file index into the instance's file list.
type WarnFunc func(message string, file, line, column int)

// Analyzer holds the state of one resolution run over a parsed translation
// unit.
type Analyzer struct {
	target types.CompileTarget
	warn   WarnFunc
	res    *parser.Result
}

// New creates an analyzer for one parse result. warn may be nil.
func New(res *parser.Result, target types.CompileTarget, warn WarnFunc) *Analyzer {
	if warn == nil {
		warn = func(string, int, int, int) {}
	}
	return &Analyzer{target: target, warn: warn, res: res}
}

// Analyze resolves the whole unit in place. On error the result must be
// discarded; partially resolved nodes are not rolled back.
func (a *Analyzer) Analyze() *errors.CompileError {
	for g := range a.res.Globals {
		global := &a.res.Globals[g]
		if err := a.resolveElement(global.FirstNode, global.ValueType, false); err != nil {
			return err
		}
	}

	for s := range a.res.Scripts {
		script := &a.res.Scripts[s]
		if err := a.resolveElement(script.FirstNode, script.ReturnType, false); err != nil {
			return err
		}
	}

	if err := a.resolveStubs(); err != nil {
		return err
	}

	a.compact()
	a.resolveCallIndices()

	return a.finalChecks()
}

// globalType finds the declared type of a global by (lowercased) name,
// checking the local table before the engine catalogue.
func (a *Analyzer) globalType(name string) (types.ValueType, bool) {
	for g := range a.res.Globals {
		if a.res.Globals[g].Name == name {
			return a.res.Globals[g].ValueType, true
		}
	}
	if def := defs.Lookup(name, a.target, defs.KindGlobal); def != nil {
		return def.ValueType, true
	}
	return types.Unparsed, false
}

// functionReturnType finds the return type of a callable by name, checking
// the local script table before the engine catalogue. Used by the
// equality special forms to pick a comparison type.
func (a *Analyzer) functionReturnType(name string) (types.ValueType, bool) {
	lower := strings.ToLower(name)
	for s := range a.res.Scripts {
		if a.res.Scripts[s].Name == lower {
			return a.res.Scripts[s].ReturnType, true
		}
	}
	if def := defs.Lookup(name, a.target, defs.KindFunction); def != nil {
		return def.ValueType, true
	}
	return types.Unparsed, false
}

// resolveElement resolves one node against a preferred type. Primitives are
// specialized in place; blocks recurse into resolveBlock.
func (a *Analyzer) resolveElement(node ast.NodeIndex, preferred types.ValueType, allowUppercase bool) *errors.CompileError {
	n := a.res.Nodes.At(node)

	if !n.IsPrimitive {
		return a.resolveBlock(node, preferred)
	}

	// A word that names a global resolves to that global regardless of the
	// preferred type; the types are then reconciled.
	lower := strings.ToLower(n.String())
	if globalValueType, ok := a.globalType(lower); ok {
		n.IsGlobal = true
		n.SetString(lower)
		converted, err := a.convert(preferred, globalValueType, n)
		if err != nil {
			return err
		}
		n.Type = converted
		return nil
	}

	// Otherwise, specialize the literal by the preferred type.
	word := n.String()
	switch preferred {
	case types.Void:
		// Statement position: the value is discarded, so the leaf is
		// coerced to void the same way blocks are. This is what lets a
		// cond clause return a bare literal inside a void script.

	case types.Unparsed, types.Passthrough:
		return a.errAt(n, "cannot determine the type of '%s'", word)

	case types.Boolean:
		switch word {
		case "true", "on", "1":
			n.BoolInt = 1
		case "false", "off", "0":
			n.BoolInt = 0
		default:
			return a.errAt(n, "a boolean type (i.e. 'false'/'true'/'0'/'1'/'off'/'on') was expected; got '%s' instead", word)
		}
		n.ClearString()

	case types.Real:
		v, err := strconv.ParseFloat(word, 32)
		if err != nil {
			return a.errAt(n, "a real type was expected; got '%s' instead", word)
		}
		n.Real = float32(v)
		n.ClearString()

	case types.Short:
		v, err := strconv.ParseInt(word, 10, 64)
		if err != nil {
			return a.errAt(n, "a short type was expected; got '%s' instead", word)
		}
		if v < -32768 || v > 32767 {
			return a.errAt(n, "a short type was expected; got '%s' (out of range) instead", word)
		}
		n.ShortInt = int16(v)
		n.ClearString()

	case types.Long:
		v, err := strconv.ParseInt(word, 10, 64)
		if err != nil {
			return a.errAt(n, "a long type was expected; got '%s' instead", word)
		}
		if v < -2147483648 || v > 2147483647 {
			return a.errAt(n, "a long type was expected; got '%s' (out of range) instead", word)
		}
		n.LongInt = int32(v)
		n.ClearString()

	case types.Script:
		found := -1
		for s := range a.res.Scripts {
			if a.res.Scripts[s].Name == lower {
				found = s
				break
			}
		}
		if found < 0 {
			return a.errAt(n, "a script name was expected; got '%s' instead", word)
		}
		n.ShortInt = int16(found)
		n.SetString(lower)

	case types.GameDifficulty:
		difficulties := map[string]int16{"easy": 0, "normal": 1, "hard": 2, "impossible": 3}
		v, ok := difficulties[word]
		if !ok {
			return a.errAt(n, "a game difficulty (i.e. 'easy'/'normal'/'hard'/'impossible') was expected; got '%s' instead", word)
		}
		n.ShortInt = v
		n.ClearString()

	case types.Team:
		teams := map[string]int16{
			"player": 1, "human": 2, "covenant": 3, "flood": 4, "sentinel": 5,
			"unused6": 6, "unused7": 7, "unused8": 8, "unused9": 9,
		}
		v, ok := teams[word]
		if !ok {
			return a.errAt(n, "a team was expected; got '%s' instead", word)
		}
		n.ShortInt = v
		n.ClearString()

	case types.String:
		if !allowUppercase {
			n.SetString(lower)
		}

	default:
		// Engine-domain reference types keep the name for downstream
		// tooling; names are matched case-insensitively by the engine.
		n.SetString(lower)
	}

	n.Type = preferred
	return nil
}

// resolveBlock resolves an interior call node: the callee name, the
// argument list against the callee's parameters, and finally the block's
// own type against the caller's preferred type.
func (a *Analyzer) resolveBlock(node ast.NodeIndex, preferred types.ValueType) *errors.CompileError {
	n := a.res.Nodes.At(node)

	nameNode := a.res.Nodes.At(n.ChildNode)
	nameNode.Type = types.FunctionName
	functionName := nameNode.String()
	lowerName := strings.ToLower(functionName)

	var definition *defs.Definition
	maxArguments := 0
	isScript := false

	for s := range a.res.Scripts {
		if a.res.Scripts[s].Name == lowerName {
			// Scripts take no parameters; the call index is back-filled
			// after stub removal settles the script table.
			isScript = true
			n.Type = a.res.Scripts[s].ReturnType
			n.IsScriptCall = true
			nameNode.SetString(lowerName)
			break
		}
	}

	if !isScript {
		definition = defs.Lookup(functionName, a.target, defs.KindAny)
		if definition != nil && definition.Kind == defs.KindFunction {
			maxArguments = len(definition.Parameters)
			n.Type = definition.ValueType
		} else {
			return a.unknownFunctionError(nameNode, functionName, definition != nil)
		}
	}

	if maxArguments == 0 {
		if nameNode.NextNode != ast.NullNode {
			element := a.res.Nodes.At(nameNode.NextNode)
			return a.errAt(element, "'%s' takes no parameters but a parameter was given", functionName)
		}
	} else if functionName == "set" || functionName == "=" || functionName == "!=" {
		if err := a.resolveSpecialForm(node, functionName); err != nil {
			return err
		}
	} else {
		if err := a.resolveArguments(node, functionName, definition, preferred); err != nil {
			return err
		}
	}

	// In statement position the value is discarded, so the type is not
	// converted; it is simply void.
	if preferred == types.Void {
		n.Type = types.Void
		return nil
	}

	converted, err := a.convert(preferred, n.Type, n)
	if err != nil {
		return err
	}
	n.Type = converted
	return nil
}

// unknownFunctionError diagnoses a callee that is not a script and not a
// builtin function, with a hint when the name exists in some other form.
func (a *Analyzer) unknownFunctionError(nameNode *ast.Node, functionName string, definitionGlobalExists bool) *errors.CompileError {
	lower := strings.ToLower(functionName)
	localGlobalExists := false
	for g := range a.res.Globals {
		if a.res.Globals[g].Name == lower {
			localGlobalExists = true
			break
		}
	}

	suffix := ""
	switch {
	case localGlobalExists:
		suffix = " (a local global by this name exists, but this was called like a function)"
	case definitionGlobalExists:
		suffix = " (an engine global by this name exists, but this was called like a function)"
	default:
		if defs.Lookup(functionName, types.TargetAny, defs.KindFunction) != nil {
			suffix = " for the target engine (it is defined on another engine however)"
		}
	}

	return a.errAt(nameNode, "no such function or script '%s' was defined%s", functionName, suffix)
}

// collectArguments gathers the sibling list after the function name leaf.
func (a *Analyzer) collectArguments(node ast.NodeIndex) []ast.NodeIndex {
	var args []ast.NodeIndex
	nameNode := a.res.Nodes.At(a.res.Nodes.At(node).ChildNode)
	for element := nameNode.NextNode; element != ast.NullNode; element = a.res.Nodes.At(element).NextNode {
		args = append(args, element)
	}
	return args
}

// resolveSpecialForm handles `set`, `=`, and `!=`, whose argument types
// cannot be expressed as plain arity signatures: `set` takes its type from
// the assigned global, and the equality forms reconcile their two sides
// against each other.
func (a *Analyzer) resolveSpecialForm(node ast.NodeIndex, functionName string) *errors.CompileError {
	n := a.res.Nodes.At(node)
	args := a.collectArguments(node)

	if len(args) > 2 {
		extra := a.res.Nodes.At(args[2])
		return a.errAt(extra, "'%s' takes 2 parameters, but more were given", functionName)
	}
	if len(args) < 2 {
		nameNode := a.res.Nodes.At(n.ChildNode)
		return a.errAt(nameNode, "'%s' takes 2 parameters, but only %d %s given", functionName, len(args), pluralWere(len(args)))
	}

	if functionName == "set" {
		globalNameNode := a.res.Nodes.At(args[0])
		if !globalNameNode.IsPrimitive {
			return a.errAt(globalNameNode, "set takes a global, but a function call was given instead")
		}

		globalName := strings.ToLower(globalNameNode.String())
		globalValueType, ok := a.globalType(globalName)
		if !ok {
			reason := "was not found"
			if defs.Lookup(globalName, types.TargetAny, defs.KindGlobal) != nil {
				reason = "is not defined for the target engine (it is defined for another engine however)"
			}
			return a.errAt(globalNameNode, "set takes a global, but '%s' %s", globalName, reason)
		}

		n.Type = globalValueType
		globalNameNode.Type = globalValueType
		globalNameNode.IsGlobal = true
		globalNameNode.SetString(globalName)

		return a.resolveElement(args[1], globalValueType, false)
	}

	// `=` and `!=`: a global on either side drives the other side's type;
	// two globals must agree; with no global in sight, compare as reals
	// unless one side is a call with a known return type.
	n0 := a.res.Nodes.At(args[0])
	n1 := a.res.Nodes.At(args[1])

	type0, isGlobal0 := a.primitiveGlobalType(n0)
	type1, isGlobal1 := a.primitiveGlobalType(n1)

	var testType types.ValueType
	switch {
	case isGlobal0 && isGlobal1:
		if type0 != type1 {
			return a.errAt(n, "cannot compare '%s' (a %s) with '%s' (a %s)", n0.String(), type0, n1.String(), type1)
		}
		testType = type0
	case isGlobal0:
		testType = type0
	case isGlobal1:
		testType = type1
	default:
		testType = types.Real
		if !n0.IsPrimitive {
			if t, ok := a.functionReturnType(a.res.Nodes.At(n0.ChildNode).String()); ok {
				testType = t
			}
		} else if !n1.IsPrimitive {
			if t, ok := a.functionReturnType(a.res.Nodes.At(n1.ChildNode).String()); ok {
				testType = t
			}
		}
	}

	if err := a.resolveElement(args[0], testType, false); err != nil {
		return err
	}
	return a.resolveElement(args[1], testType, false)
}

// primitiveGlobalType reports whether a node is a primitive that names a
// global, and that global's declared type.
func (a *Analyzer) primitiveGlobalType(n *ast.Node) (types.ValueType, bool) {
	if !n.IsPrimitive {
		return types.Unparsed, false
	}
	return a.globalType(strings.ToLower(n.String()))
}

// resolveArguments resolves a regular call's argument list against its
// parameter descriptors.
func (a *Analyzer) resolveArguments(node ast.NodeIndex, functionName string, definition *defs.Definition, preferred types.ValueType) *errors.CompileError {
	n := a.res.Nodes.At(node)
	nameNode := a.res.Nodes.At(n.ChildNode)
	maxArguments := len(definition.Parameters)

	argumentIndex := 0
	for element := nameNode.NextNode; element != ast.NullNode; argumentIndex++ {
		elementNode := a.res.Nodes.At(element)

		var parameter *defs.Parameter
		if argumentIndex >= maxArguments {
			// Extra arguments are legal only on a variadic tail.
			parameter = &definition.Parameters[maxArguments-1]
			if !parameter.Many {
				return a.errAt(elementNode, "'%s' takes %d parameter%s, but more were given", functionName, maxArguments, plural(maxArguments))
			}
		} else {
			parameter = &definition.Parameters[argumentIndex]
		}

		elementPreferred := parameter.Type
		if parameter.Type == types.Passthrough {
			if parameter.PassthroughLast && elementNode.NextNode != ast.NullNode {
				// Only the terminal expression carries the block's value.
				elementPreferred = types.Void
			} else {
				elementPreferred = preferred
				n.Type = elementPreferred
			}
		}

		if err := a.resolveElement(element, elementPreferred, parameter.AllowUppercase); err != nil {
			return err
		}

		element = elementNode.NextNode
	}

	if argumentIndex < maxArguments && !definition.Parameters[argumentIndex].Optional {
		return a.errAt(nameNode, "'%s' takes %d parameter%s, but only %d %s given", functionName, maxArguments, plural(maxArguments), argumentIndex, pluralWere(argumentIndex))
	}

	return nil
}

// convert reconciles an actual type against a preferred one under the
// engine's conversion rules, returning the resulting type.
func (a *Analyzer) convert(preferred, actual types.ValueType, at *ast.Node) (types.ValueType, *errors.CompileError) {
	if preferred == actual || preferred == types.Passthrough {
		return actual, nil
	}

	switch {
	// Converting between real and int is fine either way.
	case preferred == types.Real && (actual == types.Long || actual == types.Short):
		return preferred, nil
	case actual == types.Real && (preferred == types.Long || preferred == types.Short):
		return preferred, nil

	// Demoting a long is accepted even though it can overflow; the engine
	// has always allowed it, and matching its output matters more than
	// catching the overflow here.
	case preferred == types.Short && actual == types.Long:
		return preferred, nil

	case preferred == types.Boolean && (actual == types.Long || actual == types.Short):
		return preferred, nil

	// Anything object-shaped can stand in where an object is wanted.
	case preferred == types.Object || preferred == types.ObjectList:
		switch actual {
		case types.Object, types.Unit, types.Weapon, types.Scenery, types.Vehicle, types.Device:
			return preferred, nil
		}
	}

	return actual, a.errAt(at, "expected a %s, but %s cannot be converted into one", preferred, actual)
}

func (a *Analyzer) errAt(n *ast.Node, format string, args ...any) *errors.CompileError {
	return errors.NewSyntaxErrorAt(n.File, n.Line, n.Column, format, args...)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func pluralWere(n int) string {
	if n == 1 {
		return "was"
	}
	return "were"
}
