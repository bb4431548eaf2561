// Package parser converts the accumulated token stream into the flat,
// index-linked node graph and the script and global tables.
//
// Parsing happens in two phases over the same stream: a declaration census
// that validates the top level and sizes the tables exactly, and the
// construction walk that builds nodes. The `cond` special form is desugared
// into a chain of `if` calls here so the type resolver never sees it.
package parser

import (
	"strings"

	"github.com/cwbudde/go-hsc/ast"
	"github.com/cwbudde/go-hsc/errors"
	"github.com/cwbudde/go-hsc/internal/lexer"
	"github.com/cwbudde/go-hsc/types"
)

// Result is the node graph and declaration tables of one translation unit,
// before type resolution.
type Result struct {
	Nodes   ast.NodeArray
	Scripts []ast.Script
	Globals []ast.Global
}

type builder struct {
	tokens []lexer.Token
	ti     int
	level  types.OptimizationLevel
	out    *Result
}

// Build parses the full token stream. The stream must already be
// parenthesis-balanced (the tokenizer guarantees this).
func Build(tokens []lexer.Token, level types.OptimizationLevel) (*Result, *errors.CompileError) {
	scriptCount, globalCount, err := census(tokens)
	if err != nil {
		return nil, err
	}

	b := &builder{
		tokens: tokens,
		level:  level,
		out: &Result{
			Scripts: make([]ast.Script, 0, scriptCount),
			Globals: make([]ast.Global, 0, globalCount),
		},
	}

	for b.ti < len(b.tokens) {
		if err := b.readDeclaration(); err != nil {
			return nil, err
		}
	}

	return b.out, nil
}

// census walks tokens at depth 0 only. Every top-level form must open with a
// parenthesis followed by `global` or `script`; the counts give the exact
// table allocations for the construction walk.
func census(tokens []lexer.Token) (scripts, globals int, err *errors.CompileError) {
	depth := 0
	for ti := 0; ti < len(tokens); ti++ {
		token := &tokens[ti]
		delta := int(token.Parenthesis)

		if depth == 0 {
			if delta != 1 {
				return 0, 0, errors.NewSyntaxErrorAt(token.File, token.Line, token.Column, "expected left parenthesis, got '%s'", token.Value)
			}

			// Balance was checked when tokenizing, so an opener always has
			// a token after it.
			next := &tokens[ti+1]
			switch next.Value {
			case "global":
				globals++
			case "script":
				scripts++
			default:
				return 0, 0, errors.NewSyntaxErrorAt(next.File, next.Line, next.Column, "expected 'global' or 'script', got '%s'", next.Value)
			}
			ti++
		}

		depth += delta
	}
	return scripts, globals, nil
}

// readDeclaration consumes one top-level `(global ...)` or `(script ...)`
// form. The census already verified the opening shape.
func (b *builder) readDeclaration() *errors.CompileError {
	b.ti++ // opening parenthesis
	keyword := b.next()

	if keyword.Value == "global" {
		return b.readGlobal(keyword)
	}
	return b.readScript(keyword)
}

// readGlobal parses `(global <type> <name> <expr>)`.
func (b *builder) readGlobal(keyword *lexer.Token) *errors.CompileError {
	typeToken := b.next()
	valueType, ok := types.ValueTypeFromString(typeToken.Value)
	if typeToken.Parenthesis != 0 || !ok {
		return errors.NewSyntaxErrorAt(typeToken.File, typeToken.Line, typeToken.Column, "expected global type, got '%s'", typeToken.Value)
	}

	nameToken := b.next()
	if nameToken.Parenthesis != 0 {
		return errors.NewSyntaxErrorAt(nameToken.File, nameToken.Line, nameToken.Column, "expected global name, got '%s'", nameToken.Value)
	}

	initNode, err := b.readElement()
	if err != nil {
		return err
	}

	if closer := b.peek(); !closer.IsRightParenthesis() {
		return errors.NewSyntaxErrorAt(closer.File, closer.Line, closer.Column, "expected right parenthesis after global initializer, got '%s'", closer.Value)
	}
	b.ti++

	b.out.Globals = append(b.out.Globals, ast.Global{
		Name:      ast.StoreName(nameToken.Value),
		ValueType: valueType,
		FirstNode: initNode,
		File:      keyword.File,
		Line:      keyword.Line,
		Column:    keyword.Column,
	})
	return nil
}

// readScript parses `(script <type> [<return-type>] <name> <body...>)`. The
// return type keyword is required exactly for static and stub scripts;
// every other script type returns void.
func (b *builder) readScript(keyword *lexer.Token) *errors.CompileError {
	typeToken := b.next()
	scriptType, ok := types.ScriptTypeFromString(typeToken.Value)
	if typeToken.Parenthesis != 0 || !ok {
		return errors.NewSyntaxErrorAt(typeToken.File, typeToken.Line, typeToken.Column, "expected script type, got '%s'", typeToken.Value)
	}

	returnType := types.Void
	if scriptType.TakesReturnType() {
		returnToken := b.next()
		returnType, ok = types.ValueTypeFromString(returnToken.Value)
		if returnToken.Parenthesis != 0 || !ok {
			return errors.NewSyntaxErrorAt(returnToken.File, returnToken.Line, returnToken.Column, "expected script return type, got '%s'", returnToken.Value)
		}
	}

	nameToken := b.next()
	if nameToken.Parenthesis != 0 {
		return errors.NewSyntaxErrorAt(nameToken.File, nameToken.Line, nameToken.Column, "expected script name, got '%s'", nameToken.Value)
	}

	rootNode, err := b.readBlock(true)
	if err != nil {
		return err
	}
	root := b.out.Nodes.At(rootNode)
	root.IsPrimitive = false
	root.File = nameToken.File
	root.Line = nameToken.Line
	root.Column = nameToken.Column

	firstNode := b.wrapScriptBody(rootNode, nameToken)

	b.out.Scripts = append(b.out.Scripts, ast.Script{
		Name:       ast.StoreName(nameToken.Value),
		ReturnType: returnType,
		ScriptType: scriptType,
		FirstNode:  firstNode,
		File:       keyword.File,
		Line:       keyword.Line,
		Column:     keyword.Column,
	})
	return nil
}

// wrapScriptBody adds the implicit `(begin ...)` wrapper around a script
// body, or elides it when the optimization level allows: at level 1 when
// the body is already a single `begin` call (so recompiling compiler output
// does not accrete wrappers), at level 2 whenever the body is a single
// call. Elision leaves the wrapper node Unparsed; the compaction pass
// removes the orphan.
func (b *builder) wrapScriptBody(rootNode ast.NodeIndex, nameToken *lexer.Token) ast.NodeIndex {
	root := b.out.Nodes.At(rootNode)

	if b.level >= types.OptimizationPreventGenerationalLoss && root.ChildNode != ast.NullNode {
		only := b.out.Nodes.At(root.ChildNode)
		if only.NextNode == ast.NullNode && !only.IsPrimitive {
			elide := b.level >= types.OptimizationDedupeExtra
			if !elide {
				name := b.out.Nodes.At(only.ChildNode)
				elide = name.String() == "begin"
			}
			if elide {
				inner := root.ChildNode
				root.Type = types.Unparsed
				root.ChildNode = ast.NullNode
				return inner
			}
		}
	}

	originalFirst := root.ChildNode
	beginName := b.out.Nodes.Append("begin", true)
	leaf := b.out.Nodes.At(beginName)
	leaf.IsPrimitive = true
	leaf.NextNode = originalFirst
	leaf.File = nameToken.File
	leaf.Line = nameToken.Line
	leaf.Column = nameToken.Column

	// Re-fetch: the append may have grown the arena.
	root = b.out.Nodes.At(rootNode)
	root.ChildNode = beginName
	return rootNode
}

// readElement reads either a single word/string token (producing a
// primitive leaf) or a parenthesised block.
func (b *builder) readElement() (ast.NodeIndex, *errors.CompileError) {
	first := b.next()

	var node ast.NodeIndex
	if first.Parenthesis == 0 {
		node = b.out.Nodes.Append(first.Value, true)
	} else {
		var err *errors.CompileError
		node, err = b.readBlock(false)
		if err != nil {
			return ast.NullNode, err
		}
	}

	n := b.out.Nodes.At(node)
	n.IsPrimitive = first.Parenthesis == 0
	n.File = first.File
	n.Line = first.Line
	n.Column = first.Column
	return node, nil
}

// readBlock reads sibling elements until the enclosing right parenthesis
// and returns a fresh interior node whose child is the first sibling. The
// opening parenthesis has already been consumed.
func (b *builder) readBlock(isScriptBlock bool) (ast.NodeIndex, *errors.CompileError) {
	current := b.peek()

	// A block in function-name position is only legal as a script body.
	if !isScriptBlock && current.IsLeftParenthesis() {
		return ast.NullNode, errors.NewSyntaxErrorAt(current.File, current.Line, current.Column, "block starts with an expression (expected function name)")
	}

	if current.IsRightParenthesis() {
		return ast.NullNode, errors.NewSyntaxErrorAt(current.File, current.Line, current.Column, "block is empty (unexpected right parenthesis)")
	}

	if !isScriptBlock && current.Parenthesis == 0 && strings.EqualFold(current.Value, "cond") {
		return b.readCond()
	}

	rootNode := b.out.Nodes.Append("", false)
	lastNode := ast.NullNode

	for !b.peek().IsRightParenthesis() {
		newNode, err := b.readElement()
		if err != nil {
			return ast.NullNode, err
		}

		if lastNode == ast.NullNode {
			b.out.Nodes.At(rootNode).ChildNode = newNode
		} else {
			b.out.Nodes.At(lastNode).NextNode = newNode
		}
		lastNode = newNode
	}
	b.ti++ // closing parenthesis

	return rootNode, nil
}

// readCond rewrites a `cond` block into a chain of `if` calls: every clause
// `(<predicate> <result...>)` becomes `(if <predicate> (begin <result...>))`,
// and each subsequent `if` becomes the else branch of the previous clause by
// linking it as the next sibling of the previous `(begin ...)` node.
// Called with the token cursor on the `cond` word itself.
func (b *builder) readCond() (ast.NodeIndex, *errors.CompileError) {
	condToken := b.next()

	if b.peek().IsRightParenthesis() {
		return ast.NullNode, errors.NewSyntaxErrorAt(condToken.File, condToken.Line, condToken.Column, "cond requires at least one block enclosed in parenthesis (<condition> <result>)")
	}

	rootNode := ast.NullNode
	elsePredecessor := ast.NullNode

	for !b.peek().IsRightParenthesis() {
		clause := b.peek()
		if !clause.IsLeftParenthesis() {
			return ast.NullNode, errors.NewSyntaxErrorAt(clause.File, clause.Line, clause.Column, "cond requires blocks enclosed in parenthesis (<condition> <result>)")
		}
		b.ti++ // clause opening parenthesis

		predicate, err := b.readElement()
		if err != nil {
			return ast.NullNode, err
		}

		if b.peek().IsRightParenthesis() {
			return ast.NullNode, errors.NewSyntaxErrorAt(clause.File, clause.Line, clause.Column, "cond requires a return value after the condition (<condition> <result>)")
		}

		// Collect the clause results into an implicit (begin ...) call.
		beginCall := b.out.Nodes.Append("", false)
		beginName := b.out.Nodes.Append("begin", true)
		b.initCondNode(beginCall, false, clause)
		b.initCondNode(beginName, true, clause)
		b.out.Nodes.At(beginCall).ChildNode = beginName

		lastResult := beginName
		for !b.peek().IsRightParenthesis() {
			result, err := b.readElement()
			if err != nil {
				return ast.NullNode, err
			}
			b.out.Nodes.At(lastResult).NextNode = result
			lastResult = result
		}
		b.ti++ // clause closing parenthesis

		// (if <predicate> <begin-call>)
		ifCall := b.out.Nodes.Append("", false)
		ifName := b.out.Nodes.Append("if", true)
		b.initCondNode(ifCall, false, clause)
		b.initCondNode(ifName, true, clause)
		b.out.Nodes.At(ifCall).ChildNode = ifName
		b.out.Nodes.At(ifName).NextNode = predicate
		b.out.Nodes.At(predicate).NextNode = beginCall

		if rootNode == ast.NullNode {
			rootNode = ifCall
		} else {
			b.out.Nodes.At(elsePredecessor).NextNode = ifCall
		}
		elsePredecessor = beginCall
	}
	b.ti++ // cond block closing parenthesis

	return rootNode, nil
}

// initCondNode stamps a synthesized cond-rewrite node with the clause's
// source coordinates.
func (b *builder) initCondNode(node ast.NodeIndex, primitive bool, clause *lexer.Token) {
	n := b.out.Nodes.At(node)
	n.IsPrimitive = primitive
	n.File = clause.File
	n.Line = clause.Line
	n.Column = clause.Column
}

// next consumes and returns the current token.
func (b *builder) next() *lexer.Token {
	t := &b.tokens[b.ti]
	b.ti++
	return t
}

// peek returns the current token without consuming it.
func (b *builder) peek() *lexer.Token {
	return &b.tokens[b.ti]
}
