// Package hsc is the public facade of the script compiler. An Instance
// accumulates source files, compiles them as one logical translation unit
// against a chosen engine target, and publishes the resulting node, script,
// and global arrays for downstream serializers.
//
// An Instance is owned by a single caller. Operations on distinct
// instances are independent and may run concurrently; operations on the
// same instance must be serialized externally.
package hsc

import (
	"github.com/cwbudde/go-hsc/ast"
	"github.com/cwbudde/go-hsc/errors"
	"github.com/cwbudde/go-hsc/internal/lexer"
	"github.com/cwbudde/go-hsc/internal/parser"
	"github.com/cwbudde/go-hsc/internal/semantic"
	"github.com/cwbudde/go-hsc/types"
)

// WarnFunc receives non-fatal diagnostics during Compile. It is invoked
// synchronously; the file name and 1-based coordinates locate the source
// construct being warned about.
type WarnFunc func(instance *Instance, message, file string, line, column int)

// Option configures an Instance at creation.
type Option func(*Instance)

// WithOptimizationLevel sets the initial optimization level.
func WithOptimizationLevel(level types.OptimizationLevel) Option {
	return func(i *Instance) { i.level = level }
}

// WithWarnFunc sets the initial warning callback.
func WithWarnFunc(warn WarnFunc) Option {
	return func(i *Instance) { i.warn = warn }
}

// Instance holds the accumulated sources and the last successful
// compilation's results.
type Instance struct {
	target   types.CompileTarget
	level    types.OptimizationLevel
	warn     WarnFunc
	userData any

	fileNames []string
	tokens    []lexer.Token

	lastError *errors.CompileError

	nodes   []ast.Node
	scripts []ast.Script
	globals []ast.Global
}

// New creates an instance compiling for the given engine target.
func New(target types.CompileTarget, opts ...Option) *Instance {
	i := &Instance{target: target}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// SetWarnFunc replaces the warning callback. A nil callback disables
// warnings.
func (i *Instance) SetWarnFunc(warn WarnFunc) {
	i.warn = warn
}

// SetOptimizationLevel replaces the optimization level used by subsequent
// compiles.
func (i *Instance) SetOptimizationLevel(level types.OptimizationLevel) {
	i.level = level
}

// Target returns the engine target the instance compiles for.
func (i *Instance) Target() types.CompileTarget {
	return i.target
}

// SetUserData attaches an arbitrary caller value to the instance.
func (i *Instance) SetUserData(data any) {
	i.userData = data
}

// UserData returns the value set with SetUserData.
func (i *Instance) UserData() any {
	return i.userData
}

// LoadSource tokenizes one source file and appends its tokens to the
// instance's translation unit. On failure the diagnostic records the file
// name, but the file is not added to the file list.
func (i *Instance) LoadSource(data []byte, fileName string) error {
	i.lastError = nil

	tokens, err := lexer.Tokenize(data, len(i.fileNames))
	if err != nil {
		err.File = fileName
		i.lastError = err
		return err
	}

	i.fileNames = append(i.fileNames, fileName)
	i.tokens = append(i.tokens, tokens...)
	return nil
}

// Compile consumes the accumulated tokens and builds the node graph and
// the script and global tables. On success the published arrays replace any
// previous results and the token buffer is cleared; on failure partial
// results are discarded and the previously published results remain.
func (i *Instance) Compile() error {
	i.lastError = nil

	result, err := parser.Build(i.tokens, i.level)
	if err == nil {
		analyzer := semantic.New(result, i.target, i.semanticWarn())
		err = analyzer.Analyze()
	}

	if err != nil {
		err.File = i.fileName(err.FileIndex)
		i.lastError = err
		return err
	}

	i.nodes = result.Nodes.Nodes
	i.scripts = result.Scripts
	i.globals = result.Globals
	i.tokens = nil
	return nil
}

// semanticWarn adapts the instance's warning callback to the analyzer,
// resolving file indices into names.
func (i *Instance) semanticWarn() semantic.WarnFunc {
	if i.warn == nil {
		return nil
	}
	return func(message string, file, line, column int) {
		i.warn(i, message, i.fileName(file), line, column)
	}
}

func (i *Instance) fileName(index int) string {
	if index >= 0 && index < len(i.fileNames) {
		return i.fileNames[index]
	}
	return ""
}

// Nodes returns the last successful compilation's node array. The slice
// aliases instance-owned storage and is invalidated by the next Compile.
func (i *Instance) Nodes() []ast.Node {
	return i.nodes
}

// Scripts returns the last successful compilation's script table. The
// slice aliases instance-owned storage and is invalidated by the next
// Compile.
func (i *Instance) Scripts() []ast.Script {
	return i.scripts
}

// Globals returns the last successful compilation's global table. The
// slice aliases instance-owned storage and is invalidated by the next
// Compile.
func (i *Instance) Globals() []ast.Global {
	return i.globals
}

// FileNames returns the names of the sources loaded so far, in load order.
func (i *Instance) FileNames() []string {
	return i.fileNames
}

// LastError returns the diagnostic from the most recent LoadSource or
// Compile, or nil if it succeeded.
func (i *Instance) LastError() *errors.CompileError {
	return i.lastError
}
