package script

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/deepnoodle-ai/cell"
	"github.com/risor-io/risor"
	"github.com/risor-io/risor/compiler"
	"github.com/risor-io/risor/modules/all"
	"github.com/risor-io/risor/parser"
)

// EngineOptions configure an Engine.
type EngineOptions struct {
	// Globals are visible to every program compiled by the engine, on top
	// of the Risor builtins. Values may be Vars, Risor objects or plain Go
	// values.
	Globals map[string]any

	// Logger receives debug records for each compile and evaluation.
	// Defaults to a discard logger.
	Logger *slog.Logger
}

// Engine compiles Risor code into Programs whose results are Vars.
type Engine struct {
	globals map[string]any
	logger  *slog.Logger
}

// NewEngine returns an Engine with the Risor builtins and opts.Globals
// defined.
func NewEngine(opts EngineOptions) *Engine {
	globals := DefaultGlobals()
	maps.Copy(globals, opts.Globals)
	logger := opts.Logger
	if logger == nil {
		logger = cell.DiscardLogger()
	}
	return &Engine{globals: globals, logger: logger}
}

// DefaultGlobals returns the Risor builtins and modules.
func DefaultGlobals() map[string]any {
	globals := map[string]any{}
	for name, value := range all.Builtins() {
		globals[name] = value
	}
	return globals
}

// Compile compiles code against the engine's globals. Evaluating the
// Program may override their values but cannot introduce new names.
func (e *Engine) Compile(ctx context.Context, code string) (*Program, error) {
	return e.compile(ctx, code, nil)
}

func (e *Engine) compile(ctx context.Context, code string, extra map[string]any) (*Program, error) {
	names := slices.Sorted(maps.Keys(e.globals))
	for name := range extra {
		if _, ok := e.globals[name]; !ok {
			names = append(names, name)
		}
	}

	ast, err := parser.Parse(ctx, code)
	if err != nil {
		return nil, cell.WrapError(cell.ErrorTypeScript, err)
	}
	compiled, err := compiler.Compile(ast, compiler.WithGlobalNames(names))
	if err != nil {
		return nil, cell.WrapError(cell.ErrorTypeScript, err)
	}
	e.logger.Debug("compiled risor script", "globals", len(names))
	return &Program{engine: e, code: compiled}, nil
}

// Eval compiles and evaluates code in one step. Names in globals are
// defined for this evaluation only.
func (e *Engine) Eval(ctx context.Context, code string, globals map[string]any) (cell.Var, error) {
	program, err := e.compile(ctx, code, globals)
	if err != nil {
		return cell.Var{}, err
	}
	return program.Evaluate(ctx, globals)
}

// engineCompiler adapts an Engine to the Compiler interface.
type engineCompiler struct {
	engine *Engine
}

func (c engineCompiler) Compile(ctx context.Context, code string) (Evaluator, error) {
	program, err := c.engine.Compile(ctx, code)
	if err != nil {
		return nil, err
	}
	return program, nil
}

// AsCompiler returns the engine as a Compiler.
func (e *Engine) AsCompiler() Compiler {
	return engineCompiler{engine: e}
}

// Program is compiled Risor code. A Program may be evaluated any number of
// times, including concurrently.
type Program struct {
	engine *Engine
	code   *compiler.Code
}

// Evaluate runs the program and converts its result to a Var. Values in
// globals replace the engine's globals of the same name.
func (p *Program) Evaluate(ctx context.Context, globals map[string]any) (cell.Var, error) {
	combined := make(map[string]any, len(p.engine.globals)+len(globals))
	for name, value := range p.engine.globals {
		combined[name] = risorGlobal(value)
	}
	for name, value := range globals {
		combined[name] = risorGlobal(value)
	}
	obj, err := risor.EvalCode(ctx, p.code, risor.WithGlobals(combined))
	if err != nil {
		return cell.Var{}, cell.WrapError(cell.ErrorTypeScript, err)
	}
	result := FromRisor(obj)
	p.engine.logger.Debug("evaluated risor script", "type", result.Type())
	return result, nil
}
