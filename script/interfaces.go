package script

import (
	"context"

	"github.com/deepnoodle-ai/cell"
)

// Evaluator represents compiled code that can be evaluated to a Var.
type Evaluator interface {
	Evaluate(ctx context.Context, globals map[string]any) (cell.Var, error)
}

// Compiler is an interface used to compile source code into an Evaluator.
type Compiler interface {
	Compile(ctx context.Context, code string) (Evaluator, error)
}
