package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
)

// Facts is the world state visible to chronicle conditions.
type Facts struct {
	Year       int
	Turn       int
	Countries  int
	ActiveWars int
}

func (f Facts) activation() map[string]any {
	return map[string]any{
		"year":        int64(f.Year),
		"turn":        int64(f.Turn),
		"countries":   int64(f.Countries),
		"active_wars": int64(f.ActiveWars),
	}
}

// Registry holds the CEL environment conditions are compiled against.
type Registry struct {
	env *cel.Env
}

// NewRegistry declares the calendar variables and a roll(low, high)
// function backed by src.
func NewRegistry(src engine.Source) (*Registry, error) {
	if src == nil {
		src = engine.CryptoSource{}
	}
	env, err := cel.NewEnv(
		cel.Variable("year", cel.IntType),
		cel.Variable("turn", cel.IntType),
		cel.Variable("countries", cel.IntType),
		cel.Variable("active_wars", cel.IntType),

		cel.Function("roll",
			cel.Overload("roll_int_int",
				[]*cel.Type{cel.IntType, cel.IntType},
				cel.IntType,
				cel.BinaryBinding(func(lhs, rhs ref.Val) ref.Val {
					low, ok1 := lhs.Value().(int64)
					high, ok2 := rhs.Value().(int64)
					if !ok1 || !ok2 || low > high {
						return types.NewErr("roll(%v, %v): bad range", lhs, rhs)
					}
					return types.Int(src.IntRange(int(low), int(high)))
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env}, nil
}

// Compile checks an expression and prepares it for evaluation.
func (r *Registry) Compile(expression string) (cel.Program, error) {
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrInvalidArgument, iss.Err())
	}
	return r.env.Program(ast)
}

// evaluate runs a compiled expression against facts.
func evaluate(prog cel.Program, facts Facts) (any, error) {
	out, _, err := prog.Eval(facts.activation())
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}
