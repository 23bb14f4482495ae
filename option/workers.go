package option

import (
	"github.com/expr-lang/expr"

	"github.com/ardnew/morekong/pkg"
)

// DefaultWorkersExpr is the formula for the default worker count.
const DefaultWorkersExpr = "cpu * 2 + 1"

// DefaultWorkers returns the default worker count for the given number of
// logical CPUs.
func DefaultWorkers(cpus int) int {
	return 2*cpus + 1
}

// EvalWorkers evaluates the worker count formula src with the variable cpu
// set to cpus. The formula must produce an integer.
//
// Errors wrap [pkg.ErrWorkersExpr].
func EvalWorkers(src string, cpus int) (int, error) {
	env := map[string]any{"cpu": cpus}

	program, err := expr.Compile(src, expr.Env(env), expr.AsInt())
	if err != nil {
		return 0, pkg.ErrWorkersExpr.Wrapf("%q", src).Wrap(err)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return 0, pkg.ErrWorkersExpr.Wrapf("%q", src).Wrap(err)
	}

	n, ok := out.(int)
	if !ok {
		return 0, pkg.ErrWorkersExpr.Wrapf("%q: result %v is not an integer", src, out)
	}

	return n, nil
}
