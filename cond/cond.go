// Package cond adds expression-driven conditions to graph composition.
//
// Conditions are boolean expr-lang expressions evaluated once, at
// composition time, against an environment such as a configuration struct
// or map:
//
//	env := map[string]any{"env": "prod", "replicas": 3}
//
//	metrics, err := cond.If(`env == "prod" && replicas > 1`, env, metricsItems)
//	if err != nil {
//		return err
//	}
//	g := depgraph.New(coreItems, metrics)
package cond

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/ARTM2000/depgraph"
)

// Eval compiles and runs a boolean expression against env.
func Eval(expression string, env any) (bool, error) {
	program, err := expr.Compile(expression, expr.Env(env), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("cond: compile %q: %w", expression, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("cond: run %q: %w", expression, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("cond: %q evaluated to %T, want bool", expression, out)
	}
	return ok, nil
}

// If contributes parts when expression evaluates to true against env.
func If(expression string, env any, parts ...depgraph.Part) (depgraph.Items, error) {
	ok, err := Eval(expression, env)
	if err != nil {
		return nil, err
	}
	return depgraph.If(ok, parts...), nil
}

// Either contributes first when expression evaluates to true against env and
// second otherwise.
func Either(expression string, env any, first, second depgraph.Part) (depgraph.Items, error) {
	ok, err := Eval(expression, env)
	if err != nil {
		return nil, err
	}
	return depgraph.Either(ok, first, second), nil
}
