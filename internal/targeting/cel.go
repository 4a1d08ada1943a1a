// Package targeting evaluates campaign targeting rules written in CEL, e.g.
//
//	country in ["US", "CA"] && resource != "voice"
//
// Rules see three string variables: tier, country and resource.
package targeting

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"

	"adgate/internal/core/domain"
)

// ErrNotBoolean is returned when a rule does not evaluate to a boolean.
var ErrNotBoolean = errors.New("targeting: rule must evaluate to bool")

// Evaluator compiles rules once and caches the resulting programs.
// It is safe for concurrent use.
type Evaluator struct {
	env      *cel.Env
	programs sync.Map // rule string -> cel.Program
}

// New creates an evaluator with the targeting variables declared.
func New() (*Evaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable("tier", cel.StringType),
		cel.Variable("country", cel.StringType),
		cel.Variable("resource", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("targeting: new env: %w", err)
	}
	return &Evaluator{env: env}, nil
}

// Compile checks that rule parses and type-checks to a boolean.
func (e *Evaluator) Compile(rule string) error {
	_, err := e.program(rule)
	return err
}

// Match evaluates rule against facts. An empty rule always matches.
func (e *Evaluator) Match(rule string, facts domain.TargetingFacts) (bool, error) {
	if strings.TrimSpace(rule) == "" {
		return true, nil
	}
	prg, err := e.program(rule)
	if err != nil {
		return false, err
	}
	out, _, err := prg.Eval(map[string]any{
		"tier":     string(facts.Tier),
		"country":  strings.ToUpper(facts.Country),
		"resource": string(facts.Resource),
	})
	if err != nil {
		return false, fmt.Errorf("targeting: eval: %w", err)
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, ErrNotBoolean
	}
	return matched, nil
}

func (e *Evaluator) program(rule string) (cel.Program, error) {
	if p, ok := e.programs.Load(rule); ok {
		return p.(cel.Program), nil
	}
	ast, iss := e.env.Compile(rule)
	if iss.Err() != nil {
		return nil, fmt.Errorf("targeting: compile: %w", iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w, got %s", ErrNotBoolean, ast.OutputType())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("targeting: program: %w", err)
	}
	e.programs.Store(rule, prg)
	return prg, nil
}
