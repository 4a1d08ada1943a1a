package port

import "adgate/internal/core/domain"

// TargetingRules evaluates optional campaign targeting expressions.
type TargetingRules interface {
	// Compile reports whether rule is a valid expression.
	Compile(rule string) error
	// Match evaluates rule for facts; an empty rule matches everything.
	Match(rule string, facts domain.TargetingFacts) (bool, error)
}
