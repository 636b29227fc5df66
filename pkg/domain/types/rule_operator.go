package types

import "fmt"

// RuleOperator represents the comparison operator of a rule condition
type RuleOperator string

const (
	RuleOpGTE RuleOperator = ">="
	RuleOpGT  RuleOperator = ">"
	RuleOpLTE RuleOperator = "<="
	RuleOpLT  RuleOperator = "<"
	RuleOpEQ  RuleOperator = "=="
	RuleOpNE  RuleOperator = "!="
)

// AllRuleOperators returns all valid rule operators
func AllRuleOperators() []RuleOperator {
	return []RuleOperator{
		RuleOpGTE,
		RuleOpGT,
		RuleOpLTE,
		RuleOpLT,
		RuleOpEQ,
		RuleOpNE,
	}
}

// IsValid checks if the rule operator is valid
func (o RuleOperator) IsValid() bool {
	switch o {
	case RuleOpGTE, RuleOpGT, RuleOpLTE, RuleOpLT, RuleOpEQ, RuleOpNE:
		return true
	default:
		return false
	}
}

// Compare applies the operator to a fact value and a rule threshold.
// Unknown operators never match.
func (o RuleOperator) Compare(value, threshold float64) bool {
	switch o {
	case RuleOpGTE:
		return value >= threshold
	case RuleOpGT:
		return value > threshold
	case RuleOpLTE:
		return value <= threshold
	case RuleOpLT:
		return value < threshold
	case RuleOpEQ:
		return value == threshold
	case RuleOpNE:
		return value != threshold
	default:
		return false
	}
}

// String returns the string representation of the rule operator
func (o RuleOperator) String() string {
	return string(o)
}

// ParseRuleOperator parses a string into a RuleOperator
func ParseRuleOperator(s string) (RuleOperator, error) {
	op := RuleOperator(s)
	if !op.IsValid() {
		return "", fmt.Errorf("invalid rule operator: %s", s)
	}
	return op, nil
}
