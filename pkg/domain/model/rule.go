package model

import (
	"math"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// RuleCondition is the single numeric condition of a rule
type RuleCondition struct {
	FactKey  string             `json:"factKey"`
	Operator types.RuleOperator `json:"op"`
	Value    float64            `json:"value"`
}

// RuleTarget is the status a matching rule forces onto a case
type RuleTarget struct {
	Status types.CaseStatus `json:"status"`
}

// Rule is a single-condition trigger evaluated against case facts.
// Rules are kept in evaluation order; the first enabled match wins.
type Rule struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Enabled   bool          `json:"enabled"`
	If        RuleCondition `json:"if"`
	Then      RuleTarget    `json:"then"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Validate checks the structural constraints of a rule
func (r *Rule) Validate() error {
	if r.Name == "" {
		return goerr.Wrap(ErrInvalidRule, "rule name is required")
	}
	if r.If.FactKey == "" {
		return goerr.Wrap(ErrInvalidRule, "rule fact key is required", goerr.V(ValueKey, r.Name))
	}
	if !r.If.Operator.IsValid() {
		return goerr.Wrap(ErrInvalidRule, "invalid rule operator",
			goerr.V(FieldKey, "if.op"), goerr.V(ValueKey, r.If.Operator))
	}
	if math.IsNaN(r.If.Value) || math.IsInf(r.If.Value, 0) {
		return goerr.Wrap(ErrInvalidRule, "rule threshold must be finite",
			goerr.V(FieldKey, "if.value"))
	}
	switch r.Then.Status {
	case types.CaseStatusNeedsReview, types.CaseStatusFailed:
	default:
		return goerr.Wrap(ErrInvalidRule, "rule target status must be NEEDS_REVIEW or FAILED",
			goerr.V(FieldKey, "then.status"), goerr.V(ValueKey, r.Then.Status))
	}
	return nil
}

// EvaluateRules runs the rules in stored order against the case facts and
// returns the target status of the first enabled match. Disabled rules are
// skipped. A missing fact never matches any operator, not even "!=", and a
// fact whose value does not parse as a finite number is skipped.
func EvaluateRules(rules []*Rule, facts []Fact) (types.CaseStatus, bool) {
	values := make(map[string]string, len(facts))
	for _, f := range facts {
		values[f.Key] = f.Value
	}

	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}

		raw, ok := values[rule.If.FactKey]
		if !ok {
			continue
		}

		num, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
			continue
		}

		if rule.If.Operator.Compare(num, rule.If.Value) {
			return rule.Then.Status, true
		}
	}

	return "", false
}
