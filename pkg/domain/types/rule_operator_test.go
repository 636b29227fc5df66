package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

func TestRuleOperator_Compare(t *testing.T) {
	cases := []struct {
		op        types.RuleOperator
		value     float64
		threshold float64
		want      bool
	}{
		{types.RuleOpGTE, 1000000, 1000000, true},
		{types.RuleOpGTE, 999999, 1000000, false},
		{types.RuleOpGT, 1000001, 1000000, true},
		{types.RuleOpGT, 1000000, 1000000, false},
		{types.RuleOpLTE, 5, 5, true},
		{types.RuleOpLTE, 6, 5, false},
		{types.RuleOpLT, 4, 5, true},
		{types.RuleOpLT, 5, 5, false},
		{types.RuleOpEQ, 5, 5, true},
		{types.RuleOpEQ, 5.5, 5, false},
		{types.RuleOpNE, 5.5, 5, true},
		{types.RuleOpNE, 5, 5, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.op), func(t *testing.T) {
			gt.Value(t, tc.op.Compare(tc.value, tc.threshold)).Equal(tc.want)
		})
	}
}

func TestRuleOperator_Compare_UnknownOperator(t *testing.T) {
	gt.Value(t, types.RuleOperator("~=").Compare(1, 1)).Equal(false)
}

func TestParseRuleOperator(t *testing.T) {
	for _, op := range types.AllRuleOperators() {
		parsed, err := types.ParseRuleOperator(op.String())
		gt.NoError(t, err)
		gt.Value(t, parsed).Equal(op)
	}

	_, err := types.ParseRuleOperator("=")
	gt.Error(t, err)
}
