package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/secmon-lab/themis/pkg/repository/memory"
	"github.com/secmon-lab/themis/pkg/service/idgen"
)

func newRule(name string, threshold float64) *model.Rule {
	return &model.Rule{
		Name:    name,
		Enabled: true,
		If: model.RuleCondition{
			FactKey:  "amount",
			Operator: types.RuleOpGTE,
			Value:    threshold,
		},
		Then: model.RuleTarget{Status: types.CaseStatusNeedsReview},
	}
}

func TestRuleRepository_Create(t *testing.T) {
	t.Run("assigns ID and CreatedAt", func(t *testing.T) {
		repo := memory.New(memory.WithIDGenerator(idgen.NewSequence()))
		ctx := context.Background()

		created, err := repo.Rule().Create(ctx, newRule("large amount", 1000000))
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).Equal("rule_001")
		gt.Bool(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("keeps caller-supplied ID", func(t *testing.T) {
		repo := memory.New()
		ctx := context.Background()

		rule := newRule("large amount", 1000000)
		rule.ID = "rule_amount_over_1000000"

		created, err := repo.Rule().Create(ctx, rule)
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).Equal("rule_amount_over_1000000")
	})

	t.Run("newest rule is listed first", func(t *testing.T) {
		repo := memory.New()
		ctx := context.Background()

		_, err := repo.Rule().Create(ctx, newRule("first", 100))
		gt.NoError(t, err).Required()
		_, err = repo.Rule().Create(ctx, newRule("second", 200))
		gt.NoError(t, err).Required()

		rules, err := repo.Rule().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, rules).Length(2)
		gt.Value(t, rules[0].Name).Equal("second")
		gt.Value(t, rules[1].Name).Equal("first")
	})
}

func TestRuleRepository_Delete(t *testing.T) {
	repo := memory.New(memory.WithIDGenerator(idgen.NewSequence()))
	ctx := context.Background()

	created, err := repo.Rule().Create(ctx, newRule("large amount", 1000000))
	gt.NoError(t, err).Required()

	gt.NoError(t, repo.Rule().Delete(ctx, created.ID))

	rules, err := repo.Rule().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, rules).Length(0)

	err = repo.Rule().Delete(ctx, created.ID)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()
}

func TestRuleRepository_ListReturnsCopies(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	_, err := repo.Rule().Create(ctx, newRule("large amount", 1000000))
	gt.NoError(t, err).Required()

	rules, err := repo.Rule().List(ctx)
	gt.NoError(t, err).Required()
	rules[0].Enabled = false

	again, err := repo.Rule().List(ctx)
	gt.NoError(t, err).Required()
	gt.Bool(t, again[0].Enabled).True()
}
