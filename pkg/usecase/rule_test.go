package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/secmon-lab/themis/pkg/repository/memory"
	"github.com/secmon-lab/themis/pkg/usecase"
)

func testRule(name string) *model.Rule {
	return &model.Rule{
		Name:    name,
		Enabled: true,
		If: model.RuleCondition{
			FactKey:  "amount",
			Operator: types.RuleOpGTE,
			Value:    1000000,
		},
		Then: model.RuleTarget{Status: types.CaseStatusNeedsReview},
	}
}

func TestRuleUseCase_CreateRule(t *testing.T) {
	t.Run("assigns ID and prepends", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.NewRuleUseCase(repo)
		ctx := context.Background()

		first, err := uc.CreateRule(ctx, testRule("first"))
		gt.NoError(t, err).Required()
		gt.Value(t, first.ID).NotEqual("")
		gt.Bool(t, first.CreatedAt.IsZero()).False()

		_, err = uc.CreateRule(ctx, testRule("second"))
		gt.NoError(t, err).Required()

		rules, err := uc.ListRules(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, rules).Length(2)
		gt.Value(t, rules[0].Name).Equal("second")
	})

	t.Run("invalid rule is rejected", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.NewRuleUseCase(repo)

		broken := testRule("broken")
		broken.Then.Status = types.CaseStatusApproved

		_, err := uc.CreateRule(context.Background(), broken)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, model.ErrInvalidRule)).True()

		rules, err := uc.ListRules(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, rules).Length(0)
	})
}

func TestRuleUseCase_DeleteRule(t *testing.T) {
	repo := memory.New()
	uc := usecase.NewRuleUseCase(repo)
	ctx := context.Background()

	created, err := uc.CreateRule(ctx, testRule("first"))
	gt.NoError(t, err).Required()

	gt.NoError(t, uc.DeleteRule(ctx, created.ID))

	err = uc.DeleteRule(ctx, created.ID)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrRuleNotFound)).True()
}
