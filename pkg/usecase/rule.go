package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
)

type RuleUseCase struct {
	repo interfaces.Repository
}

func NewRuleUseCase(repo interfaces.Repository) *RuleUseCase {
	return &RuleUseCase{
		repo: repo,
	}
}

func (uc *RuleUseCase) ListRules(ctx context.Context) ([]*model.Rule, error) {
	rules, err := uc.repo.Rule().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list rules")
	}
	return rules, nil
}

// CreateRule validates and stores a rule. ID and CreatedAt are assigned by
// the store; the new rule is evaluated before all existing ones.
func (uc *RuleUseCase) CreateRule(ctx context.Context, rule *model.Rule) (*model.Rule, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Rule().Create(ctx, rule)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create rule")
	}
	return created, nil
}

func (uc *RuleUseCase) DeleteRule(ctx context.Context, id string) error {
	if err := uc.repo.Rule().Delete(ctx, id); err != nil {
		return goerr.Wrap(ErrRuleNotFound, "rule not found", goerr.V(RuleIDKey, id))
	}
	return nil
}
