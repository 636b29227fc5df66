package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
)

type ruleRepository struct {
	mu    sync.RWMutex
	rules []*model.Rule
	idGen interfaces.IDGenerator
	now   func() time.Time
}

func newRuleRepository(idGen interfaces.IDGenerator, now func() time.Time) *ruleRepository {
	return &ruleRepository{
		idGen: idGen,
		now:   now,
	}
}

// copyRule creates a copy of a rule
func copyRule(r *model.Rule) *model.Rule {
	copied := *r
	return &copied
}

func (r *ruleRepository) List(ctx context.Context) ([]*model.Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]*model.Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, copyRule(rule))
	}

	return rules, nil
}

// Create prepends the rule so the newest rule is evaluated first
func (r *ruleRepository) Create(ctx context.Context, rule *model.Rule) (*model.Rule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyRule(rule)
	if created.ID == "" {
		created.ID = r.idGen.NewID("rule")
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = r.now()
	}

	r.rules = append([]*model.Rule{created}, r.rules...)
	return copyRule(created), nil
}

func (r *ruleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rule := range r.rules {
		if rule.ID == id {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			return nil
		}
	}

	return goerr.Wrap(ErrNotFound, "rule not found", goerr.V("id", id))
}
