package interfaces

import (
	"context"

	"github.com/secmon-lab/themis/pkg/domain/model"
)

// RuleRepository defines the interface for Rule data access.
// The store preserves evaluation order: newly created rules are prepended so
// the most recently added rule is checked first.
type RuleRepository interface {
	// List retrieves rules in evaluation order
	List(ctx context.Context) ([]*model.Rule, error)

	// Create prepends a rule, assigning ID and CreatedAt when absent
	Create(ctx context.Context, rule *model.Rule) (*model.Rule, error)

	// Delete removes a rule by ID
	Delete(ctx context.Context, id string) error
}
