package interfaces

import (
	"context"

	"github.com/secmon-lab/themis/pkg/domain/model"
)

// CaseRepository defines the interface for Case data access
type CaseRepository interface {
	// Get retrieves a case by ID
	Get(ctx context.Context, id string) (*model.Case, error)

	// List retrieves cases with optional filtering, sorted by UpdatedAt
	// descending
	List(ctx context.Context, opts ...ListCaseOption) ([]*model.Case, error)

	// Put inserts a case with its supplied ID, stamping timestamps when they
	// are zero. Used by seeding.
	Put(ctx context.Context, c *model.Case) (*model.Case, error)

	// Update replaces an existing case and refreshes UpdatedAt
	Update(ctx context.Context, c *model.Case) (*model.Case, error)
}
