package interfaces

import (
	"context"

	"github.com/secmon-lab/themis/pkg/domain/model"
)

// TemplateRepository defines the interface for Template data access
type TemplateRepository interface {
	// Get retrieves a template by ID
	Get(ctx context.Context, id string) (*model.Template, error)

	// List retrieves all templates in insertion order
	List(ctx context.Context) ([]*model.Template, error)

	// Put inserts or replaces a template keyed by its ID
	Put(ctx context.Context, tpl *model.Template) (*model.Template, error)
}
