package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

type templateRepository struct {
	mu        sync.RWMutex
	templates map[string]*model.Template
	order     []string
}

func newTemplateRepository() *templateRepository {
	return &templateRepository{
		templates: make(map[string]*model.Template),
	}
}

// copyTemplate creates a deep copy of a template
func copyTemplate(t *model.Template) *model.Template {
	copied := &model.Template{
		ID:    t.ID,
		Name:  t.Name,
		Steps: make([]model.Step, len(t.Steps)),
	}
	for i, s := range t.Steps {
		step := model.Step{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Type:        s.Type,
			Required:    s.Required,
		}
		if s.DecisionOptions != nil {
			step.DecisionOptions = append([]types.DecisionOption{}, s.DecisionOptions...)
		}
		if s.InputFields != nil {
			step.InputFields = make([]model.InputField, len(s.InputFields))
			for j, f := range s.InputFields {
				step.InputFields[j] = f
				if f.Options != nil {
					step.InputFields[j].Options = append([]string{}, f.Options...)
				}
			}
		}
		if s.ChecklistItems != nil {
			step.ChecklistItems = append([]model.ChecklistItem{}, s.ChecklistItems...)
		}
		copied.Steps[i] = step
	}
	return copied
}

func (r *templateRepository) Get(ctx context.Context, id string) (*model.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.templates[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "template not found", goerr.V("id", id))
	}

	return copyTemplate(t), nil
}

func (r *templateRepository) List(ctx context.Context) ([]*model.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	templates := make([]*model.Template, 0, len(r.order))
	for _, id := range r.order {
		templates = append(templates, copyTemplate(r.templates[id]))
	}

	return templates, nil
}

func (r *templateRepository) Put(ctx context.Context, tpl *model.Template) (*model.Template, error) {
	if tpl.ID == "" {
		return nil, goerr.New("template ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[tpl.ID]; !exists {
		r.order = append(r.order, tpl.ID)
	}
	r.templates[tpl.ID] = copyTemplate(tpl)

	return copyTemplate(r.templates[tpl.ID]), nil
}
