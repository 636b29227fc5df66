package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
)

type caseRepository struct {
	mu    sync.RWMutex
	cases map[string]*model.Case
	now   func() time.Time
}

func newCaseRepository(now func() time.Time) *caseRepository {
	return &caseRepository{
		cases: make(map[string]*model.Case),
		now:   now,
	}
}

// copyStepResult creates a deep copy of a step result
func copyStepResult(r model.StepResult) model.StepResult {
	copied := model.StepResult{
		StepID:    r.StepID,
		Decision:  r.Decision,
		Comment:   r.Comment,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Inputs != nil {
		copied.Inputs = make(map[string]any, len(r.Inputs))
		for k, v := range r.Inputs {
			copied.Inputs[k] = v
		}
	}
	if r.Checklist != nil {
		copied.Checklist = make(map[string]bool, len(r.Checklist))
		for k, v := range r.Checklist {
			copied.Checklist[k] = v
		}
	}
	return copied
}

// copyCase creates a deep copy of a case
func copyCase(c *model.Case) *model.Case {
	copied := &model.Case{
		ID:         c.ID,
		Title:      c.Title,
		Status:     c.Status,
		Priority:   c.Priority,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		TemplateID: c.TemplateID,
	}
	if c.Assignee != nil {
		assignee := *c.Assignee
		copied.Assignee = &assignee
	}
	copied.Facts = make([]model.Fact, len(c.Facts))
	copy(copied.Facts, c.Facts)
	copied.StepResults = make([]model.StepResult, 0, len(c.StepResults))
	for _, r := range c.StepResults {
		copied.StepResults = append(copied.StepResults, copyStepResult(r))
	}
	return copied
}

func (r *caseRepository) Get(ctx context.Context, id string) (*model.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.cases[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", id))
	}

	return copyCase(c), nil
}

func (r *caseRepository) List(ctx context.Context, opts ...interfaces.ListCaseOption) ([]*model.Case, error) {
	cfg := interfaces.BuildListCaseConfig(opts...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	cases := make([]*model.Case, 0, len(r.cases))
	for _, c := range r.cases {
		if !matchCase(c, cfg) {
			continue
		}
		cases = append(cases, copyCase(c))
	}

	sort.Slice(cases, func(i, j int) bool {
		if !cases[i].UpdatedAt.Equal(cases[j].UpdatedAt) {
			return cases[i].UpdatedAt.After(cases[j].UpdatedAt)
		}
		return cases[i].ID < cases[j].ID
	})

	return cases, nil
}

type caseFilter interface {
	Query() string
	Status() string
	Priority() string
	Assignee() string
	Unassigned() bool
}

func matchCase(c *model.Case, cfg caseFilter) bool {
	if q := cfg.Query(); q != "" {
		hay := strings.ToLower(c.ID + " " + c.Title)
		if !strings.Contains(hay, strings.ToLower(q)) {
			return false
		}
	}
	if s := cfg.Status(); s != "" && string(c.Status) != s {
		return false
	}
	if p := cfg.Priority(); p != "" && string(c.Priority) != p {
		return false
	}
	if cfg.Unassigned() {
		return c.Assignee == nil
	}
	if a := cfg.Assignee(); a != "" {
		if c.Assignee == nil || *c.Assignee != a {
			return false
		}
	}
	return true
}

func (r *caseRepository) Put(ctx context.Context, c *model.Case) (*model.Case, error) {
	if c.ID == "" {
		return nil, goerr.New("case ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyCase(c)
	now := r.now()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now
	}
	if created.UpdatedAt.IsZero() {
		created.UpdatedAt = now
	}

	r.cases[created.ID] = created
	return copyCase(created), nil
}

func (r *caseRepository) Update(ctx context.Context, c *model.Case) (*model.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.cases[c.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "case not found", goerr.V("id", c.ID))
	}

	updated := copyCase(c)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = r.now()

	r.cases[updated.ID] = updated
	return copyCase(updated), nil
}
