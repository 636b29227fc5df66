package model

import (
	"time"

	"github.com/secmon-lab/themis/pkg/domain/types"
)

// Fact is a key/value datum attached to a case. Values are stored as text;
// rules coerce them to numbers at evaluation time.
type Fact struct {
	Key   string `json:"key" toml:"key"`
	Value string `json:"value" toml:"value"`
}

// StepResult is the recorded outcome for one step within one case.
// At most one result exists per step; updates are upserts.
type StepResult struct {
	StepID    string               `json:"stepId"`
	Decision  types.DecisionOption `json:"decision,omitempty"`
	Inputs    map[string]any       `json:"inputs,omitempty"`
	Checklist map[string]bool      `json:"checklist,omitempty"`
	Comment   string               `json:"comment,omitempty"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// Case represents one instance of a workflow executed against a template.
// Cases are mutated exclusively through the case use case.
type Case struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Status      types.CaseStatus   `json:"status"`
	Priority    types.CasePriority `json:"priority"`
	Assignee    *string            `json:"assignee"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	TemplateID  string             `json:"templateId"`
	Facts       []Fact             `json:"facts"`
	StepResults []StepResult       `json:"stepResults"`
}

// StepResultFor returns the result recorded for the given step, or nil.
func (c *Case) StepResultFor(stepID string) *StepResult {
	for i := range c.StepResults {
		if c.StepResults[i].StepID == stepID {
			return &c.StepResults[i]
		}
	}
	return nil
}

// SetStepResult upserts a result keyed by its step ID.
func (c *Case) SetStepResult(result StepResult) {
	for i := range c.StepResults {
		if c.StepResults[i].StepID == result.StepID {
			c.StepResults[i] = result
			return
		}
	}
	c.StepResults = append(c.StepResults, result)
}

// RemoveStepResult deletes the result for the given step if present.
// Removing an absent result is not an error.
func (c *Case) RemoveStepResult(stepID string) {
	results := c.StepResults[:0]
	for _, r := range c.StepResults {
		if r.StepID != stepID {
			results = append(results, r)
		}
	}
	c.StepResults = results
}
