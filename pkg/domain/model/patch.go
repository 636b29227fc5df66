package model

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// StepResultPatch is the step-result fragment of a case patch. Only fields
// present in the fragment overwrite the stored result; absent fields are
// preserved.
type StepResultPatch struct {
	StepID    string                `json:"stepId"`
	Decision  *types.DecisionOption `json:"decision,omitempty"`
	Inputs    map[string]any        `json:"inputs,omitempty"`
	Checklist map[string]bool       `json:"checklist,omitempty"`
	Comment   *string               `json:"comment,omitempty"`
}

// CasePatch is a partial update to a case. Each facet is independently
// optional. AssigneeSet and FactsSet distinguish an absent facet from an
// explicit null / empty value.
type CasePatch struct {
	Assignee       *string
	AssigneeSet    bool
	Facts          []Fact
	FactsSet       bool
	RollbackStepID string
	StepResult     *StepResultPatch
	Status         types.CaseStatus
}

// IsEmpty reports whether the patch carries no facet at all
func (p *CasePatch) IsEmpty() bool {
	return !p.AssigneeSet && !p.FactsSet && p.RollbackStepID == "" &&
		p.StepResult == nil && p.Status == ""
}

// UnmarshalJSON decodes the wire shape of a patch, keeping track of which
// facets were present so that `"assignee": null` (unassign) can be told apart
// from an omitted assignee.
func (p *CasePatch) UnmarshalJSON(data []byte) error {
	var aux struct {
		Assignee       json.RawMessage  `json:"assignee"`
		Facts          *[]Fact          `json:"facts"`
		RollbackStepID string           `json:"rollbackStepId"`
		StepResult     *StepResultPatch `json:"stepResult"`
		Status         types.CaseStatus `json:"status"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return goerr.Wrap(ErrInvalidPatch, "malformed patch body", goerr.V(ValueKey, err.Error()))
	}

	if len(aux.Assignee) > 0 {
		p.AssigneeSet = true
		if !bytes.Equal(aux.Assignee, []byte("null")) {
			var assignee string
			if err := json.Unmarshal(aux.Assignee, &assignee); err != nil {
				return goerr.Wrap(ErrInvalidPatch, "assignee must be a string or null",
					goerr.V(FieldKey, "assignee"))
			}
			p.Assignee = &assignee
		}
	}
	if aux.Facts != nil {
		p.FactsSet = true
		p.Facts = *aux.Facts
	}
	p.RollbackStepID = aux.RollbackStepID
	p.StepResult = aux.StepResult
	p.Status = aux.Status

	return nil
}

// Validate rejects malformed patches before any facet is applied, so that a
// case is never partially mutated from an invalid patch.
func (p *CasePatch) Validate() error {
	if p.Status != "" && !p.Status.IsValid() {
		return goerr.Wrap(ErrInvalidPatch, "invalid status",
			goerr.V(FieldKey, "status"), goerr.V(ValueKey, p.Status))
	}

	if p.FactsSet {
		for _, f := range p.Facts {
			if f.Key == "" {
				return goerr.Wrap(ErrInvalidPatch, "fact key is required", goerr.V(FieldKey, "facts"))
			}
		}
	}

	if p.StepResult != nil {
		if p.StepResult.StepID == "" {
			return goerr.Wrap(ErrInvalidPatch, "stepResult.stepId is required",
				goerr.V(FieldKey, "stepResult.stepId"))
		}
		if p.StepResult.Decision != nil && !p.StepResult.Decision.IsValid() {
			return goerr.Wrap(ErrInvalidPatch, "invalid decision",
				goerr.V(FieldKey, "stepResult.decision"), goerr.V(ValueKey, *p.StepResult.Decision))
		}
	}

	return nil
}
