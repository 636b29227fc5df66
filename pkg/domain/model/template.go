package model

import (
	"math"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// InputField is one field of an INPUT step
type InputField struct {
	Name     string               `json:"name"`
	Label    string               `json:"label"`
	Type     types.InputFieldType `json:"type"`
	Options  []string             `json:"options,omitempty"`
	Required bool                 `json:"required,omitempty"`
}

// ChecklistItem is one item of a CHECKLIST step
type ChecklistItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Required bool   `json:"required,omitempty"`
}

// Step is one entry of a template's ordered step list. Type decides which of
// the type-specific field sets is meaningful.
type Step struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description,omitempty"`
	Type            types.StepType         `json:"type"`
	Required        bool                   `json:"required"`
	DecisionOptions []types.DecisionOption `json:"decisionOptions,omitempty"`
	InputFields     []InputField           `json:"inputFields,omitempty"`
	ChecklistItems  []ChecklistItem        `json:"checklistItems,omitempty"`
}

// Template is the reusable, ordered definition of what must be recorded to
// complete a case.
type Template struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

// allowedDecisions returns the step's declared options, falling back to the
// default YES/NO/HOLD set.
func (s *Step) allowedDecisions() []types.DecisionOption {
	if len(s.DecisionOptions) > 0 {
		return s.DecisionOptions
	}
	return types.DefaultDecisionOptions()
}

// IsComplete reports whether the recorded result satisfies the step.
// An optional step is trivially complete. An unknown step type never is.
func (s *Step) IsComplete(result *StepResult) bool {
	if !s.Required {
		return true
	}

	switch s.Type {
	case types.StepTypeDecision:
		if result == nil || result.Decision == "" {
			return false
		}
		for _, opt := range s.allowedDecisions() {
			if result.Decision == opt {
				return true
			}
		}
		return false

	case types.StepTypeInput:
		if !hasRequiredInputField(s.InputFields) {
			return true
		}
		if result == nil {
			return false
		}
		for _, f := range s.InputFields {
			if !f.Required {
				continue
			}
			if !inputValueSatisfies(f, result.Inputs[f.Name]) {
				return false
			}
		}
		return true

	case types.StepTypeChecklist:
		for _, item := range s.ChecklistItems {
			if !item.Required {
				continue
			}
			if result == nil || !result.Checklist[item.ID] {
				return false
			}
		}
		return true

	default:
		return false
	}
}

func hasRequiredInputField(fields []InputField) bool {
	for _, f := range fields {
		if f.Required {
			return true
		}
	}
	return false
}

// inputValueSatisfies checks one required input field value: a finite number
// for number fields, a non-blank string otherwise.
func inputValueSatisfies(field InputField, value any) bool {
	if field.Type == types.InputFieldNumber {
		switch v := value.(type) {
		case float64:
			return !math.IsNaN(v) && !math.IsInf(v, 0)
		case int:
			return true
		case int64:
			return true
		default:
			return false
		}
	}

	s, ok := value.(string)
	return ok && strings.TrimSpace(s) != ""
}

// AllRequiredComplete reports whether every step of the template is complete
// for the given case. It gates the approve/reject action at the caller.
func (t *Template) AllRequiredComplete(c *Case) bool {
	for i := range t.Steps {
		if !t.Steps[i].IsComplete(c.StepResultFor(t.Steps[i].ID)) {
			return false
		}
	}
	return true
}

// Validate checks the structural constraints of a step
func (s *Step) Validate() error {
	if s.ID == "" {
		return goerr.Wrap(ErrInvalidTemplate, "step ID is required")
	}
	if s.Title == "" {
		return goerr.Wrap(ErrInvalidTemplate, "step title is required", goerr.V(StepIDKey, s.ID))
	}
	if !s.Type.IsValid() {
		return goerr.Wrap(ErrInvalidTemplate, "invalid step type",
			goerr.V(StepIDKey, s.ID), goerr.V(ValueKey, s.Type))
	}
	for _, opt := range s.DecisionOptions {
		if !opt.IsValid() {
			return goerr.Wrap(ErrInvalidTemplate, "invalid decision option",
				goerr.V(StepIDKey, s.ID), goerr.V(ValueKey, opt))
		}
	}
	for _, f := range s.InputFields {
		if f.Name == "" {
			return goerr.Wrap(ErrInvalidTemplate, "input field name is required", goerr.V(StepIDKey, s.ID))
		}
		if !f.Type.IsValid() {
			return goerr.Wrap(ErrInvalidTemplate, "invalid input field type",
				goerr.V(StepIDKey, s.ID), goerr.V(FieldKey, f.Name), goerr.V(ValueKey, f.Type))
		}
	}
	for _, item := range s.ChecklistItems {
		if item.ID == "" {
			return goerr.Wrap(ErrInvalidTemplate, "checklist item ID is required", goerr.V(StepIDKey, s.ID))
		}
	}
	return nil
}

// Validate checks the structural constraints of a template
func (t *Template) Validate() error {
	if t.ID == "" {
		return goerr.Wrap(ErrInvalidTemplate, "template ID is required")
	}
	if t.Name == "" {
		return goerr.Wrap(ErrInvalidTemplate, "template name is required", goerr.V(ValueKey, t.ID))
	}
	if len(t.Steps) == 0 {
		return goerr.Wrap(ErrInvalidTemplate, "template requires at least one step", goerr.V(ValueKey, t.ID))
	}

	stepIDs := make(map[string]bool, len(t.Steps))
	for i := range t.Steps {
		if err := t.Steps[i].Validate(); err != nil {
			return err
		}
		if stepIDs[t.Steps[i].ID] {
			return goerr.Wrap(ErrInvalidTemplate, "duplicate step ID",
				goerr.V(StepIDKey, t.Steps[i].ID), goerr.V(ValueKey, t.ID))
		}
		stepIDs[t.Steps[i].ID] = true
	}
	return nil
}
