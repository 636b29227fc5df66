package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

func TestStep_IsComplete_Decision(t *testing.T) {
	step := model.Step{
		ID:       "s1",
		Title:    "Initial decision",
		Type:     types.StepTypeDecision,
		Required: true,
	}

	t.Run("no result is incomplete", func(t *testing.T) {
		gt.Bool(t, step.IsComplete(nil)).False()
	})

	t.Run("empty decision is incomplete", func(t *testing.T) {
		gt.Bool(t, step.IsComplete(&model.StepResult{StepID: "s1"})).False()
	})

	t.Run("default options accept YES", func(t *testing.T) {
		gt.Bool(t, step.IsComplete(&model.StepResult{StepID: "s1", Decision: types.DecisionYes})).True()
	})

	t.Run("declared options restrict the decision", func(t *testing.T) {
		restricted := step
		restricted.DecisionOptions = []types.DecisionOption{types.DecisionYes, types.DecisionNo}

		gt.Bool(t, restricted.IsComplete(&model.StepResult{StepID: "s1", Decision: types.DecisionNo})).True()
		gt.Bool(t, restricted.IsComplete(&model.StepResult{StepID: "s1", Decision: types.DecisionHold})).False()
	})

	t.Run("optional step is always complete", func(t *testing.T) {
		optional := step
		optional.Required = false
		gt.Bool(t, optional.IsComplete(nil)).True()
	})
}

func TestStep_IsComplete_Input(t *testing.T) {
	step := model.Step{
		ID:       "s2",
		Title:    "Amount",
		Type:     types.StepTypeInput,
		Required: true,
		InputFields: []model.InputField{
			{Name: "amount", Label: "Amount", Type: types.InputFieldNumber, Required: true},
			{Name: "currency", Label: "Currency", Type: types.InputFieldSelect, Options: []string{"JPY", "USD"}, Required: true},
			{Name: "note", Label: "Note", Type: types.InputFieldText},
		},
	}

	t.Run("all required fields present", func(t *testing.T) {
		result := &model.StepResult{
			StepID: "s2",
			Inputs: map[string]any{"amount": 120000.0, "currency": "JPY"},
		}
		gt.Bool(t, step.IsComplete(result)).True()
	})

	t.Run("missing required field", func(t *testing.T) {
		result := &model.StepResult{
			StepID: "s2",
			Inputs: map[string]any{"amount": 120000.0},
		}
		gt.Bool(t, step.IsComplete(result)).False()
	})

	t.Run("blank string does not satisfy", func(t *testing.T) {
		result := &model.StepResult{
			StepID: "s2",
			Inputs: map[string]any{"amount": 120000.0, "currency": "   "},
		}
		gt.Bool(t, step.IsComplete(result)).False()
	})

	t.Run("string is not a number", func(t *testing.T) {
		result := &model.StepResult{
			StepID: "s2",
			Inputs: map[string]any{"amount": "120000", "currency": "JPY"},
		}
		gt.Bool(t, step.IsComplete(result)).False()
	})

	t.Run("optional field may be absent", func(t *testing.T) {
		result := &model.StepResult{
			StepID: "s2",
			Inputs: map[string]any{"amount": 1.0, "currency": "USD"},
		}
		gt.Bool(t, step.IsComplete(result)).True()
	})

	t.Run("no required fields means complete without result", func(t *testing.T) {
		loose := model.Step{
			ID:       "s2",
			Title:    "Optional inputs",
			Type:     types.StepTypeInput,
			Required: true,
			InputFields: []model.InputField{
				{Name: "note", Label: "Note", Type: types.InputFieldText},
			},
		}
		gt.Bool(t, loose.IsComplete(nil)).True()
	})
}

func TestStep_IsComplete_Checklist(t *testing.T) {
	step := model.Step{
		ID:       "s4",
		Title:    "Documents",
		Type:     types.StepTypeChecklist,
		Required: true,
		ChecklistItems: []model.ChecklistItem{
			{ID: "i1", Label: "Purchase order", Required: true},
			{ID: "i2", Label: "Acceptance", Required: true},
			{ID: "i3", Label: "Extra", Required: false},
		},
	}

	t.Run("all required items checked", func(t *testing.T) {
		result := &model.StepResult{
			StepID:    "s4",
			Checklist: map[string]bool{"i1": true, "i2": true},
		}
		gt.Bool(t, step.IsComplete(result)).True()
	})

	t.Run("unchecked required item", func(t *testing.T) {
		result := &model.StepResult{
			StepID:    "s4",
			Checklist: map[string]bool{"i1": true, "i2": false},
		}
		gt.Bool(t, step.IsComplete(result)).False()
	})

	t.Run("absent required item", func(t *testing.T) {
		result := &model.StepResult{
			StepID:    "s4",
			Checklist: map[string]bool{"i1": true},
		}
		gt.Bool(t, step.IsComplete(result)).False()
	})

	t.Run("nil result fails when required items exist", func(t *testing.T) {
		gt.Bool(t, step.IsComplete(nil)).False()
	})

	t.Run("nil result passes without required items", func(t *testing.T) {
		loose := model.Step{
			ID:       "s4",
			Title:    "Optional checks",
			Type:     types.StepTypeChecklist,
			Required: true,
			ChecklistItems: []model.ChecklistItem{
				{ID: "i1", Label: "Extra"},
			},
		}
		gt.Bool(t, loose.IsComplete(nil)).True()
	})
}

func TestStep_IsComplete_UnknownType(t *testing.T) {
	step := model.Step{
		ID:       "s9",
		Title:    "Mystery",
		Type:     types.StepType("SIGNATURE"),
		Required: true,
	}
	gt.Bool(t, step.IsComplete(&model.StepResult{StepID: "s9"})).False()
}

func TestTemplate_AllRequiredComplete(t *testing.T) {
	tpl := &model.Template{
		ID:   "tpl_review",
		Name: "Review",
		Steps: []model.Step{
			{ID: "s1", Title: "Decision", Type: types.StepTypeDecision, Required: true},
			{ID: "s2", Title: "Note", Type: types.StepTypeInput, Required: false},
		},
	}

	c := &model.Case{ID: "case_001", TemplateID: "tpl_review"}
	gt.Bool(t, tpl.AllRequiredComplete(c)).False()

	c.SetStepResult(model.StepResult{StepID: "s1", Decision: types.DecisionYes})
	gt.Bool(t, tpl.AllRequiredComplete(c)).True()
}

func TestTemplate_Validate(t *testing.T) {
	valid := func() *model.Template {
		return &model.Template{
			ID:   "tpl_review",
			Name: "Review",
			Steps: []model.Step{
				{ID: "s1", Title: "Decision", Type: types.StepTypeDecision, Required: true},
			},
		}
	}

	t.Run("valid template passes", func(t *testing.T) {
		gt.NoError(t, valid().Validate())
	})

	t.Run("missing ID", func(t *testing.T) {
		tpl := valid()
		tpl.ID = ""
		gt.Error(t, tpl.Validate())
	})

	t.Run("no steps", func(t *testing.T) {
		tpl := valid()
		tpl.Steps = nil
		gt.Error(t, tpl.Validate())
	})

	t.Run("duplicate step IDs", func(t *testing.T) {
		tpl := valid()
		tpl.Steps = append(tpl.Steps, tpl.Steps[0])
		gt.Error(t, tpl.Validate())
	})

	t.Run("invalid step type", func(t *testing.T) {
		tpl := valid()
		tpl.Steps[0].Type = "SIGNATURE"
		gt.Error(t, tpl.Validate())
	})

	t.Run("invalid decision option", func(t *testing.T) {
		tpl := valid()
		tpl.Steps[0].DecisionOptions = []types.DecisionOption{"MAYBE"}
		gt.Error(t, tpl.Validate())
	})
}
