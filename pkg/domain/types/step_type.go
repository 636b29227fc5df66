package types

import "fmt"

// StepType represents the kind of a template step
type StepType string

const (
	StepTypeDecision  StepType = "DECISION"
	StepTypeInput     StepType = "INPUT"
	StepTypeChecklist StepType = "CHECKLIST"
)

// AllStepTypes returns all valid step types
func AllStepTypes() []StepType {
	return []StepType{
		StepTypeDecision,
		StepTypeInput,
		StepTypeChecklist,
	}
}

// IsValid checks if the step type is valid
func (t StepType) IsValid() bool {
	switch t {
	case StepTypeDecision, StepTypeInput, StepTypeChecklist:
		return true
	default:
		return false
	}
}

// String returns the string representation of the step type
func (t StepType) String() string {
	return string(t)
}

// ParseStepType parses a string into a StepType
func ParseStepType(s string) (StepType, error) {
	stepType := StepType(s)
	if !stepType.IsValid() {
		return "", fmt.Errorf("invalid step type: %s", s)
	}
	return stepType, nil
}
