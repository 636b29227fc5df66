package types

import "fmt"

// CasePriority represents the priority of a case
type CasePriority string

const (
	CasePriorityLow    CasePriority = "LOW"
	CasePriorityMedium CasePriority = "MEDIUM"
	CasePriorityHigh   CasePriority = "HIGH"
)

// AllCasePriorities returns all valid case priorities
func AllCasePriorities() []CasePriority {
	return []CasePriority{
		CasePriorityLow,
		CasePriorityMedium,
		CasePriorityHigh,
	}
}

// IsValid checks if the case priority is valid
func (p CasePriority) IsValid() bool {
	switch p {
	case CasePriorityLow, CasePriorityMedium, CasePriorityHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the case priority
func (p CasePriority) String() string {
	return string(p)
}

// ParseCasePriority parses a string into a CasePriority
func ParseCasePriority(s string) (CasePriority, error) {
	priority := CasePriority(s)
	if !priority.IsValid() {
		return "", fmt.Errorf("invalid case priority: %s", s)
	}
	return priority, nil
}
