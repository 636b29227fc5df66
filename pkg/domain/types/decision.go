package types

// DecisionOption represents the recorded outcome of a DECISION step
type DecisionOption string

const (
	DecisionYes  DecisionOption = "YES"
	DecisionNo   DecisionOption = "NO"
	DecisionHold DecisionOption = "HOLD"
)

// DefaultDecisionOptions returns the option set used when a step declares none
func DefaultDecisionOptions() []DecisionOption {
	return []DecisionOption{
		DecisionYes,
		DecisionNo,
		DecisionHold,
	}
}

// IsValid checks if the decision option is valid
func (d DecisionOption) IsValid() bool {
	switch d {
	case DecisionYes, DecisionNo, DecisionHold:
		return true
	default:
		return false
	}
}

// String returns the string representation of the decision option
func (d DecisionOption) String() string {
	return string(d)
}
