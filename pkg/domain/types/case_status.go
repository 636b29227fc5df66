package types

import "fmt"

// CaseStatus represents the status of a case
type CaseStatus string

const (
	CaseStatusNew         CaseStatus = "NEW"
	CaseStatusInProgress  CaseStatus = "IN_PROGRESS"
	CaseStatusNeedsReview CaseStatus = "NEEDS_REVIEW"
	CaseStatusApproved    CaseStatus = "APPROVED"
	CaseStatusRejected    CaseStatus = "REJECTED"
	CaseStatusDone        CaseStatus = "DONE"
	CaseStatusFailed      CaseStatus = "FAILED"
)

// AllCaseStatuses returns all valid case statuses
func AllCaseStatuses() []CaseStatus {
	return []CaseStatus{
		CaseStatusNew,
		CaseStatusInProgress,
		CaseStatusNeedsReview,
		CaseStatusApproved,
		CaseStatusRejected,
		CaseStatusDone,
		CaseStatusFailed,
	}
}

// IsValid checks if the case status is valid
func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusNew,
		CaseStatusInProgress,
		CaseStatusNeedsReview,
		CaseStatusApproved,
		CaseStatusRejected,
		CaseStatusDone,
		CaseStatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status is final. Automatic rule evaluation
// must never overwrite a terminal status.
func (s CaseStatus) IsTerminal() bool {
	switch s {
	case CaseStatusApproved,
		CaseStatusRejected,
		CaseStatusDone,
		CaseStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the case status
func (s CaseStatus) String() string {
	return string(s)
}

// ParseCaseStatus parses a string into a CaseStatus
func ParseCaseStatus(s string) (CaseStatus, error) {
	status := CaseStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid case status: %s", s)
	}
	return status, nil
}
