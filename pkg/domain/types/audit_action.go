package types

import "fmt"

// AuditAction represents the kind of an audit log entry
type AuditAction string

const (
	AuditActionOpenCase     AuditAction = "OPEN_CASE"
	AuditActionUpdateStep   AuditAction = "UPDATE_STEP"
	AuditActionAssign       AuditAction = "ASSIGN"
	AuditActionChangeStatus AuditAction = "CHANGE_STATUS"
	AuditActionAddComment   AuditAction = "ADD_COMMENT"
	AuditActionRollback     AuditAction = "ROLLBACK"
	AuditActionApprove      AuditAction = "APPROVE"
	AuditActionReject       AuditAction = "REJECT"
)

// SystemActor is the actor recorded for mutations originated by the engine
// itself rather than a user.
const SystemActor = "system"

// SystemCaseID is the caseId sentinel for audit entries not scoped to a case.
const SystemCaseID = "system"

// AllAuditActions returns all valid audit actions
func AllAuditActions() []AuditAction {
	return []AuditAction{
		AuditActionOpenCase,
		AuditActionUpdateStep,
		AuditActionAssign,
		AuditActionChangeStatus,
		AuditActionAddComment,
		AuditActionRollback,
		AuditActionApprove,
		AuditActionReject,
	}
}

// IsValid checks if the audit action is valid
func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionOpenCase,
		AuditActionUpdateStep,
		AuditActionAssign,
		AuditActionChangeStatus,
		AuditActionAddComment,
		AuditActionRollback,
		AuditActionApprove,
		AuditActionReject:
		return true
	default:
		return false
	}
}

// String returns the string representation of the audit action
func (a AuditAction) String() string {
	return string(a)
}

// ParseAuditAction parses a string into an AuditAction
func ParseAuditAction(s string) (AuditAction, error) {
	action := AuditAction(s)
	if !action.IsValid() {
		return "", fmt.Errorf("invalid audit action: %s", s)
	}
	return action, nil
}
