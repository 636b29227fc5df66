package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// AuditLog is an immutable record of one action taken against a case or the
// system. Entries are append-only; they are never updated or deleted.
type AuditLog struct {
	ID        string            `json:"id"`
	CaseID    string            `json:"caseId"`
	Actor     string            `json:"actor"`
	Action    types.AuditAction `json:"action"`
	Payload   any               `json:"payload"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Validate checks the constraints for a caller-supplied entry.
// ID and CreatedAt are assigned by the store when absent.
func (l *AuditLog) Validate() error {
	if l.CaseID == "" {
		return goerr.Wrap(ErrInvalidLogEntry, "caseId is required", goerr.V(FieldKey, "caseId"))
	}
	if l.Actor == "" {
		return goerr.Wrap(ErrInvalidLogEntry, "actor is required", goerr.V(FieldKey, "actor"))
	}
	if !l.Action.IsValid() {
		return goerr.Wrap(ErrInvalidLogEntry, "invalid action",
			goerr.V(FieldKey, "action"), goerr.V(ValueKey, l.Action))
	}
	return nil
}
