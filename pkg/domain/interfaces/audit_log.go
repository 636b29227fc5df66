package interfaces

import (
	"context"

	"github.com/secmon-lab/themis/pkg/domain/model"
)

// AuditLogRepository defines the interface for the append-only audit trail.
// Entries are never updated or deleted.
type AuditLogRepository interface {
	// Append stores an entry, assigning ID and CreatedAt when absent.
	// Assignment is atomic: no two concurrent appends receive the same ID.
	Append(ctx context.Context, entry *model.AuditLog) (*model.AuditLog, error)

	// List retrieves entries matching the filters, ordered by CreatedAt
	// descending; entries with identical timestamps sort newest-insert first.
	List(ctx context.Context, opts ...ListLogOption) ([]*model.AuditLog, error)
}
