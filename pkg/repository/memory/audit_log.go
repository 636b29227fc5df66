package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
)

type auditLogRepository struct {
	mu sync.RWMutex
	// entries holds the newest insert first, so a stable sort on CreatedAt
	// keeps entries with identical timestamps in reverse insertion order.
	entries []*model.AuditLog
	idGen   interfaces.IDGenerator
	now     func() time.Time
}

func newAuditLogRepository(idGen interfaces.IDGenerator, now func() time.Time) *auditLogRepository {
	return &auditLogRepository{
		idGen: idGen,
		now:   now,
	}
}

// copyLog creates a copy of an audit log entry. Payloads are treated as
// immutable once appended.
func copyLog(l *model.AuditLog) *model.AuditLog {
	copied := *l
	return &copied
}

func (r *auditLogRepository) Append(ctx context.Context, entry *model.AuditLog) (*model.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyLog(entry)
	if stored.ID == "" {
		stored.ID = r.idGen.NewID("log")
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now()
	}

	r.entries = append([]*model.AuditLog{stored}, r.entries...)
	return copyLog(stored), nil
}

func (r *auditLogRepository) List(ctx context.Context, opts ...interfaces.ListLogOption) ([]*model.AuditLog, error) {
	cfg := interfaces.BuildListLogConfig(opts...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*model.AuditLog, 0, len(r.entries))
	for _, l := range r.entries {
		if a := cfg.Actor(); a != "" && l.Actor != a {
			continue
		}
		if a := cfg.Action(); a != "" && string(l.Action) != a {
			continue
		}
		if id := cfg.CaseID(); id != "" && l.CaseID != id {
			continue
		}
		if since := cfg.Since(); since != nil && l.CreatedAt.Before(*since) {
			continue
		}
		if until := cfg.Until(); until != nil && l.CreatedAt.After(*until) {
			continue
		}
		entries = append(entries, copyLog(l))
	}

	// CreatedAt descending; ties keep the slice order, which is newest
	// insert first. This tie-break is user-observable in the log view.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}
