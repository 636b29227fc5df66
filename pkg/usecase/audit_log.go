package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
)

type AuditLogUseCase struct {
	repo interfaces.Repository
}

func NewAuditLogUseCase(repo interfaces.Repository) *AuditLogUseCase {
	return &AuditLogUseCase{
		repo: repo,
	}
}

// ListLogFilter carries the optional audit log filters. From/To are
// inclusive bounds.
type ListLogFilter struct {
	Actor  string
	Action string
	CaseID string
	From   *time.Time
	To     *time.Time
}

func (uc *AuditLogUseCase) ListLogs(ctx context.Context, filter ListLogFilter) ([]*model.AuditLog, error) {
	var opts []interfaces.ListLogOption
	if filter.Actor != "" {
		opts = append(opts, interfaces.WithActor(filter.Actor))
	}
	if filter.Action != "" {
		opts = append(opts, interfaces.WithAction(filter.Action))
	}
	if filter.CaseID != "" {
		opts = append(opts, interfaces.WithCaseID(filter.CaseID))
	}
	if filter.From != nil {
		opts = append(opts, interfaces.WithSince(*filter.From))
	}
	if filter.To != nil {
		opts = append(opts, interfaces.WithUntil(*filter.To))
	}

	logs, err := uc.repo.AuditLog().List(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list audit logs")
	}
	return logs, nil
}

// CreateLog appends a caller-supplied entry not tied to a patch, such as
// OPEN_CASE or ADD_COMMENT. ID and CreatedAt are assigned by the store.
func (uc *AuditLogUseCase) CreateLog(ctx context.Context, entry *model.AuditLog) (*model.AuditLog, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.AuditLog().Append(ctx, entry)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to append audit log")
	}
	return created, nil
}
