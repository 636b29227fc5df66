package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/secmon-lab/themis/pkg/repository/memory"
	"github.com/secmon-lab/themis/pkg/usecase"
)

func TestAuditLogUseCase_CreateLog(t *testing.T) {
	t.Run("valid entry is appended", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.NewAuditLogUseCase(repo)
		ctx := context.Background()

		created, err := uc.CreateLog(ctx, &model.AuditLog{
			CaseID:  "case_001",
			Actor:   "demo_user",
			Action:  types.AuditActionOpenCase,
			Payload: map[string]any{"source": "ui"},
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).NotEqual("")
		gt.Bool(t, created.CreatedAt.IsZero()).False()
	})

	t.Run("missing actor is rejected", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.NewAuditLogUseCase(repo)

		_, err := uc.CreateLog(context.Background(), &model.AuditLog{
			CaseID: "case_001",
			Action: types.AuditActionOpenCase,
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, model.ErrInvalidLogEntry)).True()
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.NewAuditLogUseCase(repo)

		_, err := uc.CreateLog(context.Background(), &model.AuditLog{
			CaseID: "case_001",
			Actor:  "demo_user",
			Action: "SHRED_CASE",
		})
		gt.Error(t, err)
	})
}

func TestAuditLogUseCase_ListLogs(t *testing.T) {
	current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := memory.New(memory.WithNowFunc(func() time.Time {
		current = current.Add(time.Hour)
		return current
	}))
	uc := usecase.NewAuditLogUseCase(repo)
	ctx := context.Background()

	entries := []*model.AuditLog{
		{CaseID: "case_001", Actor: "alice", Action: types.AuditActionOpenCase},
		{CaseID: "case_001", Actor: "bob", Action: types.AuditActionUpdateStep},
		{CaseID: "case_002", Actor: "alice", Action: types.AuditActionChangeStatus},
	}
	for _, e := range entries {
		_, err := uc.CreateLog(ctx, e)
		gt.NoError(t, err).Required()
	}

	t.Run("unfiltered, newest first", func(t *testing.T) {
		logs, err := uc.ListLogs(ctx, usecase.ListLogFilter{})
		gt.NoError(t, err).Required()
		gt.Array(t, logs).Length(3)
		gt.Value(t, logs[0].Action).Equal(types.AuditActionChangeStatus)
	})

	t.Run("by actor and case", func(t *testing.T) {
		logs, err := uc.ListLogs(ctx, usecase.ListLogFilter{Actor: "alice", CaseID: "case_001"})
		gt.NoError(t, err).Required()
		gt.Array(t, logs).Length(1)
		gt.Value(t, logs[0].Action).Equal(types.AuditActionOpenCase)
	})

	t.Run("time window is inclusive", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		logs, err := uc.ListLogs(ctx, usecase.ListLogFilter{From: &from, To: &to})
		gt.NoError(t, err).Required()
		gt.Array(t, logs).Length(1)
		gt.Value(t, logs[0].Actor).Equal("bob")
	})
}
