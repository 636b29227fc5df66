package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

// CaseUseCase owns all writes to cases. Patches to the same case are
// serialized through a per-case mutex so a reader never observes a case with
// an updated step result but a stale status.
type CaseUseCase struct {
	repo  interfaces.Repository
	now   func() time.Time
	locks caseLocker
}

func NewCaseUseCase(repo interfaces.Repository, opts ...Option) *CaseUseCase {
	o := buildOptions(opts...)
	return &CaseUseCase{
		repo: repo,
		now:  o.now,
	}
}

type caseLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// acquire locks the mutex for the given case ID and returns its unlock func
func (l *caseLocker) acquire(id string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	lock, exists := l.locks[id]
	if !exists {
		lock = &sync.Mutex{}
		l.locks[id] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (uc *CaseUseCase) GetCase(ctx context.Context, id string) (*model.Case, error) {
	c, err := uc.repo.Case().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrCaseNotFound, "case not found", goerr.V(CaseIDKey, id))
	}
	return c, nil
}

// ListCaseFilter carries the optional filters of ListCases. Unknown enum
// values are passed through and simply match nothing.
type ListCaseFilter struct {
	Query    string
	Status   string
	Assignee string
	Priority string
}

// UnassignedFilter is the assignee filter sentinel selecting cases without an
// assignee.
const UnassignedFilter = "UNASSIGNED"

func (uc *CaseUseCase) ListCases(ctx context.Context, filter ListCaseFilter) ([]*model.Case, error) {
	var opts []interfaces.ListCaseOption
	if filter.Query != "" {
		opts = append(opts, interfaces.WithQuery(filter.Query))
	}
	if filter.Status != "" {
		opts = append(opts, interfaces.WithStatus(filter.Status))
	}
	if filter.Priority != "" {
		opts = append(opts, interfaces.WithPriority(filter.Priority))
	}
	switch filter.Assignee {
	case "":
	case UnassignedFilter:
		opts = append(opts, interfaces.WithUnassigned())
	default:
		opts = append(opts, interfaces.WithAssignee(filter.Assignee))
	}

	cases, err := uc.repo.Case().List(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list cases")
	}
	return cases, nil
}

// PatchCase applies a partial update to a case as one atomic operation.
// Facets are applied in a fixed order — assign, facts replace, rollback,
// step-result upsert, explicit status change — followed by automatic rule
// evaluation and an unconditional UpdatedAt refresh. Each applied facet
// appends its own audit entry. An invalid patch is rejected before any facet
// runs; a missing case leaves no mutation and no log.
func (uc *CaseUseCase) PatchCase(ctx context.Context, id string, patch *model.CasePatch, actor string) (*model.Case, error) {
	if actor == "" {
		return nil, goerr.Wrap(model.ErrInvalidPatch, "actor is required", goerr.V(model.FieldKey, "actor"))
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	unlock := uc.locks.acquire(id)
	defer unlock()

	c, err := uc.repo.Case().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrCaseNotFound, "case not found", goerr.V(CaseIDKey, id))
	}

	// The status before any facet runs; the explicit status facet reports
	// this value as "from" even when earlier facets ran.
	statusBefore := c.Status

	if patch.AssigneeSet {
		c.Assignee = patch.Assignee
		if err := uc.appendLog(ctx, c.ID, actor, types.AuditActionAssign, map[string]any{
			"assignee": c.Assignee,
		}); err != nil {
			return nil, err
		}
	}

	// Facts are replaced wholesale; the change surfaces through rule
	// evaluation below, not through its own log entry.
	if patch.FactsSet {
		c.Facts = patch.Facts
	}

	if patch.RollbackStepID != "" {
		c.RemoveStepResult(patch.RollbackStepID)
		if err := uc.appendLog(ctx, c.ID, actor, types.AuditActionRollback, map[string]any{
			"stepId": patch.RollbackStepID,
		}); err != nil {
			return nil, err
		}
	}

	if patch.StepResult != nil {
		applyStepResultPatch(c, patch.StepResult, uc.now())

		// First recorded step activity always leaves NEW
		if c.Status == types.CaseStatusNew {
			c.Status = types.CaseStatusInProgress
		}

		if err := uc.appendLog(ctx, c.ID, actor, types.AuditActionUpdateStep, map[string]any{
			"stepId": patch.StepResult.StepID,
			"patch":  patch.StepResult,
		}); err != nil {
			return nil, err
		}
	}

	if patch.Status != "" {
		c.Status = patch.Status

		action := types.AuditActionChangeStatus
		switch patch.Status {
		case types.CaseStatusApproved:
			action = types.AuditActionApprove
		case types.CaseStatusRejected:
			action = types.AuditActionReject
		}

		if err := uc.appendLog(ctx, c.ID, actor, action, map[string]any{
			"from": statusBefore,
			"to":   c.Status,
		}); err != nil {
			return nil, err
		}
	}

	if err := uc.evaluateRules(ctx, c); err != nil {
		return nil, err
	}

	// Update stamps UpdatedAt unconditionally, even when only a
	// rule-triggered side effect changed state.
	updated, err := uc.repo.Case().Update(ctx, c)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update case", goerr.V(CaseIDKey, id))
	}

	return updated, nil
}

// applyStepResultPatch merges the patch fragment into the stored result for
// its step, inserting one if absent. Fields absent from the fragment keep
// their stored values; UpdatedAt is always refreshed.
func applyStepResultPatch(c *model.Case, patch *model.StepResultPatch, now time.Time) {
	result := model.StepResult{StepID: patch.StepID}
	if existing := c.StepResultFor(patch.StepID); existing != nil {
		result = *existing
	}

	if patch.Decision != nil {
		result.Decision = *patch.Decision
	}
	if patch.Inputs != nil {
		result.Inputs = patch.Inputs
	}
	if patch.Checklist != nil {
		result.Checklist = patch.Checklist
	}
	if patch.Comment != nil {
		result.Comment = *patch.Comment
	}
	result.UpdatedAt = now

	c.SetStepResult(result)
}

// evaluateRules runs automatic rule evaluation against the case's current
// facts. A matching rule never overwrites a terminal status, and a target
// equal to the current status is a no-op with no log entry.
func (uc *CaseUseCase) evaluateRules(ctx context.Context, c *model.Case) error {
	rules, err := uc.repo.Rule().List(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list rules")
	}

	target, matched := model.EvaluateRules(rules, c.Facts)
	if !matched || c.Status.IsTerminal() || target == c.Status {
		return nil
	}

	from := c.Status
	c.Status = target

	return uc.appendLog(ctx, c.ID, types.SystemActor, types.AuditActionChangeStatus, map[string]any{
		"from": from,
		"to":   target,
		"via":  "rule",
	})
}

func (uc *CaseUseCase) appendLog(ctx context.Context, caseID, actor string, action types.AuditAction, payload any) error {
	entry := &model.AuditLog{
		CaseID:  caseID,
		Actor:   actor,
		Action:  action,
		Payload: payload,
	}
	if _, err := uc.repo.AuditLog().Append(ctx, entry); err != nil {
		return goerr.Wrap(err, "failed to append audit log",
			goerr.V(CaseIDKey, caseID), goerr.V("action", action))
	}
	return nil
}
