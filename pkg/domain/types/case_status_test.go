package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

func TestCaseStatus_IsTerminal(t *testing.T) {
	terminal := map[types.CaseStatus]bool{
		types.CaseStatusNew:         false,
		types.CaseStatusInProgress:  false,
		types.CaseStatusNeedsReview: false,
		types.CaseStatusApproved:    true,
		types.CaseStatusRejected:    true,
		types.CaseStatusDone:        true,
		types.CaseStatusFailed:      true,
	}

	for _, status := range types.AllCaseStatuses() {
		gt.Value(t, status.IsTerminal()).Equal(terminal[status])
	}
}

func TestParseCaseStatus(t *testing.T) {
	t.Run("valid statuses parse", func(t *testing.T) {
		for _, status := range types.AllCaseStatuses() {
			parsed, err := types.ParseCaseStatus(status.String())
			gt.NoError(t, err)
			gt.Value(t, parsed).Equal(status)
		}
	})

	t.Run("unknown status fails", func(t *testing.T) {
		_, err := types.ParseCaseStatus("OPEN")
		gt.Error(t, err)
	})

	t.Run("lowercase is rejected", func(t *testing.T) {
		_, err := types.ParseCaseStatus("new")
		gt.Error(t, err)
	})
}
