package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
	"github.com/secmon-lab/themis/pkg/repository/memory"
)

func newTemplate(id, name string) *model.Template {
	return &model.Template{
		ID:   id,
		Name: name,
		Steps: []model.Step{
			{ID: "s1", Title: "Decision", Type: types.StepTypeDecision, Required: true},
		},
	}
}

func TestTemplateRepository_PutAndGet(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	_, err := repo.Template().Put(ctx, newTemplate("tpl_review", "Review"))
	gt.NoError(t, err).Required()

	tpl, err := repo.Template().Get(ctx, "tpl_review")
	gt.NoError(t, err).Required()
	gt.Value(t, tpl.Name).Equal("Review")
	gt.Array(t, tpl.Steps).Length(1)
}

func TestTemplateRepository_Get_NotFound(t *testing.T) {
	repo := memory.New()

	_, err := repo.Template().Get(context.Background(), "tpl_missing")
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()
}

func TestTemplateRepository_List_InsertionOrder(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	for _, tpl := range []*model.Template{
		newTemplate("tpl_invoice", "Invoice Review"),
		newTemplate("tpl_access", "IT Access Request"),
	} {
		_, err := repo.Template().Put(ctx, tpl)
		gt.NoError(t, err).Required()
	}

	listed, err := repo.Template().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, listed).Length(2)
	gt.Value(t, listed[0].ID).Equal("tpl_invoice")
	gt.Value(t, listed[1].ID).Equal("tpl_access")

	// Replacing an existing template keeps its position
	replacement := newTemplate("tpl_invoice", "Invoice Review v2")
	_, err = repo.Template().Put(ctx, replacement)
	gt.NoError(t, err).Required()

	listed, err = repo.Template().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, listed).Length(2)
	gt.Value(t, listed[0].Name).Equal("Invoice Review v2")
}

func TestTemplateRepository_ReturnsCopies(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	_, err := repo.Template().Put(ctx, newTemplate("tpl_review", "Review"))
	gt.NoError(t, err).Required()

	tpl, err := repo.Template().Get(ctx, "tpl_review")
	gt.NoError(t, err).Required()
	tpl.Steps[0].Title = "tampered"

	again, err := repo.Template().Get(ctx, "tpl_review")
	gt.NoError(t, err).Required()
	gt.Value(t, again.Steps[0].Title).Equal("Decision")
}
