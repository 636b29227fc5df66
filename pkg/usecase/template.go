package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/secmon-lab/themis/pkg/domain/types"
)

type TemplateUseCase struct {
	repo interfaces.Repository
}

func NewTemplateUseCase(repo interfaces.Repository) *TemplateUseCase {
	return &TemplateUseCase{
		repo: repo,
	}
}

func (uc *TemplateUseCase) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	tpl, err := uc.repo.Template().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrTemplateNotFound, "template not found", goerr.V(TemplateIDKey, id))
	}
	return tpl, nil
}

func (uc *TemplateUseCase) ListTemplates(ctx context.Context) ([]*model.Template, error) {
	templates, err := uc.repo.Template().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list templates")
	}
	return templates, nil
}

// PutTemplate replaces the template addressed by id. The replacement body
// must carry the same id. Existing cases' step results are not revalidated
// against the new shape.
func (uc *TemplateUseCase) PutTemplate(ctx context.Context, id string, tpl *model.Template) (*model.Template, error) {
	if err := tpl.Validate(); err != nil {
		return nil, err
	}
	if tpl.ID != id {
		return nil, goerr.Wrap(ErrTemplateIDMismatch, "template body ID does not match target",
			goerr.V(TemplateIDKey, id), goerr.V("body_id", tpl.ID))
	}

	if _, err := uc.repo.Template().Get(ctx, id); err != nil {
		return nil, goerr.Wrap(ErrTemplateNotFound, "template not found", goerr.V(TemplateIDKey, id))
	}

	updated, err := uc.repo.Template().Put(ctx, tpl)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to replace template", goerr.V(TemplateIDKey, id))
	}

	entry := &model.AuditLog{
		CaseID: types.SystemCaseID,
		Actor:  types.SystemActor,
		Action: types.AuditActionAddComment,
		Payload: map[string]any{
			"type":       "TEMPLATE_UPDATED",
			"templateId": id,
		},
	}
	if _, err := uc.repo.AuditLog().Append(ctx, entry); err != nil {
		return nil, goerr.Wrap(err, "failed to log template replacement", goerr.V(TemplateIDKey, id))
	}

	return updated, nil
}
