package usecase

import (
	"time"

	"github.com/secmon-lab/themis/pkg/domain/interfaces"
)

type UseCases struct {
	Case     *CaseUseCase
	Rule     *RuleUseCase
	Template *TemplateUseCase
	AuditLog *AuditLogUseCase
}

// Option configures the use case layer
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithNowFunc overrides the clock used for mutation timestamps
func WithNowFunc(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts ...Option) *options {
	o := &options{
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	return &UseCases{
		Case:     NewCaseUseCase(repo, opts...),
		Rule:     NewRuleUseCase(repo),
		Template: NewTemplateUseCase(repo),
		AuditLog: NewAuditLogUseCase(repo),
	}
}
