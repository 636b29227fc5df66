package memory

import (
	"time"

	"github.com/secmon-lab/themis/pkg/domain/interfaces"
	"github.com/secmon-lab/themis/pkg/service/idgen"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is the in-memory repository. Every accessor returns deep copies so
// that callers never share mutable state with the store.
type Memory struct {
	cases     *caseRepository
	templates *templateRepository
	rules     *ruleRepository
	auditLogs *auditLogRepository
}

var _ interfaces.Repository = &Memory{}

// Option configures the memory repository
type Option func(*options)

type options struct {
	idGen interfaces.IDGenerator
	now   func() time.Time
}

// WithIDGenerator overrides the generator used for server-assigned IDs
func WithIDGenerator(g interfaces.IDGenerator) Option {
	return func(o *options) {
		o.idGen = g
	}
}

// WithNowFunc overrides the clock used for assigned timestamps
func WithNowFunc(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New creates an empty in-memory repository
func New(opts ...Option) *Memory {
	o := &options{
		idGen: idgen.New(),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Memory{
		cases:     newCaseRepository(o.now),
		templates: newTemplateRepository(),
		rules:     newRuleRepository(o.idGen, o.now),
		auditLogs: newAuditLogRepository(o.idGen, o.now),
	}
}

func (m *Memory) Case() interfaces.CaseRepository {
	return m.cases
}

func (m *Memory) Template() interfaces.TemplateRepository {
	return m.templates
}

func (m *Memory) Rule() interfaces.RuleRepository {
	return m.rules
}

func (m *Memory) AuditLog() interfaces.AuditLogRepository {
	return m.auditLogs
}
