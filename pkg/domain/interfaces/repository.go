package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Case() CaseRepository
	Template() TemplateRepository
	Rule() RuleRepository
	AuditLog() AuditLogRepository
}

// IDGenerator assigns identifiers for server-created records. Injecting it
// keeps the engine deterministic under test.
type IDGenerator interface {
	NewID(prefix string) string
}
