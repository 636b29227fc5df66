package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrCaseNotFound     = errors.New("case not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrRuleNotFound     = errors.New("rule not found")

	// Template replacement errors
	ErrTemplateIDMismatch = errors.New("template ID mismatch")
)

// Context keys for error values
const (
	CaseIDKey     = "case_id"
	TemplateIDKey = "template_id"
	RuleIDKey     = "rule_id"
)
