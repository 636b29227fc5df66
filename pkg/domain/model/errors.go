package model

import "github.com/m-mizutani/goerr/v2"

// Validation errors
var (
	ErrInvalidPatch    = goerr.New("invalid case patch")
	ErrInvalidTemplate = goerr.New("invalid template")
	ErrInvalidRule     = goerr.New("invalid rule")
	ErrInvalidLogEntry = goerr.New("invalid log entry")
)

// Context keys for error values
const (
	FieldKey  = "field"
	ValueKey  = "value"
	StepIDKey = "step_id"
)
