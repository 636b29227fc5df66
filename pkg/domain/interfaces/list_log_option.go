package interfaces

import "time"

// ListLogOption is a functional option for filtering audit log entries
type ListLogOption func(*listLogConfig)

type listLogConfig struct {
	actor  string
	action string
	caseID string
	since  *time.Time
	until  *time.Time
}

// WithActor filters entries by exact actor
func WithActor(actor string) ListLogOption {
	return func(c *listLogConfig) {
		c.actor = actor
	}
}

// WithAction filters entries by exact action value
func WithAction(action string) ListLogOption {
	return func(c *listLogConfig) {
		c.action = action
	}
}

// WithCaseID filters entries by exact case ID
func WithCaseID(caseID string) ListLogOption {
	return func(c *listLogConfig) {
		c.caseID = caseID
	}
}

// WithSince keeps entries created at or after the given time (inclusive)
func WithSince(t time.Time) ListLogOption {
	return func(c *listLogConfig) {
		c.since = &t
	}
}

// WithUntil keeps entries created at or before the given time (inclusive)
func WithUntil(t time.Time) ListLogOption {
	return func(c *listLogConfig) {
		c.until = &t
	}
}

// BuildListLogConfig builds a listLogConfig from options
func BuildListLogConfig(opts ...ListLogOption) *listLogConfig {
	cfg := &listLogConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Actor returns the actor filter, or empty if not set
func (c *listLogConfig) Actor() string { return c.actor }

// Action returns the action filter, or empty if not set
func (c *listLogConfig) Action() string { return c.action }

// CaseID returns the case ID filter, or empty if not set
func (c *listLogConfig) CaseID() string { return c.caseID }

// Since returns the inclusive lower time bound, or nil if not set
func (c *listLogConfig) Since() *time.Time { return c.since }

// Until returns the inclusive upper time bound, or nil if not set
func (c *listLogConfig) Until() *time.Time { return c.until }
