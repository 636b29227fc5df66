package interfaces

// ListCaseOption is a functional option for filtering cases in List
type ListCaseOption func(*listCaseConfig)

type listCaseConfig struct {
	query      string
	status     string
	priority   string
	assignee   string
	unassigned bool
}

// WithQuery filters cases whose ID or title contains the query,
// case-insensitively
func WithQuery(q string) ListCaseOption {
	return func(c *listCaseConfig) {
		c.query = q
	}
}

// WithStatus filters cases by exact status value
func WithStatus(status string) ListCaseOption {
	return func(c *listCaseConfig) {
		c.status = status
	}
}

// WithPriority filters cases by exact priority value
func WithPriority(priority string) ListCaseOption {
	return func(c *listCaseConfig) {
		c.priority = priority
	}
}

// WithAssignee filters cases by exact assignee
func WithAssignee(assignee string) ListCaseOption {
	return func(c *listCaseConfig) {
		c.assignee = assignee
	}
}

// WithUnassigned filters cases that have no assignee
func WithUnassigned() ListCaseOption {
	return func(c *listCaseConfig) {
		c.unassigned = true
	}
}

// BuildListCaseConfig builds a listCaseConfig from options
func BuildListCaseConfig(opts ...ListCaseOption) *listCaseConfig {
	cfg := &listCaseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Query returns the text query filter, or empty if not set
func (c *listCaseConfig) Query() string { return c.query }

// Status returns the status filter, or empty if not set
func (c *listCaseConfig) Status() string { return c.status }

// Priority returns the priority filter, or empty if not set
func (c *listCaseConfig) Priority() string { return c.priority }

// Assignee returns the assignee filter, or empty if not set
func (c *listCaseConfig) Assignee() string { return c.assignee }

// Unassigned reports whether only unassigned cases should match
func (c *listCaseConfig) Unassigned() bool { return c.unassigned }
