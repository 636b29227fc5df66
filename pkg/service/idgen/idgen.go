package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// UUID generates identifiers backed by random UUIDs
type UUID struct{}

// New creates a UUID-backed generator
func New() *UUID {
	return &UUID{}
}

// NewID returns a new identifier with the given prefix, e.g. "log_8f14e…"
func (g *UUID) NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}

// Sequence generates deterministic sequential identifiers. Intended for tests
// and seed tooling.
type Sequence struct {
	mu   sync.Mutex
	next map[string]int
}

// NewSequence creates a sequential generator
func NewSequence() *Sequence {
	return &Sequence{
		next: make(map[string]int),
	}
}

// NewID returns the next identifier for the given prefix, e.g. "log_001"
func (g *Sequence) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next[prefix]++
	return fmt.Sprintf("%s_%03d", prefix, g.next[prefix])
}
