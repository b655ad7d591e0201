package mocks

import (
	"strconv"
	"sync"

	"github.com/hipolitesport/roster/internal/dependencies/ids"
)

// SequentialIDs hands out "1", "2", ... so tests can predict identifiers
type SequentialIDs struct {
	mu   sync.Mutex
	next int
}

// Ensure SequentialIDs implements Generator
var _ ids.Generator = (*SequentialIDs)(nil)

// NewSequentialIDs creates a generator starting at 1
func NewSequentialIDs() *SequentialIDs {
	return &SequentialIDs{next: 1}
}

// NewID returns the next number as a string
func (g *SequentialIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := strconv.Itoa(g.next)
	g.next++
	return id
}
