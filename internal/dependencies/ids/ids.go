package ids

import "github.com/google/uuid"

// Generator produces identifiers that can be mocked for testing
type Generator interface {
	NewID() string
}

// UUIDGenerator implements Generator with random UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a random version 4 UUID string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
