package service

import (
	"fmt"
)

// TestGenerator is a simple sequential generator for testing purposes
type TestGenerator struct {
	counter int
}

// NewTestGenerator creates a new test generator
func NewTestGenerator() *TestGenerator {
	return &TestGenerator{counter: 0}
}

// GenerateShortCode generates a simple test short code
func (g *TestGenerator) GenerateShortCode() (string, error) {
	g.counter++
	return fmt.Sprintf("tst%03d", g.counter), nil
}

// Type returns the generator type
func (g *TestGenerator) Type() string {
	return "test"
}
