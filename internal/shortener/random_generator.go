package shortener

import (
	"crypto/rand"
	"fmt"
)

// RandomGenerator generates short codes by drawing uniformly from the
// URL-safe alphabet. With 64 characters over 6 positions the space holds
// 64^6 (~68 billion) codes; collisions are treated as negligible and no
// post-generation uniqueness check is performed. The store's uniqueness
// constraint is the backstop for the rare collision.
type RandomGenerator struct {
	alphabet string
	length   int
}

// NewRandomGenerator creates a new random code generator.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{
		alphabet: Alphabet,
		length:   CodeLength,
	}
}

// GenerateShortCode generates a new random short code.
func (g *RandomGenerator) GenerateShortCode() (string, error) {
	buf := make([]byte, g.length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	// len(Alphabet) is 64, so masking the low 6 bits indexes it uniformly
	for i, b := range buf {
		buf[i] = g.alphabet[b&0x3F]
	}

	return string(buf), nil
}

// Type returns the generator type
func (g *RandomGenerator) Type() string {
	return TypeRandom
}

// Ensure RandomGenerator implements Generator interface
var _ Generator = (*RandomGenerator)(nil)
