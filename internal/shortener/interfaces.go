package shortener

// Generator defines the interface for generating short codes
type Generator interface {
	// GenerateShortCode generates a new short code
	GenerateShortCode() (string, error)

	// Type returns the type identifier of the generator
	Type() string
}

// GeneratorType constants
const (
	TypeRandom = "random"
)

// CodeLength is the length of generated short codes.
const CodeLength = 6

// Alphabet is the URL-safe character set generated codes are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
