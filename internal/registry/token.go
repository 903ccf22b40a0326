package registry

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	hexAlphabet = "0123456789abcdef"
	tokenLength = 4

	// tokenSpace is the number of distinct generated short codes: 16^4, the
	// same as two random bytes.
	tokenSpace = 1 << 16
)

// TokenGenerator produces candidate short codes.
type TokenGenerator interface {
	Generate() (string, error)
}

// HexGenerator generates short codes of four lowercase hexadecimal characters.
type HexGenerator struct{}

// NewHexGenerator creates a new HexGenerator.
func NewHexGenerator() *HexGenerator {
	return &HexGenerator{}
}

// Generate returns a random short code using crypto/rand as the entropy source.
func (g *HexGenerator) Generate() (string, error) {
	return gonanoid.Generate(hexAlphabet, tokenLength)
}

// isGeneratedForm reports whether code could have been produced by HexGenerator.
func isGeneratedForm(code string) bool {
	if len(code) != tokenLength {
		return false
	}

	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}

	return true
}
