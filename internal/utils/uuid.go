package utils

import "github.com/google/uuid"

// maxTraceIDLength bounds a caller-supplied trace id.
const maxTraceIDLength = 128

// UUIDGenerator produces trace identifiers for inbound requests.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUIDv4
// when the v7 clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TraceID keeps a caller-supplied id when it is a well-formed token and
// generates a fresh one otherwise. Accepted ids are at most 128 characters
// of ASCII letters, digits, '-', '_' and '.'.
func (g *UUIDGenerator) TraceID(incoming string) string {
	if isTraceIDToken(incoming) {
		return incoming
	}
	return g.Generate()
}

func isTraceIDToken(s string) bool {
	if s == "" || len(s) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
