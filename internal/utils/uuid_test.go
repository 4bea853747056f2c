package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected a valid UUID, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected UUID version 7, got %d", parsed.Version())
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{}, 100)

	for i := 0; i < 100; i++ {
		id := g.Generate()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestUUIDGenerator_TraceID(t *testing.T) {
	g := NewUUIDGenerator()

	tests := []struct {
		name     string
		incoming string
		wantKept bool
	}{
		{name: "uuid", incoming: "550e8400-e29b-41d4-a716-446655440000", wantKept: true},
		{name: "custom token", incoming: "edge.req_42-a", wantKept: true},
		{name: "max length", incoming: strings.Repeat("a", 128), wantKept: true},
		{name: "empty", incoming: ""},
		{name: "too long", incoming: strings.Repeat("a", 129)},
		{name: "spaces", incoming: "trace id"},
		{name: "quote", incoming: `abc","level":"error`},
		{name: "newline", incoming: "abc\ndef"},
		{name: "non ascii", incoming: "трасса"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.TraceID(tt.incoming)

			if tt.wantKept {
				if got != tt.incoming {
					t.Errorf("expected %q to be kept, got %q", tt.incoming, got)
				}
				return
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("expected a generated UUID for %q, got %q", tt.incoming, got)
			}
		})
	}
}
