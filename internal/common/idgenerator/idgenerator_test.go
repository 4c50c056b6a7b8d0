package idgenerator_test

import (
	"regexp"
	"testing"

	"github.com/ezfinancial/go-entry-engine/internal/common/idgenerator"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	gen := idgenerator.New()

	testCases := []struct {
		name     string
		prefixes []string
		pattern  string
	}{
		{
			name:     "without prefix",
			prefixes: nil,
			pattern:  `^\d{13}[A-Za-z0-9_-]{22}$`,
		},
		{
			name:     "single prefix",
			prefixes: []string{"PE"},
			pattern:  `^PE-\d{13}[A-Za-z0-9_-]{22}$`,
		},
		{
			name:     "multiple prefixes",
			prefixes: []string{"ENT", "POSTED"},
			pattern:  `^ENT-POSTED-\d{13}[A-Za-z0-9_-]{22}$`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			id := gen.Generate(tc.prefixes...)
			assert.Regexp(t, regexp.MustCompile(tc.pattern), id)
		})
	}
}

func TestGenerateUniqueness(t *testing.T) {
	t.Parallel()

	gen := idgenerator.New()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.Generate("PE")
		assert.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}
