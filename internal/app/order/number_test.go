package order

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumberGeneratorFormat(t *testing.T) {
	gen := NewNumberGenerator()
	at := time.Date(2026, 1, 15, 13, 45, 0, 0, time.UTC)

	pattern := regexp.MustCompile(`^ORD-20260115-[0-9A-F]{6}$`)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := gen.Next(at)
		assert.Regexp(t, pattern, number)
		seen[number] = true
	}
	// Random suffixes should essentially never collide in a small sample.
	assert.Greater(t, len(seen), 95)
}
