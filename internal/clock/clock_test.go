package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	c := Fixed(time.Date(2026, 10, 14, 23, 30, 0, 0, time.UTC))
	assert.Equal(t, "2026-10-14", Today(c))

	// Same instant seen from UTC+2 is still the 14th in UTC.
	east := time.FixedZone("east", 2*60*60)
	c = Fixed(time.Date(2026, 10, 15, 1, 30, 0, 0, east))
	assert.Equal(t, "2026-10-14", Today(c))
}

func TestSystemIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, System{}.Now().Location())
}
