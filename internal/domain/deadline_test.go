package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeadline_RFC3339(t *testing.T) {
	got, err := ParseDeadline("2026-09-15T14:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC), got)
}

func TestParseDeadline_DateOnlyIsEndOfDay(t *testing.T) {
	got, err := ParseDeadline("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 23, 59, 59, 0, time.UTC), got)
}

func TestParseDeadline_Malformed(t *testing.T) {
	for _, raw := range []string{"", "next tuesday", "15/09/2026", "2026-13-40"} {
		_, err := ParseDeadline(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	night := time.Date(2026, 9, 15, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameCalendarDay(morning, night))
	assert.False(t, SameCalendarDay(night, nextDay))
}
