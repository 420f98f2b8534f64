package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	got, err := ParseClock("open_time", "09:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", got)

	got, err = ParseClock("open_time", "9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", got)

	for _, bad := range []string{"", "24:00", "12:60", "noon", "12:00:00"} {
		_, err := ParseClock("close_time", bad)
		require.Error(t, err, bad)
		assert.Equal(t, "Invalid close_time format. Use HH:MM", AsAppError(err).Message)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("date", "2025-02-14")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-14", got)

	for _, bad := range []string{"2025-02-30", "14/02/2025", "2025-2-14x"} {
		_, err := ParseDate("date", bad)
		require.Error(t, err, bad)
		assert.Equal(t, KindInvalidFormat, AsAppError(err).Kind)
	}
}

func TestParsePickupTime(t *testing.T) {
	got, err := ParsePickupTime("pickup_time", "2025-01-01 12:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC), got)

	_, err = ParsePickupTime("pickup_time", "2025-01-01T12:30")
	require.Error(t, err)
	assert.Equal(t, "Invalid pickup_time format. Use YYYY-MM-DD HH:MM", AsAppError(err).Message)
}
