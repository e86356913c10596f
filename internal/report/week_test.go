package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeekID(t *testing.T) {
	require.Equal(t, "2026-W34", WeekID(time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)))
	require.Equal(t, "2026-W01", WeekID(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	// An ISO week can belong to the previous calendar year.
	require.Equal(t, "2026-W53", WeekID(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseWeekID(t *testing.T) {
	year, week, err := ParseWeekID("2026-W07")
	require.NoError(t, err)
	require.Equal(t, 2026, year)
	require.Equal(t, 7, week)

	for _, bad := range []string{"", "2026-w07", "2026W07", "26-W07", "2026-W00", "2026-W54", "2026-W7", "latest"} {
		_, _, err := ParseWeekID(bad)
		require.Error(t, err, "input %q", bad)
	}
}
