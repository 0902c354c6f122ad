package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"embox/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestClassify_TieBreakOrder(t *testing.T) {
	today := date(2024, time.June, 10)

	tests := []struct {
		name    string
		dueDate string
		want    Status
	}{
		{"due today", "2024-06-10", StatusDueToday},
		{"due tomorrow", "2024-06-11", StatusDueTomorrow},
		{"two days out is active", "2024-06-12", StatusActive},
		{"far future is active", "2025-01-01", StatusActive},
		{"yesterday is overdue", "2024-06-09", StatusOverdue},
		{"long overdue", "2024-06-05", StatusOverdue},
		{"months overdue", "2023-12-31", StatusOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.dueDate, today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Properties over a spread of base dates, including month and year
// boundaries and the leap day.
func TestClassify_Properties(t *testing.T) {
	bases := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.February, 29),
		date(2024, time.June, 10),
		date(2024, time.December, 31),
		date(2025, time.March, 15),
	}

	for _, today := range bases {
		got, err := Classify(FormatDate(today), today)
		require.NoError(t, err)
		assert.Equal(t, StatusDueToday, got, "d vs d on %s", FormatDate(today))

		got, err = Classify(FormatDate(today.AddDate(0, 0, 1)), today)
		require.NoError(t, err)
		assert.Equal(t, StatusDueTomorrow, got, "d+1 vs d on %s", FormatDate(today))

		for _, n := range []int{2, 3, 30, 365} {
			got, err = Classify(FormatDate(today.AddDate(0, 0, n)), today)
			require.NoError(t, err)
			assert.Equal(t, StatusActive, got, "d+%d vs d on %s", n, FormatDate(today))
		}

		for _, n := range []int{1, 2, 30, 365} {
			got, err = Classify(FormatDate(today.AddDate(0, 0, -n)), today)
			require.NoError(t, err)
			assert.Equal(t, StatusOverdue, got, "d-%d vs d on %s", n, FormatDate(today))
		}
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	// "today" usually comes from time.Now(); only the calendar day may
	// influence the result.
	lateToday := time.Date(2024, time.June, 10, 23, 59, 59, 0, time.Local)

	got, err := Classify("2024-06-10", lateToday)
	require.NoError(t, err)
	assert.Equal(t, StatusDueToday, got)

	got, err = Classify("2024-06-11", lateToday)
	require.NoError(t, err)
	assert.Equal(t, StatusDueTomorrow, got)
}

func TestClassify_Idempotent(t *testing.T) {
	today := date(2024, time.June, 10)

	first, err := Classify("2024-06-05", today)
	require.NoError(t, err)
	second, err := Classify("2024-06-05", today)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClassify_InvalidDueDate(t *testing.T) {
	_, err := Classify("junk", date(2024, time.June, 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", date(2024, 6, 10), date(2024, 6, 10), 0},
		{"next day", date(2024, 6, 10), date(2024, 6, 11), 1},
		{"previous day", date(2024, 6, 10), date(2024, 6, 9), -1},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 2},
		{"across year", date(2023, 12, 31), date(2024, 1, 1), 1},
		{"full leap year", date(2024, 1, 1), date(2025, 1, 1), 366},
		{
			name: "ignores time of day",
			a:    time.Date(2024, 6, 10, 23, 0, 0, 0, time.Local),
			b:    time.Date(2024, 6, 11, 1, 0, 0, 0, time.Local),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.a, tt.b))
		})
	}
}
