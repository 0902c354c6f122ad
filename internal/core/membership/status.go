package membership

import "time"

// Status is the computed membership status of a customer relative to
// "today". It is derived on every read and never persisted.
type Status string

const (
	StatusDueToday    Status = "DUE_TODAY"
	StatusDueTomorrow Status = "DUE_TOMORROW"
	StatusOverdue     Status = "OVERDUE"
	StatusActive      Status = "ACTIVE"
)

// Classify maps a due date and "today" to a membership status.
// Check order matters: 0 days → DUE_TODAY, 1 day → DUE_TOMORROW,
// negative → OVERDUE, anything further out → ACTIVE. Every diff maps to
// exactly one status, so the function is total for parseable dates.
func Classify(dueDate string, today time.Time) (Status, error) {
	due, err := ParseDate(dueDate)
	if err != nil {
		return "", err
	}

	diff := DaysBetween(today, due)
	switch {
	case diff == 0:
		return StatusDueToday, nil
	case diff == 1:
		return StatusDueTomorrow, nil
	case diff < 0:
		return StatusOverdue, nil
	default:
		return StatusActive, nil
	}
}

// DaysBetween counts whole calendar days from a to b using only their
// year/month/day components. Both dates are rebuilt as fixed-zone
// midnights before subtracting, so DST transitions and time-of-day
// never skew the count.
func DaysBetween(a, b time.Time) int {
	from := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}
