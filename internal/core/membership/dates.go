package membership

import (
	"fmt"
	"time"

	"embox/internal/core/domain"
)

// DateLayout is the wire format for all calendar dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Plan names recognized by the due-date calculator. Any other value
// falls back to the Monthly offset.
const (
	PlanMonthly   = "Monthly"
	PlanBimonthly = "Bimonthly"
	PlanQuarterly = "Quarterly"
)

// Billing strategies. StrategyPlan derives the due date from the plan's
// calendar-month offset; StrategyFixed30 always adds 30 days.
const (
	StrategyPlan    = "plan"
	StrategyFixed30 = "fixed30"
)

// ParseDate parses a YYYY-MM-DD string into a local midnight.
// The time is rebuilt from its year/month/day components so the result
// is a plain local calendar date, never a UTC instant. Parsing through
// a UTC-aware timestamp shifts the day for zones west of UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// FormatDate formats a time as a YYYY-MM-DD calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// PlanMonths returns the calendar-month offset for a plan name.
// Unrecognized plans default to one month (fail-open, not an error).
func PlanMonths(planName string) int {
	switch planName {
	case PlanBimonthly:
		return 2
	case PlanQuarterly:
		return 3
	default:
		return 1
	}
}

// ComputeDueDate derives a due date from an inscription date and plan.
// A non-empty manualDueDate is returned verbatim and skips plan
// arithmetic entirely, letting an operator override a billing cycle.
//
// Month addition follows time.Time.AddDate overflow semantics: when the
// day-of-month does not exist in the target month the date rolls into
// the following month (Jan 31 + 1 month = Mar 2 or Mar 3). The same
// rule applies to every plan.
func ComputeDueDate(planName, inscriptionDate, manualDueDate string) (string, error) {
	if manualDueDate != "" {
		return manualDueDate, nil
	}

	base, err := ParseDate(inscriptionDate)
	if err != nil {
		return "", err
	}

	return FormatDate(base.AddDate(0, PlanMonths(planName), 0)), nil
}

// ComputeDueDateFixed derives a due date as inscription + 30 days
// regardless of plan. Kept for deployments billing on a flat cycle.
func ComputeDueDateFixed(inscriptionDate, manualDueDate string) (string, error) {
	if manualDueDate != "" {
		return manualDueDate, nil
	}

	base, err := ParseDate(inscriptionDate)
	if err != nil {
		return "", err
	}

	return FormatDate(base.AddDate(0, 0, 30)), nil
}

// Calculator derives due dates according to the configured billing
// strategy. The zero value uses the plan-based strategy.
type Calculator struct {
	strategy string
}

// NewCalculator creates a calculator for the given strategy.
func NewCalculator(strategy string) Calculator {
	return Calculator{strategy: strategy}
}

// DueDate computes the due date using the calculator's strategy.
func (c Calculator) DueDate(planName, inscriptionDate, manualDueDate string) (string, error) {
	if c.strategy == StrategyFixed30 {
		return ComputeDueDateFixed(inscriptionDate, manualDueDate)
	}
	return ComputeDueDate(planName, inscriptionDate, manualDueDate)
}
