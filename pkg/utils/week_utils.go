package utils

import (
	"fmt"
	"time"
)

// Reporting weeks run Saturday through Friday; the Friday identifies the week.
const weekOfLayout = "2006-01-02"

// DefaultLookbackWeeks bounds how far back a missed check-in may still be filed.
const DefaultLookbackWeeks = 4

// DateOnly strips the clock and zone so week math never shifts across a
// day boundary. All comparisons in this package are calendar-date comparisons.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CanonicalWeekOf maps a date to the Friday that closes its reporting week.
// A Friday maps to itself; a Saturday maps to the following Friday.
func CanonicalWeekOf(t time.Time) time.Time {
	d := DateOnly(t)
	offset := (int(time.Friday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}

// WeekStart returns the Saturday opening the week identified by weekOf.
func WeekStart(weekOf time.Time) time.Time {
	return DateOnly(weekOf).AddDate(0, 0, -6)
}

// DueDate is the deadline for on-time submission: end of the canonical day itself.
func DueDate(weekOf time.Time) time.Time {
	return DateOnly(weekOf)
}

// PastDue reports whether the week's deadline has passed as of today.
func PastDue(weekOf, today time.Time) bool {
	return DateOnly(today).After(DueDate(weekOf))
}

// WeeksBetween counts whole reporting weeks from the week containing a back to
// the week containing b. Negative when b is in an earlier week than a.
func WeeksBetween(earlier, later time.Time) int {
	return int(CanonicalWeekOf(later).Sub(CanonicalWeekOf(earlier)).Hours() / (24 * 7))
}

// ParseWeekOf parses a strict YYYY-MM-DD date. Anything else is ErrInvalidDate;
// a malformed input is never coerced into a nearby date.
func ParseWeekOf(s string) (time.Time, error) {
	t, err := time.ParseInLocation(weekOfLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatWeekOf renders a weekOf date the way the API exchanges it.
func FormatWeekOf(t time.Time) string {
	return DateOnly(t).Format(weekOfLayout)
}
