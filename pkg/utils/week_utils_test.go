package utils

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCanonicalWeekOfMapsEveryDayToClosingFriday(t *testing.T) {
	// Sat Oct 18 2025 opens the week that closes on Fri Oct 24 2025.
	want := date(2025, time.October, 24)
	for i := 0; i < 7; i++ {
		day := date(2025, time.October, 18).AddDate(0, 0, i)
		if got := CanonicalWeekOf(day); !got.Equal(want) {
			t.Fatalf("CanonicalWeekOf(%s) = %s, want %s",
				day.Format("2006-01-02 Mon"), got.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	}
}

func TestCanonicalWeekOfIsIdempotent(t *testing.T) {
	days := []time.Time{
		date(2025, time.October, 18),
		date(2025, time.October, 22),
		date(2025, time.October, 24),
		date(2024, time.December, 31),
		date(2025, time.January, 1),
	}
	for _, day := range days {
		once := CanonicalWeekOf(day)
		twice := CanonicalWeekOf(once)
		if !once.Equal(twice) {
			t.Fatalf("CanonicalWeekOf not idempotent for %s: %s then %s",
				day.Format("2006-01-02"), once.Format("2006-01-02"), twice.Format("2006-01-02"))
		}
		if once.Weekday() != time.Friday {
			t.Fatalf("CanonicalWeekOf(%s) = %s, not a Friday",
				day.Format("2006-01-02"), once.Format("2006-01-02 Mon"))
		}
	}
}

func TestCanonicalWeekOfIgnoresClockAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*3600)
	late := time.Date(2025, time.October, 22, 23, 59, 59, 0, loc)
	if got, want := CanonicalWeekOf(late), date(2025, time.October, 24); !got.Equal(want) {
		t.Fatalf("CanonicalWeekOf with clock set = %s, want %s",
			got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestWeekStartIsPrecedingSaturday(t *testing.T) {
	weekOf := date(2025, time.October, 24)
	start := WeekStart(weekOf)
	if want := date(2025, time.October, 18); !start.Equal(want) {
		t.Fatalf("WeekStart = %s, want %s", start.Format("2006-01-02"), want.Format("2006-01-02"))
	}
	if start.Weekday() != time.Saturday {
		t.Fatalf("WeekStart landed on %s, want Saturday", start.Weekday())
	}
}

func TestPastDue(t *testing.T) {
	weekOf := date(2025, time.October, 24)
	cases := []struct {
		name  string
		today time.Time
		want  bool
	}{
		{"midweek", date(2025, time.October, 22), false},
		{"on the due date", date(2025, time.October, 24), false},
		{"day after", date(2025, time.October, 25), true},
		{"weeks later", date(2025, time.November, 10), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PastDue(weekOf, tc.today); got != tc.want {
				t.Fatalf("PastDue(%s, %s) = %v, want %v",
					weekOf.Format("2006-01-02"), tc.today.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestWeeksBetween(t *testing.T) {
	cases := []struct {
		name           string
		earlier, later time.Time
		want           int
	}{
		{"same week", date(2025, time.October, 18), date(2025, time.October, 24), 0},
		{"adjacent weeks", date(2025, time.October, 24), date(2025, time.October, 25), 1},
		{"four weeks", date(2025, time.September, 26), date(2025, time.October, 24), 4},
		{"reversed", date(2025, time.October, 25), date(2025, time.October, 24), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeeksBetween(tc.earlier, tc.later); got != tc.want {
				t.Fatalf("WeeksBetween = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestParseWeekOf(t *testing.T) {
	got, err := ParseWeekOf("2025-10-24")
	if err != nil {
		t.Fatalf("ParseWeekOf valid date: %v", err)
	}
	if want := date(2025, time.October, 24); !got.Equal(want) {
		t.Fatalf("ParseWeekOf = %s, want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}

	bad := []string{"", "10/24/2025", "2025-13-01", "2025-02-30", "2025-10-24T00:00:00Z", "yesterday"}
	for _, s := range bad {
		if _, err := ParseWeekOf(s); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseWeekOf(%q) error = %v, want ErrInvalidDate", s, err)
		}
	}
}

func TestFormatWeekOfRoundTrips(t *testing.T) {
	weekOf := CanonicalWeekOf(date(2025, time.October, 20))
	parsed, err := ParseWeekOf(FormatWeekOf(weekOf))
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if !parsed.Equal(weekOf) {
		t.Fatalf("round trip changed the date: %s != %s",
			parsed.Format("2006-01-02"), weekOf.Format("2006-01-02"))
	}
}
