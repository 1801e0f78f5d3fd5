package domain

import "time"

// Day represents a calendar day with word count
type Day struct {
	Date      time.Time
	WordCount int
}

var monthNames = []string{
	"", "Oca", "Şub", "Mar", "Nis", "May", "Haz",
	"Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara",
}

// DisplayString returns user-friendly date string relative to now
func (d Day) DisplayString(now time.Time) string {
	switch DaysBetween(d.Date, now) {
	case 0:
		return "Bugün"
	case 1:
		return "Dün"
	}
	return d.Date.Format("2 ") + monthNames[d.Date.Month()] + d.Date.Format(" 2006")
}

// StartOfDay returns midnight of t's day in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from a to b.
// Both are reduced to their civil date first, so DST shifts do not matter.
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// MonthsAgo moves t back n months keeping the time of day.
// The day is clamped to the last day of the target month, so Mar 31 minus
// one month is Feb 29 in a leap year rather than rolling into March.
func MonthsAgo(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()-time.Month(n), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	day := t.Day()
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
