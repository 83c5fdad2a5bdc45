package components

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatLongDate formats t the French way, e.g. "19 octobre 2026"
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// ExpiryDescription is the text under the expiration field
func ExpiryDescription(t *time.Time) string {
	if t == nil {
		return "Pas de date d'expiration"
	}
	return FormatLongDate(*t)
}

// frenchMagnitudes are day-granular relative time buckets
var frenchMagnitudes = []humanize.RelTimeMagnitude{
	{D: humanize.Day, Format: "aujourd'hui", DivBy: 1},
	{D: 2 * humanize.Day, Format: "%s 1 jour", DivBy: 1},
	{D: humanize.Week, Format: "%s %d jours", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "%s 1 semaine", DivBy: 1},
	{D: humanize.Month, Format: "%s %d semaines", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "%s 1 mois", DivBy: 1},
	{D: humanize.Year, Format: "%s %d mois", DivBy: humanize.Month},
	{D: 2 * humanize.Year, Format: "%s 1 an", DivBy: 1},
	{D: humanize.LongTime, Format: "%s %d ans", DivBy: humanize.Year},
	{D: math.MaxInt64, Format: "%s longtemps", DivBy: 1},
}

// RelativeDay describes the calendar day of t relative to now,
// e.g. "dans 3 jours", "il y a 1 semaine" or "aujourd'hui"
func RelativeDay(t, now time.Time) string {
	return humanize.CustomRelTime(calendarDay(t), calendarDay(now), "il y a", "dans", frenchMagnitudes)
}

// calendarDay maps t to UTC midnight of its local date so that differences
// are whole days even across DST changes
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
