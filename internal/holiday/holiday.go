package holiday

import (
	"time"

	"github.com/username/ganttsvg/pkg/dateutil"
)

// Entry is a single public holiday: a calendar date and its display label.
type Entry struct {
	Date  time.Time
	Label string
}

// Table is an ordered, read-only list of public holidays. It is passed
// into the chart renderer, so callers can swap in any year or region.
type Table []Entry

// Lookup returns the label of the holiday falling on the given calendar
// date. Matching is exact date equality, not range containment.
func (t Table) Lookup(date time.Time) (string, bool) {
	for _, entry := range t {
		if dateutil.IsSameDay(entry.Date, date) {
			return entry.Label, true
		}
	}
	return "", false
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// France2024 returns the French public holidays for 2024. This is the
// built-in table used when no holiday file is configured.
func France2024() Table {
	return Table{
		{day(2024, time.January, 1), "Jour de l'an"},
		{day(2024, time.April, 1), "Lundi de Pâques"},
		{day(2024, time.May, 1), "Fête du Travail"},
		{day(2024, time.May, 8), "Victoire 1945"},
		{day(2024, time.May, 9), "Ascension"},
		{day(2024, time.May, 20), "Lundi de Pentecôte"},
		{day(2024, time.July, 14), "Fête nationale"},
		{day(2024, time.August, 15), "Assomption"},
		{day(2024, time.November, 1), "Toussaint"},
		{day(2024, time.November, 11), "Armistice 1918"},
		{day(2024, time.December, 25), "Noël"},
	}
}
