package chart

import "time"

// Fixed French display names, matching the built-in holiday table.
// Months are indexed from January = 0, weekdays from Sunday = 0.
var monthNames = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var dayNames = [7]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

// MonthName returns the display name of a month.
func MonthName(m time.Month) string {
	return monthNames[int(m)-1]
}

// DayName returns the display name of a weekday.
func DayName(w time.Weekday) string {
	return dayNames[int(w)]
}
