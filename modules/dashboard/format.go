package dashboard

import (
	"strconv"
	"time"
)

// FormatDue renders t in loc as "2nd of March at 14:05".
func FormatDue(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return strconv.Itoa(t.Day()) + ordinalSuffix(t.Day()) + " of " + t.Format("January") + " at " + t.Format("15:04")
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
