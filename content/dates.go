package content

import (
	"math"
	"strconv"
	"time"
)

// FormatRelativeDate returns a human label for date relative to now:
// "Today", "Yesterday", "N days ago", "N weeks ago", "N months ago", or the
// absolute "Jan 2, 2006" form for anything a year or more in the past.
// Future dates also get the absolute form.
func FormatRelativeDate(date, now time.Time) string {
	diffDays := int(math.Floor(now.Sub(date).Hours() / 24))
	switch {
	case diffDays == 0:
		return "Today"
	case diffDays == 1:
		return "Yesterday"
	case diffDays > 1 && diffDays < 7:
		return strconv.Itoa(diffDays) + " days ago"
	case diffDays >= 7 && diffDays < 30:
		return strconv.Itoa(diffDays/7) + " weeks ago"
	case diffDays >= 30 && diffDays < 365:
		return strconv.Itoa(diffDays/30) + " months ago"
	default:
		return date.Format("Jan 2, 2006")
	}
}
