package time

import (
	"strings"
	"time"
)

var isoDateFormatToTimeLayoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"yyyy", "2006",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"dd", "02",
	"D", "2",
	"+hh:mm", "Z07:00",
	"+hhmm", "Z0700",
	"+hh", "Z07",
	"-hh:mm", "Z07:00",
	"-hhmm", "Z0700",
	"-hh", "Z07",
	"HH", "15",
	"hh", "15",
	"mm", "04",
	"m", "4",
	"ss", "05",
	".SSS", ".000",
	".SS", ".00",
	".S", ".0",
	"Z", "Z07:00",
)

// DateFormatToTimeLayout converts ISO date format (i.e. YYYY-MM-DDThh:mm:ss.SSS+hh:mm) to go time layout
func DateFormatToTimeLayout(dateFormat string) string {
	return isoDateFormatToTimeLayoutReplacer.Replace(dateFormat)
}

// HasZone returns true if layout carries zone offset
func HasZone(layout string) bool {
	return strings.Contains(layout, "Z07") || strings.Contains(layout, "-07") || strings.Contains(layout, "MST")
}

// Parse parses value with layout, values without offset are interpreted in loc
func Parse(layout, value string, loc *time.Location) (time.Time, error) {
	if layout == "" {
		layout = time.RFC3339
	}
	if loc == nil {
		loc = time.UTC
	}
	//adjust T fragment
	if strings.Contains(value, "T") != strings.Contains(layout, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil && len(value) < len(layout) {
		t, err = time.ParseInLocation(layout[:len(value)], value, loc)
	}
	return t, err
}
