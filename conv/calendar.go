package conv

import (
	"log/slog"

	"github.com/viant/caltime"
	"github.com/viant/caltime/zone"
)

// TimestampToCalendar converts a timestamp to a calendar with every field set
type TimestampToCalendar struct{}

// Convert returns nil for nil timestamp
func (TimestampToCalendar) Convert(ts *caltime.Timestamp) *caltime.Calendar {
	if ts == nil {
		return nil
	}
	ret := caltime.CalendarOf(ts.Year(), ts.Month(), ts.Day(), ts.Hour(), ts.Minute(), ts.Second(), ts.Millisecond()).
		With(caltime.Timezone, ts.OffsetMinutes())
	return &ret
}

// CalendarToTimestamp converts a calendar to a timestamp.
// Calendars missing any of caltime.MandatoryFields convert to no value;
// second and millisecond default to 0, undefined timezone resolves to the Resolver default zone.
type CalendarToTimestamp struct {
	Resolver zone.Resolver
	Logger   *slog.Logger
}

// NewCalendarToTimestamp creates converter from options
func NewCalendarToTimestamp(opts Options) CalendarToTimestamp {
	return CalendarToTimestamp{Resolver: opts.Resolver, Logger: opts.Logger}
}

// Convert returns (nil, nil) for nil or incomplete calendar, and an error for invalid field values
func (c CalendarToTimestamp) Convert(cal *caltime.Calendar) (*caltime.Timestamp, error) {
	if cal == nil {
		return nil, nil
	}
	if missing := cal.Missing(caltime.MandatoryFields...); len(missing) > 0 {
		if c.Logger != nil {
			c.Logger.Debug("calendar without mandatory fields converted to no timestamp", "missing", missing, "calendar", cal.String())
		}
		return nil, nil
	}
	z, err := c.zone(cal)
	if err != nil {
		return nil, err
	}
	year, _ := cal.Get(caltime.Year)
	month, _ := cal.Get(caltime.Month)
	day, _ := cal.Get(caltime.Day)
	hour, _ := cal.Get(caltime.Hour)
	minute, _ := cal.Get(caltime.Minute)
	second, _ := cal.Get(caltime.Second)
	millisecond, _ := cal.Get(caltime.Millisecond)
	return caltime.NewTimestamp(year, month, day, hour, minute, second, millisecond, z)
}

func (c CalendarToTimestamp) zone(cal *caltime.Calendar) (zone.Zone, error) {
	if offset, ok := cal.Get(caltime.Timezone); ok {
		if err := caltime.Timezone.Check(offset); err != nil {
			return zone.Zone{}, err
		}
		return zone.Fixed(offset), nil
	}
	if c.Resolver == nil {
		return zone.Zone{}, zone.ErrUnconfigured
	}
	return c.Resolver.Default()
}
