package conv

import (
	"fmt"
	"reflect"
	"time"

	"github.com/viant/caltime"
	ftime "github.com/viant/caltime/format/time"
	"github.com/viant/caltime/zone"
)

var (
	timestampPtrType = reflect.TypeOf((*caltime.Timestamp)(nil))
	calendarPtrType  = reflect.TypeOf((*caltime.Calendar)(nil))
	timeType         = reflect.TypeOf(time.Time{})
	timePtrType      = reflect.TypeOf((*time.Time)(nil))
	stringType       = reflect.TypeOf("")
)

func (c *Converter) registerBuiltins() {
	c.RegisterConversion(timestampPtrType, calendarPtrType, timestampToCalendar)
	c.RegisterConversion(calendarPtrType, timestampPtrType, calendarToTimestamp)
	c.RegisterConversion(timeType, calendarPtrType, timeToCalendar)
	c.RegisterConversion(calendarPtrType, timePtrType, calendarToTime)
	c.RegisterConversion(stringType, timestampPtrType, stringToTimestamp)
	c.RegisterConversion(timestampPtrType, stringType, timestampToString)
}

func timestampToCalendar(src interface{}, dest interface{}, opts Options) error {
	*(dest.(**caltime.Calendar)) = TimestampToCalendar{}.Convert(src.(*caltime.Timestamp))
	return nil
}

func calendarToTimestamp(src interface{}, dest interface{}, opts Options) error {
	ts, err := NewCalendarToTimestamp(opts).Convert(src.(*caltime.Calendar))
	if err != nil {
		return err
	}
	*(dest.(**caltime.Timestamp)) = ts
	return nil
}

func timeToCalendar(src interface{}, dest interface{}, opts Options) error {
	ts, err := caltime.TimestampOf(src.(time.Time))
	if err != nil {
		return err
	}
	*(dest.(**caltime.Calendar)) = TimestampToCalendar{}.Convert(ts)
	return nil
}

func calendarToTime(src interface{}, dest interface{}, opts Options) error {
	ts, err := NewCalendarToTimestamp(opts).Convert(src.(*caltime.Calendar))
	if err != nil {
		return err
	}
	var ret *time.Time
	if ts != nil {
		t := ts.Time()
		ret = &t
	}
	*(dest.(**time.Time)) = ret
	return nil
}

func stringToTimestamp(src interface{}, dest interface{}, opts Options) error {
	value := src.(string)
	target := dest.(**caltime.Timestamp)
	if value == "" {
		*target = nil
		return nil
	}
	layout := opts.TimeLayout()
	if ftime.HasZone(layout) {
		t, err := ftime.Parse(layout, value, time.UTC)
		if err != nil {
			return fmt.Errorf("cannot parse timestamp '%s': %w", value, err)
		}
		_, offset := t.Zone()
		if offset%60 != 0 {
			return &caltime.FieldError{Field: caltime.Timezone, Value: offset, Reason: "offset seconds are not supported"}
		}
		ts, err := caltime.TimestampOf(t.In(zone.Fixed(offset / 60).Location()))
		if err != nil {
			return err
		}
		*target = ts
		return nil
	}
	if opts.Resolver == nil {
		return zone.ErrUnconfigured
	}
	z, err := opts.Resolver.Default()
	if err != nil {
		return err
	}
	//local fields are parsed as UTC so that zone rules cannot shift them
	t, err := ftime.Parse(layout, value, time.UTC)
	if err != nil {
		return fmt.Errorf("cannot parse timestamp '%s': %w", value, err)
	}
	ts, err := caltime.NewTimestamp(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond), z)
	if err != nil {
		return err
	}
	*target = ts
	return nil
}

func timestampToString(src interface{}, dest interface{}, opts Options) error {
	ts := src.(*caltime.Timestamp)
	target := dest.(*string)
	if ts == nil {
		*target = ""
		return nil
	}
	*target = ts.Time().Format(opts.TimeLayout())
	return nil
}
