package pb

import (
	"errors"
	"fmt"
	"time"

	"github.com/viant/caltime"
	"github.com/viant/caltime/zone"
	"google.golang.org/genproto/googleapis/type/datetime"
	"google.golang.org/protobuf/types/known/durationpb"
)

// ErrUnrepresentable reports calendar that google.type.DateTime cannot carry
var ErrUnrepresentable = errors.New("calendar is not representable as google.type.DateTime")

// CalendarToDateTime converts calendar to google.type.DateTime.
// Undefined year maps to 0, undefined time fields to 0, undefined timezone to local time.
func CalendarToDateTime(cal *caltime.Calendar) (*datetime.DateTime, error) {
	if cal == nil {
		return nil, nil
	}
	if err := cal.Validate(); err != nil {
		return nil, err
	}
	if missing := cal.Missing(caltime.Month, caltime.Day); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %v", ErrUnrepresentable, missing)
	}
	ret := &datetime.DateTime{}
	if year, ok := cal.Get(caltime.Year); ok {
		if year < 1 || year > 9999 {
			return nil, fmt.Errorf("%w: year %d outside 1..9999", ErrUnrepresentable, year)
		}
		ret.Year = int32(year)
	}
	month, _ := cal.Get(caltime.Month)
	day, _ := cal.Get(caltime.Day)
	hour, _ := cal.Get(caltime.Hour)
	minute, _ := cal.Get(caltime.Minute)
	second, _ := cal.Get(caltime.Second)
	millisecond, _ := cal.Get(caltime.Millisecond)
	ret.Month = int32(month)
	ret.Day = int32(day)
	ret.Hours = int32(hour)
	ret.Minutes = int32(minute)
	ret.Seconds = int32(second)
	ret.Nanos = int32(millisecond * int(time.Millisecond))
	if offset, ok := cal.Get(caltime.Timezone); ok {
		ret.TimeOffset = &datetime.DateTime_UtcOffset{UtcOffset: durationpb.New(time.Duration(offset) * time.Minute)}
	}
	return ret, nil
}

// CalendarFromDateTime converts google.type.DateTime to calendar.
// Year 0 maps to undefined year; a time zone id is evaluated at the local date time.
func CalendarFromDateTime(dt *datetime.DateTime) (*caltime.Calendar, error) {
	if dt == nil {
		return nil, nil
	}
	if dt.Nanos < 0 || dt.Nanos >= int32(time.Second) {
		return nil, fmt.Errorf("%w: nanos %d outside 0..999999999", ErrUnrepresentable, dt.Nanos)
	}
	ret := caltime.Calendar{}
	if dt.Year != 0 {
		ret = ret.With(caltime.Year, int(dt.Year))
	}
	ret = ret.With(caltime.Month, int(dt.Month)).
		With(caltime.Day, int(dt.Day)).
		With(caltime.Hour, int(dt.Hours)).
		With(caltime.Minute, int(dt.Minutes)).
		With(caltime.Second, int(dt.Seconds)).
		With(caltime.Millisecond, int(dt.Nanos)/int(time.Millisecond))

	switch offset := dt.TimeOffset.(type) {
	case *datetime.DateTime_UtcOffset:
		if err := offset.UtcOffset.CheckValid(); err != nil {
			return nil, err
		}
		utcOffset := offset.UtcOffset.AsDuration()
		if utcOffset%time.Minute != 0 {
			return nil, fmt.Errorf("%w: utc offset %v is not whole minutes", ErrUnrepresentable, utcOffset)
		}
		ret = ret.With(caltime.Timezone, int(utcOffset/time.Minute))
	case *datetime.DateTime_TimeZone:
		if dt.Year == 0 {
			return nil, fmt.Errorf("%w: time zone %v requires year", ErrUnrepresentable, offset.TimeZone.GetId())
		}
		z, err := zone.Load(offset.TimeZone.GetId())
		if err != nil {
			return nil, err
		}
		local := time.Date(int(dt.Year), time.Month(dt.Month), int(dt.Day), int(dt.Hours), int(dt.Minutes), int(dt.Seconds), int(dt.Nanos), z.Location())
		ret = ret.With(caltime.Timezone, z.OffsetAt(local))
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return &ret, nil
}
