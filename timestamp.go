package caltime

import (
	"time"

	"github.com/viant/caltime/zone"
)

// TimestampLayout is used by Timestamp.String
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp represents an instant with all calendar fields and a zone
type Timestamp struct {
	t    time.Time
	zone zone.Zone
}

// NewTimestamp validates fields and creates a timestamp in the supplied zone
func NewTimestamp(year, month, day, hour, minute, second, millisecond int, z zone.Zone) (*Timestamp, error) {
	if z.IsZero() {
		return nil, zone.ErrUnconfigured
	}
	values := [...]int{year, month, day, hour, minute, second, millisecond}
	for i, value := range values {
		if err := Field(i).Check(value); err != nil {
			return nil, err
		}
	}
	if err := checkDay(year, month, day); err != nil {
		return nil, err
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, millisecond*int(time.Millisecond), z.Location())
	if t.Hour() != hour || t.Minute() != minute || t.Day() != day {
		return nil, &FieldError{Field: Hour, Value: hour, Reason: "local time does not exist in zone " + z.ID()}
	}
	if err := Timezone.Check(z.OffsetAt(t)); err != nil {
		return nil, err
	}
	return &Timestamp{t: t, zone: z}, nil
}

// TimestampOf returns timestamp for supplied time, truncated to milliseconds.
// Zones whose offset at t exceeds MaxOffsetMinutes are rejected.
func TimestampOf(t time.Time) (*Timestamp, error) {
	t = t.Truncate(time.Millisecond)
	z := zone.Of(t.Location())
	if err := Timezone.Check(z.OffsetAt(t)); err != nil {
		return nil, err
	}
	return &Timestamp{t: t, zone: z}, nil
}

func (t *Timestamp) Year() int {
	return t.t.Year()
}

func (t *Timestamp) Month() int {
	return int(t.t.Month())
}

func (t *Timestamp) Day() int {
	return t.t.Day()
}

func (t *Timestamp) Hour() int {
	return t.t.Hour()
}

func (t *Timestamp) Minute() int {
	return t.t.Minute()
}

func (t *Timestamp) Second() int {
	return t.t.Second()
}

func (t *Timestamp) Millisecond() int {
	return t.t.Nanosecond() / int(time.Millisecond)
}

// OffsetMinutes returns zone offset at the timestamp instant
func (t *Timestamp) OffsetMinutes() int {
	return t.zone.OffsetAt(t.t)
}

// Zone returns timestamp zone
func (t *Timestamp) Zone() zone.Zone {
	return t.zone
}

// Time returns timestamp as time.Time
func (t *Timestamp) Time() time.Time {
	return t.t
}

// Equal compares the calendar fields and the offset in minutes; zone identity and sub-minute offset are ignored
func (t *Timestamp) Equal(other *Timestamp) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Year() == other.Year() &&
		t.Month() == other.Month() &&
		t.Day() == other.Day() &&
		t.Hour() == other.Hour() &&
		t.Minute() == other.Minute() &&
		t.Second() == other.Second() &&
		t.Millisecond() == other.Millisecond() &&
		t.OffsetMinutes() == other.OffsetMinutes()
}

func (t *Timestamp) String() string {
	return t.t.Format(TimestampLayout)
}
