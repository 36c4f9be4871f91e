package zone

import (
	"errors"
	"fmt"
	"time"
)

// MaxOffsetMinutes is the largest supported zone offset (14:00)
const MaxOffsetMinutes = 14 * 60

// ErrUnconfigured reports that no default zone could be resolved
var ErrUnconfigured = errors.New("default time zone was not configured")

// Zone represents a time zone identity
type Zone struct {
	id  string
	loc *time.Location
}

// ID returns zone id, i.e. Europe/Warsaw or -01:00
func (z Zone) ID() string {
	return z.id
}

// Location returns zone location
func (z Zone) Location() *time.Location {
	return z.loc
}

// IsZero returns true if zone was not defined
func (z Zone) IsZero() bool {
	return z.loc == nil
}

// OffsetAt returns zone offset in minutes at supplied instant
func (z Zone) OffsetAt(at time.Time) int {
	if z.loc == nil {
		return 0
	}
	_, offset := at.In(z.loc).Zone()
	return offset / 60
}

func (z Zone) String() string {
	return z.id
}

// Fixed returns a zone with a constant offset in minutes
func Fixed(offsetMinutes int) Zone {
	if offsetMinutes == 0 {
		return Zone{id: "UTC", loc: time.UTC}
	}
	id := formatOffset(offsetMinutes)
	return Zone{id: id, loc: time.FixedZone(id, offsetMinutes*60)}
}

// Of returns a zone for the supplied location
func Of(loc *time.Location) Zone {
	if loc == nil {
		return Zone{}
	}
	return Zone{id: loc.String(), loc: loc}
}

// Load loads IANA zone
func Load(id string) (Zone, error) {
	if id == "" {
		return Zone{}, fmt.Errorf("%w: zone id was empty", ErrUnconfigured)
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return Zone{}, fmt.Errorf("%w: %v", ErrUnconfigured, err)
	}
	return Of(loc), nil
}

func formatOffset(minutes int) string {
	sign := '+'
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}
