package zone

import (
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultVariable is the environment variable read by Environment
const DefaultVariable = "TZ"

// Resolver resolves the default zone; implementations are consulted on every conversion
type Resolver interface {
	Default() (Zone, error)
}

// Setting represents a process wide default zone setting
type Setting struct {
	zone atomic.Pointer[Zone]
}

// Default returns the current zone or ErrUnconfigured
func (s *Setting) Default() (Zone, error) {
	z := s.zone.Load()
	if z == nil || z.IsZero() {
		return Zone{}, ErrUnconfigured
	}
	return *z, nil
}

// Set replaces the default zone
func (s *Setting) Set(z Zone) {
	if z.IsZero() {
		s.zone.Store(nil)
		return
	}
	s.zone.Store(&z)
}

// Clear removes the default zone
func (s *Setting) Clear() {
	s.zone.Store(nil)
}

// Apply sets the default zone from config
func (s *Setting) Apply(config *Config) error {
	z, err := config.Zone()
	if err != nil {
		return err
	}
	s.Set(z)
	return nil
}

// NewSetting creates a setting with initial zone
func NewSetting(z Zone) *Setting {
	ret := &Setting{}
	ret.Set(z)
	return ret
}

var locations sync.Map // map[string]*time.Location

// Environment resolves the default zone from an environment variable on each call.
// Unset variable resolves to time.Local, empty one to UTC.
type Environment struct {
	Variable string
}

// Default returns the zone named by the environment
func (e Environment) Default() (Zone, error) {
	name := e.Variable
	if name == "" {
		name = DefaultVariable
	}
	id, ok := os.LookupEnv(name)
	if !ok {
		return Of(time.Local), nil
	}
	if id == "" || id == "UTC" {
		return Of(time.UTC), nil
	}
	if loc, ok := locations.Load(id); ok {
		return Of(loc.(*time.Location)), nil
	}
	z, err := Load(id)
	if err != nil {
		return Zone{}, err
	}
	locations.Store(id, z.Location())
	return z, nil
}
