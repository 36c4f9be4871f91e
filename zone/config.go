package zone

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config represents default zone configuration
type Config struct {
	// Timezone is the IANA zone used when a calendar omits its offset (e.g. "Europe/Warsaw").
	Timezone string `yaml:"timezone" json:"timezone"`
	// OffsetMinutes is a fixed offset used when Timezone is empty.
	OffsetMinutes *int `yaml:"offsetMinutes,omitempty" json:"offsetMinutes,omitempty"`
}

// Zone returns configured zone
func (c *Config) Zone() (Zone, error) {
	if c == nil {
		return Zone{}, ErrUnconfigured
	}
	if c.Timezone != "" {
		return Load(c.Timezone)
	}
	if c.OffsetMinutes != nil {
		offset := *c.OffsetMinutes
		if offset < -MaxOffsetMinutes || offset > MaxOffsetMinutes {
			return Zone{}, fmt.Errorf("invalid offsetMinutes %d: expected %d..%d", offset, -MaxOffsetMinutes, MaxOffsetMinutes)
		}
		return Fixed(offset), nil
	}
	return Zone{}, ErrUnconfigured
}

// ParseConfig parses YAML (or JSON) config
func ParseConfig(data []byte) (*Config, error) {
	ret := &Config{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to parse zone config: %w", err)
	}
	return ret, nil
}
