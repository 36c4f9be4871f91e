package caltime

import (
	"strconv"
	"strings"
)

// Calendar represents a calendar value where each field is independently set or undefined.
// Calendar is immutable, With and Without return modified copies.
type Calendar struct {
	values [fieldCount]int
	set    uint8
}

// CalendarOf returns calendar with year through millisecond set and undefined timezone
func CalendarOf(year, month, day, hour, minute, second, millisecond int) Calendar {
	ret := Calendar{values: [fieldCount]int{year, month, day, hour, minute, second, millisecond, 0}}
	for f := Year; f <= Millisecond; f++ {
		ret.set |= 1 << f
	}
	return ret
}

// Get returns field value and true if it was set
func (c Calendar) Get(field Field) (int, bool) {
	if !c.IsSet(field) {
		return 0, false
	}
	return c.values[field], true
}

// IsSet returns true if field has been set
func (c Calendar) IsSet(field Field) bool {
	if !field.valid() {
		return false
	}
	return c.set&(1<<field) != 0
}

// With returns a copy with the field set
func (c Calendar) With(field Field, value int) Calendar {
	if !field.valid() {
		return c
	}
	c.values[field] = value
	c.set |= 1 << field
	return c
}

// Without returns a copy with the field undefined
func (c Calendar) Without(field Field) Calendar {
	if !field.valid() {
		return c
	}
	c.values[field] = 0
	c.set &^= 1 << field
	return c
}

// Missing returns undefined fields out of the supplied ones
func (c Calendar) Missing(fields ...Field) []Field {
	var ret []Field
	for _, field := range fields {
		if !c.IsSet(field) {
			ret = append(ret, field)
		}
	}
	return ret
}

// IsEmpty returns true if no field was set
func (c Calendar) IsEmpty() bool {
	return c.set == 0
}

// Validate checks present fields, and the day against the month length when year, month and day are set
func (c Calendar) Validate() error {
	for _, field := range Fields {
		if value, ok := c.Get(field); ok {
			if err := field.Check(value); err != nil {
				return err
			}
		}
	}
	if len(c.Missing(Year, Month, Day)) == 0 {
		return checkDay(c.values[Year], c.values[Month], c.values[Day])
	}
	return nil
}

func (c Calendar) String() string {
	builder := strings.Builder{}
	builder.WriteByte('{')
	for _, field := range Fields {
		if builder.Len() > 1 {
			builder.WriteByte(' ')
		}
		builder.WriteString(field.Key())
		builder.WriteByte('=')
		if value, ok := c.Get(field); ok {
			builder.WriteString(strconv.Itoa(value))
		} else {
			builder.WriteString("undefined")
		}
	}
	builder.WriteByte('}')
	return builder.String()
}
