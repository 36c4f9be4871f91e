package caltime

import (
	"strconv"
	"strings"
	"time"

	"github.com/viant/caltime/zone"
)

// Field represents calendar field
type Field int

const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
	Second
	Millisecond
	//Timezone offset in minutes
	Timezone

	fieldCount = int(Timezone) + 1
)

// MaxOffsetMinutes is the largest supported zone offset (14:00)
const MaxOffsetMinutes = zone.MaxOffsetMinutes

var fieldNames = [fieldCount]string{"Year", "Month", "Day", "Hour", "Minute", "Second", "Millisecond", "Timezone"}

var fieldKeys = [fieldCount]string{"year", "month", "day", "hour", "minute", "second", "millisecond", "timezone"}

var fieldRanges = [fieldCount][2]int{
	Month:       {1, 12},
	Day:         {1, 31},
	Hour:        {0, 23},
	Minute:      {0, 59},
	Second:      {0, 59},
	Millisecond: {0, 999},
	Timezone:    {-MaxOffsetMinutes, MaxOffsetMinutes},
}

// Fields lists all fields in canonical order
var Fields = []Field{Year, Month, Day, Hour, Minute, Second, Millisecond, Timezone}

// MandatoryFields lists fields required to derive an instant
var MandatoryFields = []Field{Year, Month, Day, Hour, Minute}

func (f Field) String() string {
	if !f.valid() {
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// Key returns field wire key
func (f Field) Key() string {
	if !f.valid() {
		return ""
	}
	return fieldKeys[f]
}

// IsMandatory returns true for fields required to build a timestamp
func (f Field) IsMandatory() bool {
	return f >= Year && f <= Minute
}

// Check validates a value against the field domain
func (f Field) Check(value int) error {
	if !f.valid() {
		return &FieldError{Field: f, Value: value, Reason: "unknown field"}
	}
	if f == Year {
		return nil
	}
	bounds := fieldRanges[f]
	if value < bounds[0] || value > bounds[1] {
		return &FieldError{Field: f, Value: value, Reason: "expected " + strconv.Itoa(bounds[0]) + ".." + strconv.Itoa(bounds[1])}
	}
	return nil
}

func (f Field) valid() bool {
	return f >= Year && f <= Timezone
}

// FieldByName returns field for a name or wire key, case insensitive
func FieldByName(name string) (Field, bool) {
	for i, candidate := range fieldNames {
		if strings.EqualFold(candidate, name) {
			return Field(i), true
		}
	}
	return 0, false
}

func checkDay(year, month, day int) error {
	if last := daysIn(year, month); day > last {
		return &FieldError{Field: Day, Value: day, Reason: "expected 1.." + strconv.Itoa(last) + " for " + time.Month(month).String() + " " + strconv.Itoa(year)}
	}
	return nil
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
