package caltime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendar_With(t *testing.T) {
	empty := Calendar{}
	assert.True(t, empty.IsEmpty())

	zero := empty.With(Second, 0)
	value, ok := zero.Get(Second)
	assert.True(t, ok)
	assert.Equal(t, 0, value)
	assert.NotEqual(t, empty, zero, "field set to 0 differs from undefined field")
	assert.True(t, empty.IsEmpty(), "With must not modify receiver")

	_, ok = zero.Get(Minute)
	assert.False(t, ok)

	assert.Equal(t, empty, zero.Without(Second))
	assert.Equal(t, zero, zero.With(Field(42), 1))
}

func TestCalendar_Missing(t *testing.T) {
	var testCases = []struct {
		description string
		calendar    Calendar
		expect      []Field
	}{
		{
			description: "all mandatory fields",
			calendar:    Calendar{}.With(Year, 1999).With(Month, 5).With(Day, 25).With(Hour, 23).With(Minute, 34),
		},
		{
			description: "missing minute",
			calendar:    Calendar{}.With(Year, 1999).With(Month, 5).With(Day, 25).With(Hour, 23),
			expect:      []Field{Minute},
		},
		{
			description: "month without year",
			calendar:    Calendar{}.With(Month, 5),
			expect:      []Field{Year, Day, Hour, Minute},
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.calendar.Missing(MandatoryFields...), testCase.description)
	}
}

func TestCalendar_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		calendar    Calendar
		expectField Field
		expectError bool
	}{
		{description: "valid", calendar: CalendarOf(2010, 1, 15, 1, 1, 1, 100).With(Timezone, -60)},
		{description: "partial", calendar: Calendar{}.With(Month, 2).With(Day, 30)},
		{description: "month 13", calendar: Calendar{}.With(Month, 13), expectError: true, expectField: Month},
		{description: "month 0", calendar: Calendar{}.With(Month, 0), expectError: true, expectField: Month},
		{description: "day 32", calendar: Calendar{}.With(Day, 32), expectError: true, expectField: Day},
		{description: "february 30", calendar: CalendarOf(2010, 2, 30, 0, 0, 0, 0), expectError: true, expectField: Day},
		{description: "leap day", calendar: CalendarOf(2012, 2, 29, 0, 0, 0, 0)},
		{description: "timezone", calendar: Calendar{}.With(Timezone, 15*60), expectError: true, expectField: Timezone},
		{description: "millisecond", calendar: Calendar{}.With(Millisecond, 1000), expectError: true, expectField: Millisecond},
	}
	for _, testCase := range testCases {
		err := testCase.calendar.Validate()
		if !testCase.expectError {
			assert.Nil(t, err, testCase.description)
			continue
		}
		assert.True(t, errors.Is(err, ErrInvalidField), testCase.description)
		fieldErr := &FieldError{}
		if assert.True(t, errors.As(err, &fieldErr), testCase.description) {
			assert.Equal(t, testCase.expectField, fieldErr.Field, testCase.description)
		}
	}
}

func TestCalendar_String(t *testing.T) {
	cal := Calendar{}.With(Year, 1999).With(Second, 0)
	assert.Equal(t, "{year=1999 month=undefined day=undefined hour=undefined minute=undefined second=0 millisecond=undefined timezone=undefined}", cal.String())
}

func TestCalendar_JSON(t *testing.T) {
	cal := CalendarOf(2010, 1, 15, 1, 1, 1, 100).With(Timezone, -60)
	data, err := cal.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"year":2010,"month":1,"day":15,"hour":1,"minute":1,"second":1,"millisecond":100,"timezone":-60}`, string(data))

	partial := Calendar{}.With(Year, 1999).With(Month, 5).With(Second, 0)
	data, err = partial.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"year":1999,"month":5,"second":0}`, string(data))

	var testCases = []struct {
		description string
		input       string
		expect      Calendar
		expectError bool
	}{
		{description: "full", input: `{"year":2010,"month":1,"day":15,"hour":1,"minute":1,"second":1,"millisecond":100,"timezone":-60}`, expect: cal},
		{description: "partial", input: `{"year":1999,"month":5,"second":0}`, expect: partial},
		{description: "null and unknown keys", input: `{"year":1999,"month":null,"label":"x"}`, expect: Calendar{}.With(Year, 1999)},
		{description: "invalid", input: `{"year":"x"}`, expectError: true},
	}
	for _, testCase := range testCases {
		actual := Calendar{}.With(Hour, 5)
		err := actual.UnmarshalJSON([]byte(testCase.input))
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}
