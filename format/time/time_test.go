package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFormatToTimeLayout(t *testing.T) {
	var testCases = []struct {
		description string
		format      string
		expect      string
	}{
		{description: "date", format: "YYYY-MM-DD", expect: "2006-01-02"},
		{description: "date time with millis and offset", format: "YYYY-MM-DDThh:mm:ss.SSS+hh:mm", expect: "2006-01-02T15:04:05.000Z07:00"},
		{description: "lower case date", format: "yyyy/dd/MM", expect: "2006/02/01"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, DateFormatToTimeLayout(testCase.format), testCase.description)
	}
}

func TestParse(t *testing.T) {
	loc := time.FixedZone("+01:00", 3600)
	var testCases = []struct {
		description  string
		layout       string
		input        string
		expect       string
		expectOffset int
	}{
		{
			description:  "iso time in location",
			layout:       "2006-01-02 15:04:05",
			input:        "2023-01-02 01:22:19",
			expect:       "2023-01-02T01:22:19+01:00",
			expectOffset: 3600,
		},
		{
			description:  "rfc time with T",
			layout:       "2006-01-02 15:04:05",
			input:        "2023-01-02T01:22:19",
			expect:       "2023-01-02T01:22:19+01:00",
			expectOffset: 3600,
		},
		{
			description:  "date prefix",
			layout:       "2006-01-02 15:04:05",
			input:        "2023-01-02",
			expect:       "2023-01-02T00:00:00+01:00",
			expectOffset: 3600,
		},
		{
			description:  "explicit offset",
			input:        "2023-01-02T01:22:19-02:00",
			expect:       "2023-01-02T01:22:19-02:00",
			expectOffset: -7200,
		},
	}

	for _, testCase := range testCases {
		ts, err := Parse(testCase.layout, testCase.input, loc)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, ts.Format(time.RFC3339), testCase.description)
		_, offset := ts.Zone()
		assert.Equal(t, testCase.expectOffset, offset, testCase.description)
	}
	assert.True(t, HasZone(time.RFC3339))
	assert.False(t, HasZone("2006-01-02 15:04:05"))
}
