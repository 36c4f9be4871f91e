package zone

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed(t *testing.T) {
	var testCases = []struct {
		description string
		minutes     int
		expectID    string
	}{
		{description: "west of UTC", minutes: -60, expectID: "-01:00"},
		{description: "east of UTC", minutes: 60, expectID: "+01:00"},
		{description: "half hour", minutes: 330, expectID: "+05:30"},
		{description: "utc", minutes: 0, expectID: "UTC"},
	}
	at := time.Date(2010, 1, 15, 1, 1, 1, 0, time.UTC)
	for _, testCase := range testCases {
		z := Fixed(testCase.minutes)
		assert.Equal(t, testCase.expectID, z.ID(), testCase.description)
		assert.Equal(t, testCase.minutes, z.OffsetAt(at), testCase.description)
	}
}

func TestZone_OffsetAt(t *testing.T) {
	z, err := Load("Europe/Warsaw")
	require.NoError(t, err)
	assert.Equal(t, 60, z.OffsetAt(time.Date(2010, 1, 15, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 120, z.OffsetAt(time.Date(2010, 7, 15, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, Zone{}.OffsetAt(time.Now()))
}

func TestLoad(t *testing.T) {
	_, err := Load("")
	assert.True(t, errors.Is(err, ErrUnconfigured))
	_, err = Load("Mars/Olympus_Mons")
	assert.True(t, errors.Is(err, ErrUnconfigured))
}

func TestSetting_Default(t *testing.T) {
	setting := &Setting{}
	_, err := setting.Default()
	assert.True(t, errors.Is(err, ErrUnconfigured))

	setting.Set(Fixed(60))
	z, err := setting.Default()
	require.NoError(t, err)
	assert.Equal(t, "+01:00", z.ID())

	setting.Set(Fixed(-120))
	z, err = setting.Default()
	require.NoError(t, err)
	assert.Equal(t, "-02:00", z.ID())

	setting.Clear()
	_, err = setting.Default()
	assert.True(t, errors.Is(err, ErrUnconfigured))
}

func TestEnvironment_Default(t *testing.T) {
	env := Environment{Variable: "CALTIME_TEST_TZ"}

	t.Setenv("CALTIME_TEST_TZ", "America/New_York")
	z, err := env.Default()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", z.ID())

	t.Setenv("CALTIME_TEST_TZ", "Asia/Tokyo")
	z, err = env.Default()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", z.ID())

	t.Setenv("CALTIME_TEST_TZ", "")
	z, err = env.Default()
	require.NoError(t, err)
	assert.Equal(t, "UTC", z.ID())

	t.Setenv("CALTIME_TEST_TZ", "Nowhere/Land")
	_, err = env.Default()
	assert.True(t, errors.Is(err, ErrUnconfigured))
}

func TestParseConfig(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expectID    string
		expectError bool
	}{
		{description: "iana zone", input: "timezone: Europe/Warsaw\n", expectID: "Europe/Warsaw"},
		{description: "fixed offset", input: "offsetMinutes: -60\n", expectID: "-01:00"},
		{description: "zone takes precedence", input: "timezone: Asia/Seoul\noffsetMinutes: 60\n", expectID: "Asia/Seoul"},
		{description: "empty", input: "{}", expectError: true},
		{description: "offset out of range", input: "offsetMinutes: 100000\n", expectError: true},
		{description: "largest offset", input: "offsetMinutes: -840\n", expectID: "-14:00"},
	}
	for _, testCase := range testCases {
		config, err := ParseConfig([]byte(testCase.input))
		require.NoError(t, err, testCase.description)
		setting := &Setting{}
		err = setting.Apply(config)
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			_, err = setting.Default()
			assert.True(t, errors.Is(err, ErrUnconfigured), testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		z, err := setting.Default()
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expectID, z.ID(), testCase.description)
	}
}
