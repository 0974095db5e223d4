package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	tt := []struct {
		input string
		want  TimeOfDay
	}{
		{"0:00", 0},
		{"00:00", 0},
		{"9:05", 9*60 + 5},
		{"09:30", 9*60 + 30},
		{"10:00", 600},
		{"23:59", 23*60 + 59},
	}
	for _, tc := range tt {
		got, err := ParseTimeOfDay(tc.input)
		assert.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestParseTimeOfDayRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{
		"", "1000", "10", "10:", ":30", "10:5", "24:00", "10:60",
		"10:00:00", "ab:cd", "-1:30", "10-00", " 10:00",
	} {
		_, err := ParseTimeOfDay(input)
		assert.Error(t, err, input)
	}
}

func TestTimeOfDayAddHours(t *testing.T) {
	ten, _ := ParseTimeOfDay("10:00")

	assert.Equal(t, TimeOfDay(11*60), ten.AddHours(1))
	assert.Equal(t, TimeOfDay(12*60+30), ten.AddHours(2.5))
	assert.Equal(t, ten, ten.AddHours(0))

	// Past-midnight additions stay on the same reference day, unwrapped.
	late, _ := ParseTimeOfDay("23:00")
	assert.Equal(t, TimeOfDay(25*60), late.AddHours(2))
}

func TestTimeOfDayString(t *testing.T) {
	tt := []struct {
		input TimeOfDay
		want  string
	}{
		{0, "00:00"},
		{9*60 + 5, "09:05"},
		{23*60 + 59, "23:59"},
	}
	for _, tc := range tt {
		assert.Equal(t, tc.want, tc.input.String())
	}
}
