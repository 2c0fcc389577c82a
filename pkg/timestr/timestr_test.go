package timestr

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:00", 720},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := ToMinutes(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestToMinutesMalformed(t *testing.T) {
	for _, in := range []string{"", "9:00", "24:00", "12:60", "ab:cd", "12-30", "12:300"} {
		_, err := ToMinutes(in)
		assert.ErrorIs(t, err, ErrMalformedTime, in)
	}
}

func TestDisplay12h(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "12:00am"},
		{30, "12:30am"},
		{540, "9:00am"},
		{720, "12:00pm"},
		{750, "12:30pm"},
		{810, "1:30pm"},
		{1439, "11:59pm"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Display12h(tt.in))
	}
}

func TestParseDisplay12h(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"12:00am", 0},
		{"9:00am", 540},
		{"12:00pm", 720},
		{"1:30pm", 810},
		{"11:59PM", 1439},
	}

	for _, tt := range tests {
		got, err := ParseDisplay12h(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseDisplay12hMalformed(t *testing.T) {
	for _, in := range []string{"", "9:00", "13:00pm", "0:30am", "9:60am", "morning"} {
		_, err := ParseDisplay12h(in)
		assert.ErrorIs(t, err, ErrMalformedTime, in)
	}
}

func TestParseDisplay12hRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m += 17 {
		got, err := ParseDisplay12h(Display12h(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

// Regression: a 9:00am slot must sort before 10:00am even though the
// display strings compare the other way around lexicographically.
func TestChronologicalNotLexicographic(t *testing.T) {
	minutes := []int{600, 540} // 10:00am, 9:00am
	sort.Ints(minutes)

	require.Equal(t, []int{540, 600}, minutes)
	assert.Equal(t, "9:00am", Display12h(minutes[0]))
	assert.Equal(t, "10:00am", Display12h(minutes[1]))
	assert.True(t, Display12h(minutes[1]) < Display12h(minutes[0]),
		"display strings are expected to mis-sort lexicographically")
}

func TestTimeStringComparisons(t *testing.T) {
	a, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	b, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)

	assert.True(t, a.IsBefore(b))
	assert.False(t, a.IsAfter(b))
	assert.True(t, b.IsAfter(a))

	shifted, err := a.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "10:30", shifted.String())

	_, err = b.AddMinutes(14 * 60)
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}
