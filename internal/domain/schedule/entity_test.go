package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("22:30")
	require.NoError(t, err)
	assert.Equal(t, 22, got.Hour())
	assert.Equal(t, 30, got.Minute())

	got, err = ParseTimeOfDay("06:15:42")
	require.NoError(t, err)
	assert.Equal(t, 42, got.Second())

	_, err = ParseTimeOfDay("late")
	assert.Error(t, err)
}

func TestShift_IsOvernight(t *testing.T) {
	cases := []struct {
		start string
		want  bool
	}{
		{"08:00", false},
		{"11:59:59", false},
		{"12:00", true},
		{"22:00:00", true},
		{"", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Shift{StartTime: c.start}.IsOvernight(), "start %q", c.start)
	}
}
