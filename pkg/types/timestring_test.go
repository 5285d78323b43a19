package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("invalid format", func(t *testing.T) {
		for _, s := range []string{"9:30am", "25:00", "12:61", "noon", ""} {
			_, err := NewTimeStringFromString(s)
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", s)
		}
	})
}

func TestTimeString_At(t *testing.T) {
	// Дата и время комбинируются в UTC, часовой пояс даты игнорируется
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	date := time.Date(2026, 3, 2, 23, 59, 0, 0, loc)

	got, err := TimeString("14:30").At(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within day", func(t *testing.T) {
		got, err := TimeString("10:00").AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, "11:30", got.String())
	})

	t.Run("past midnight", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(60)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})

	t.Run("before midnight", func(t *testing.T) {
		_, err := TimeString("00:30").AddMinutes(-60)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("17:00")))
	assert.False(t, TimeString("09:00").IsBefore(TimeString("09:00")))
	assert.True(t, TimeString("17:00").IsAfter(TimeString("09:00")))
}

func TestTimeString_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want string
	}{
		{"text column", "10:00", "10:00"},
		{"time column with seconds", "10:00:00", "10:00"},
		{"bytes", []byte("15:45"), "15:45"},
		{"time value", time.Date(2026, 3, 2, 8, 15, 0, 0, time.UTC), "08:15"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			require.NoError(t, ts.Scan(tt.src))
			assert.Equal(t, tt.want, ts.String())
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
