package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain", input: "10:00", want: "10:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "with seconds", input: "10:30:00", want: "10:30"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "banana", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start TimeString
		delta int
		want  TimeString
	}{
		{name: "within day", start: "10:00", delta: 120, want: "12:00"},
		{name: "one hour buffer", start: "14:00", delta: 60, want: "15:00"},
		{name: "wraps past midnight", start: "23:00", delta: 60, want: "00:00"},
		{name: "wraps with minutes kept", start: "23:30", delta: 60, want: "00:30"},
		{name: "multi day wrap", start: "22:00", delta: 4 * 60, want: "02:00"},
		{name: "zero delta", start: "08:15", delta: 0, want: "08:15"},
		{name: "negative delta wraps back", start: "00:30", delta: -60, want: "23:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.delta)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes_Invalid(t *testing.T) {
	_, err := TimeString("not-a-time").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))

	// Fixed-width format keeps lexicographic and numeric order aligned.
	assert.True(t, TimeString("02:00").IsBefore("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("07:45")))
	assert.Equal(t, TimeString("07:45"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 1, 18, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 1, 2, 9, 7, 59, 0, time.UTC))
	assert.Equal(t, TimeString("09:07"), ts)
}
