package respond

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateWithDay(t *testing.T) {
	t.Run("date only", func(t *testing.T) {
		info, err := FormatDateWithDay("2026-08-31")
		require.NoError(t, err)
		assert.Equal(t, "2026-08-31", info.Date)
		assert.Equal(t, "Monday", info.DayOfWeek)
		assert.Equal(t, "2026-08-31T00:00:00", info.Datetime)
		assert.Contains(t, info.Formatted, "Monday, August 31, 2026")
	})

	t.Run("datetime", func(t *testing.T) {
		info, err := FormatDateWithDay("2026-08-30T07:15:00")
		require.NoError(t, err)
		assert.Equal(t, "Sunday", info.DayOfWeek)
		assert.Equal(t, "2026-08-30", info.Date)
	})

	t.Run("rfc3339 with zone", func(t *testing.T) {
		info, err := FormatDateWithDay("2026-08-30T07:15:00Z")
		require.NoError(t, err)
		assert.Equal(t, "Sunday", info.DayOfWeek)
	})

	t.Run("already formatted output is rejected", func(t *testing.T) {
		info, err := FormatDateWithDay("2026-08-31")
		require.NoError(t, err)

		// feeding the helper its own output errors instead of re-formatting
		_, err = FormatDateWithDay(info.Formatted)
		require.Error(t, err)
		_, err = FormatDateWithDay(info.DayOfWeek)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		for _, bad := range []string{"", "tomorrow", "31/08/2026", "2026-13-40"} {
			_, err := FormatDateWithDay(bad)
			assert.Error(t, err, "input %q", bad)
		}
	})
}

func TestParseStartDateLocal(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2026-03-01", want: "2026-03-01T00:00:00"},
		{in: "2026-03-01T15:00", want: "2026-03-01T15:00:00"},
		{in: "2026-03-01T15:00:30", want: "2026-03-01T15:00:30"},
		{in: "01.03.2026", wantErr: true},
		{in: "2026-03-01T25:00", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseStartDateLocal(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}
