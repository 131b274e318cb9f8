package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFreeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1990-05-12", "1990-05-12"},
		{"May 12, 1990", "1990-05-12"},
		{"12 May 1990", "1990-05-12"},
		{"1990.05.12", "1990-05-12"},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, FormatISO(got), tc.in)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not a date")
	require.Error(t, err)
}

func TestAnniversary(t *testing.T) {
	orig, err := ParseISO("1990-05-12")
	require.NoError(t, err)
	require.Equal(t, "2026-05-12", FormatISO(Anniversary(orig, 2026)))

	// Feb 29 normalizes forward in non-leap years.
	leap, err := ParseISO("2000-02-29")
	require.NoError(t, err)
	require.Equal(t, "2025-03-01", FormatISO(Anniversary(leap, 2025)))
	require.Equal(t, "2028-02-29", FormatISO(Anniversary(leap, 2028)))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 7, DaysBetween(a, b))
	require.Equal(t, -7, DaysBetween(b, a))
	require.Equal(t, 0, DaysBetween(a, a))
}
