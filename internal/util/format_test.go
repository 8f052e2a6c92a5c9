package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Aug 29, 2026", FormatDate("2026-08-29"))
	assert.Equal(t, "Unknown", FormatDate(""))
	assert.Equal(t, "Unknown", FormatDate("   "))
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
}

func TestFormatDateHuman(t *testing.T) {
	iso := func(daysAgo int) string {
		return time.Now().AddDate(0, 0, -daysAgo).Format("2006-01-02")
	}

	assert.Equal(t, "Today", FormatDateHuman(iso(0)))
	assert.Equal(t, "Yesterday", FormatDateHuman(iso(1)))
	assert.Equal(t, "3d ago", FormatDateHuman(iso(3)))
	assert.Equal(t, "Unknown", FormatDateHuman(""))
	assert.Equal(t, "Jan 15 '24", FormatDateHuman("2024-01-15"))
}

func TestParseDateInput(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2026-08-29", "2026-08-29"},
		{"August 29, 2026", "2026-08-29"},
		{"Aug 29, 2026", "2026-08-29"},
		{"8/29/2026", "2026-08-29"},
		{"08/29/2026", "2026-08-29"},
		{"  2026-08-29  ", "2026-08-29"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		got, err := ParseDateInput(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}

	_, err := ParseDateInput("next tuesday")
	assert.Error(t, err)
}

func TestParseDateInputRoundTripsFormatDate(t *testing.T) {
	got, err := ParseDateInput(FormatDate("2026-08-29"))
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", got)
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "meal", Pluralize(1, "meal", "meals"))
	assert.Equal(t, "meals", Pluralize(0, "meal", "meals"))
	assert.Equal(t, "meals", Pluralize(2, "meal", "meals"))
}

func TestFormatOptional(t *testing.T) {
	assert.Equal(t, "—", FormatOptional(nil))
	v := "vegetarian"
	assert.Equal(t, "vegetarian", FormatOptional(&v))

	assert.Equal(t, "", OptionalOrEmpty(nil))
	assert.Equal(t, "vegetarian", OptionalOrEmpty(&v))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "long te...", TruncateString("long text value", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
	assert.Equal(t, "räksmörgås", TruncateString("räksmörgås", 10))
}
