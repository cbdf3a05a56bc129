package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

func TestParseAmount(t *testing.T) {
	for input, want := range map[string]float64{
		"125":       125,
		"125.50":    125.5,
		"1,250":     1250,
		"₹ 99.90":   99.9,
		"  42.0  ":  42,
		"Rs 1,000":  1000,
	} {
		got, err := ParseAmount(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "abc", "-15", "0"} {
		_, err := ParseAmount(input)
		require.ErrorIs(t, err, ErrBadAmount, input)
	}
}

func TestParseDateKeywords(t *testing.T) {
	today, err := ParseDate("today", testNow)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), today)

	yesterday, err := ParseDate("Yesterday", testNow)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), yesterday)

	empty, err := ParseDate("  ", testNow)
	require.NoError(t, err)
	require.Equal(t, today, empty)
}

func TestParseDateLayouts(t *testing.T) {
	d, err := ParseDate("2025-11-13", testNow)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("13.11.2025", testNow)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("not a date", testNow)
	require.Error(t, err)
}

func TestParseQuick(t *testing.T) {
	entry, err := ParseQuick(`food 125.50 2025-11-13 --desc "lunch with team"`, testNow)
	require.NoError(t, err)
	require.Equal(t, "food", entry.Category)
	require.Equal(t, 125.5, entry.Amount)
	require.Equal(t, time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC), entry.Date)
	require.Equal(t, "lunch with team", entry.Description)
}

func TestParseQuickDefaultsToToday(t *testing.T) {
	entry, err := ParseQuick("petrol 1,000 some free text", testNow)
	require.NoError(t, err)
	require.Equal(t, "petrol", entry.Category)
	require.Equal(t, float64(1000), entry.Amount)
	require.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), entry.Date)
	require.Empty(t, entry.Description)
}

func TestParseQuickRejectsMalformed(t *testing.T) {
	for _, payload := range []string{"", "food", "food abc", "125 food"} {
		_, err := ParseQuick(payload, testNow)
		require.Error(t, err, payload)
	}
}

func TestSplitTags(t *testing.T) {
	require.Equal(t, []string{"work", "travel"}, SplitTags(" work , travel ,"))
	require.Nil(t, SplitTags("  "))
}
