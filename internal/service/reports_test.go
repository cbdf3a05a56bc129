package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jarviz/jarvizbot/internal/model"
)

func TestPeriodStart(t *testing.T) {
	now := time.Date(2026, time.August, 29, 15, 4, 5, 0, time.UTC)

	today := PeriodStart(PeriodToday, now)
	require.NotNil(t, today)
	require.Equal(t, time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC), *today)

	week := PeriodStart(PeriodWeek, now)
	require.NotNil(t, week)
	require.Equal(t, time.Date(2026, time.August, 22, 0, 0, 0, 0, time.UTC), *week)

	firstOfMonth := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	month := PeriodStart(PeriodMonth, now)
	require.NotNil(t, month)
	require.Equal(t, firstOfMonth, *month)

	require.Nil(t, PeriodStart(PeriodAll, now))
	require.Nil(t, PeriodStart("  ALL ", now))

	// Unknown keywords fall back to the current month.
	unknown := PeriodStart("quarter", now)
	require.NotNil(t, unknown)
	require.Equal(t, firstOfMonth, *unknown)
}

func TestSummaryPassesPeriodBound(t *testing.T) {
	repo := &fakeRepo{summary: []model.CategoryTotal{{Category: "food", Total: 350}}}
	svc := NewReports(repo)

	rows, err := svc.Summary(context.Background(), 42, PeriodAll)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Nil(t, repo.lastSince)

	_, err = svc.Summary(context.Background(), 42, PeriodWeek)
	require.NoError(t, err)
	require.NotNil(t, repo.lastSince)
}

func TestSummaryPropagatesError(t *testing.T) {
	want := errors.New("boom")
	repo := &fakeRepo{err: want}
	svc := NewReports(repo)

	_, err := svc.Summary(context.Background(), 42, PeriodMonth)
	require.ErrorIs(t, err, want)
}

func TestStats(t *testing.T) {
	repo := &fakeRepo{stats: model.Stats{Transactions: 128, Users: 7}}
	svc := NewReports(repo)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(128), stats.Transactions)
	require.Equal(t, int64(7), stats.Users)
}

func TestFormatSummary(t *testing.T) {
	rows := []model.CategoryTotal{
		{Category: "food", Total: 350},
		{Category: "travel", Total: 120.5},
	}
	require.Equal(t, "Summary:\nfood : 350.00\ntravel : 120.50", FormatSummary(rows))
	require.Equal(t, "Summary:", FormatSummary(nil))
}
