package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jarviz/jarvizbot/internal/model"
)

func TestCSVRendersRows(t *testing.T) {
	desc := `taxi, airport "pickup"`
	repo := &fakeRepo{export: []model.ExportRow{
		{
			ID:       1,
			Date:     time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC),
			Category: "food",
			Amount:   120.5,
			Currency: "INR",
		},
		{
			ID:          2,
			Date:        time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC),
			Category:    "travel",
			Amount:      900,
			Currency:    "INR",
			Description: &desc,
		},
	}}
	svc := NewExport(repo)

	data, count, err := svc.CSV(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	want := "id,date,category,amount,currency,description\n" +
		"1,2026-08-28,food,120.5,INR,\n" +
		"2,2026-08-29,travel,900,INR,\"taxi, airport \"\"pickup\"\"\"\n"
	require.Equal(t, want, string(data))
}

func TestCSVEmptyHistory(t *testing.T) {
	svc := NewExport(&fakeRepo{})

	data, count, err := svc.CSV(context.Background(), 42)
	require.NoError(t, err)
	require.Zero(t, count)
	require.Nil(t, data)
}

func TestCSVPropagatesError(t *testing.T) {
	want := errors.New("boom")
	svc := NewExport(&fakeRepo{err: want})

	_, _, err := svc.CSV(context.Background(), 42)
	require.ErrorIs(t, err, want)
}
