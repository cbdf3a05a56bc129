package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/jarviz/jarvizbot/internal/model"
)

func TestAddFillsDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewTransactions(repo, validator.New())

	tx := &model.Transaction{
		UserID:   42,
		Category: "  Food ",
		Amount:   120.5,
		Tags:     []string{" lunch ", "", "office"},
	}
	id, err := svc.Add(context.Background(), tx)
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	require.Equal(t, int64(1), tx.ID)

	require.Len(t, repo.inserted, 1)
	got := repo.inserted[0]
	require.Equal(t, "food", got.Category)
	require.Equal(t, "INR", got.Currency)
	require.Equal(t, []string{"lunch", "office"}, got.Tags)
	require.False(t, got.Date.IsZero())
	require.Equal(t, time.UTC, got.Date.Location())
}

func TestAddKeepsExplicitValues(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewTransactions(repo, validator.New())

	date := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	tx := &model.Transaction{
		UserID:   42,
		Category: "travel",
		Amount:   900,
		Currency: "USD",
		Date:     date,
	}
	_, err := svc.Add(context.Background(), tx)
	require.NoError(t, err)
	require.Equal(t, "USD", repo.inserted[0].Currency)
	require.Equal(t, date, repo.inserted[0].Date)
}

func TestAddRejectsInvalid(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewTransactions(repo, validator.New())

	cases := map[string]*model.Transaction{
		"nil":             nil,
		"missing user":    {Category: "food", Amount: 10},
		"empty category":  {UserID: 1, Category: "   ", Amount: 10},
		"zero amount":     {UserID: 1, Category: "food"},
		"negative amount": {UserID: 1, Category: "food", Amount: -5},
	}
	for name, tx := range cases {
		_, err := svc.Add(context.Background(), tx)
		require.Error(t, err, name)
	}
	require.Empty(t, repo.inserted)
}

func TestAddPropagatesRepoError(t *testing.T) {
	want := errors.New("boom")
	repo := &fakeRepo{insertErr: want}
	svc := NewTransactions(repo, validator.New())

	_, err := svc.Add(context.Background(), &model.Transaction{UserID: 1, Category: "food", Amount: 10})
	require.ErrorIs(t, err, want)
}

func TestRecentDefaultsLimit(t *testing.T) {
	repo := &fakeRepo{recent: []model.Transaction{{ID: 7}}}
	svc := NewTransactions(repo, validator.New())

	rows, err := svc.Recent(context.Background(), 42, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 10, repo.lastLimit)

	_, err = svc.Recent(context.Background(), 42, 3)
	require.NoError(t, err)
	require.Equal(t, 3, repo.lastLimit)
}
