package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jarviz/jarvizbot/core/logger"
	"github.com/jarviz/jarvizbot/internal/model"
)

func TestMain(m *testing.M) {
	if err := logger.InitLogger(nil); err != nil {
		os.Exit(1)
	}
	code := m.Run()
	_ = logger.Shutdown()
	os.Exit(code)
}

// fakeRepo records calls and serves canned rows for service tests.
type fakeRepo struct {
	inserted  []model.Transaction
	nextID    int64
	insertErr error

	recent  []model.Transaction
	summary []model.CategoryTotal
	export  []model.ExportRow
	stats   model.Stats
	err     error

	lastSince *time.Time
	lastLimit int
}

func (f *fakeRepo) Insert(_ context.Context, tx *model.Transaction) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted = append(f.inserted, *tx)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeRepo) Recent(_ context.Context, _ int64, limit int) ([]model.Transaction, error) {
	f.lastLimit = limit
	return f.recent, f.err
}

func (f *fakeRepo) SummaryByCategory(_ context.Context, _ int64, since *time.Time) ([]model.CategoryTotal, error) {
	f.lastSince = since
	return f.summary, f.err
}

func (f *fakeRepo) All(_ context.Context, _ int64) ([]model.ExportRow, error) {
	return f.export, f.err
}

func (f *fakeRepo) Stats(_ context.Context) (model.Stats, error) {
	return f.stats, f.err
}
