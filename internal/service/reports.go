package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/jarviz/jarvizbot/core/logger"
	"github.com/jarviz/jarvizbot/internal/model"
	"github.com/jarviz/jarvizbot/internal/storage"
)

// Summary periods accepted by /summary.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

// Reports aggregates stored transactions into per-category summaries.
type Reports struct {
	repo storage.Transactions
}

// NewReports builds the report service.
func NewReports(repo storage.Transactions) *Reports {
	return &Reports{repo: repo}
}

// PeriodStart resolves a summary period keyword to its inclusive start date.
// A nil result means no lower bound. Unknown keywords fall back to month,
// matching the bot's historical behaviour.
func PeriodStart(period string, now time.Time) *time.Time {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	switch strings.ToLower(strings.TrimSpace(period)) {
	case PeriodToday:
		d := day(now)
		return &d
	case PeriodWeek:
		d := day(now.AddDate(0, 0, -7))
		return &d
	case PeriodAll:
		return nil
	default:
		d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return &d
	}
}

// Summary returns per-category totals for the requested period.
func (r *Reports) Summary(ctx context.Context, userID int64, period string) ([]model.CategoryTotal, error) {
	since := PeriodStart(period, time.Now().UTC())
	rows, err := r.repo.SummaryByCategory(ctx, userID, since)
	if err != nil {
		logger.SVCReports.Error("summary failed",
			slog.String("event", "report.summary"),
			slog.Int64("user_id", userID),
			slog.String("period", period),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	logger.SVCReports.Debug("summary built",
		slog.String("event", "report.summary"),
		slog.Int64("user_id", userID),
		slog.String("period", period),
		slog.Int("rows", len(rows)),
	)
	return rows, nil
}

// Stats returns table-wide usage counters for the admin command.
func (r *Reports) Stats(ctx context.Context) (model.Stats, error) {
	stats, err := r.repo.Stats(ctx)
	if err != nil {
		logger.SVCReports.Error("stats failed",
			slog.String("event", "report.stats"),
			slog.String("err", err.Error()),
		)
		return model.Stats{}, err
	}
	return stats, nil
}

// FormatSummary renders totals as the reply body for /summary.
func FormatSummary(rows []model.CategoryTotal) string {
	var b strings.Builder
	b.WriteString("Summary:")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("\n%s : %.2f", row.Category, row.Total))
	}
	return b.String()
}
