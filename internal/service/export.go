package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"log/slog"

	"github.com/jarviz/jarvizbot/core/logger"
	"github.com/jarviz/jarvizbot/internal/storage"
)

const exportDateLayout = "2006-01-02"

// Export renders a user's full transaction history as CSV.
type Export struct {
	repo storage.Transactions
}

// NewExport builds the export service.
func NewExport(repo storage.Transactions) *Export {
	return &Export{repo: repo}
}

// CSV returns the export document body and the number of data rows.
// A zero row count with nil error means the user has no transactions.
func (e *Export) CSV(ctx context.Context, userID int64) ([]byte, int, error) {
	rows, err := e.repo.All(ctx, userID)
	if err != nil {
		logger.SVCExport.Error("export failed",
			slog.String("event", "export.csv"),
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return nil, 0, err
	}
	if len(rows) == 0 {
		return nil, 0, nil
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"id", "date", "category", "amount", "currency", "description"}); err != nil {
		return nil, 0, fmt.Errorf("service: write csv header: %w", err)
	}
	for _, row := range rows {
		desc := ""
		if row.Description != nil {
			desc = *row.Description
		}
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.Date.Format(exportDateLayout),
			row.Category,
			strconv.FormatFloat(row.Amount, 'f', -1, 64),
			row.Currency,
			desc,
		}
		if err := w.Write(record); err != nil {
			return nil, 0, fmt.Errorf("service: write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, 0, fmt.Errorf("service: flush csv: %w", err)
	}

	logger.SVCExport.Info("export built",
		slog.String("event", "export.csv"),
		slog.String("status", "ok"),
		slog.Int64("user_id", userID),
		slog.Int("rows", len(rows)),
	)
	return buf.Bytes(), len(rows), nil
}
