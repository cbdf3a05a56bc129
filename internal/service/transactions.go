package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"log/slog"

	"github.com/jarviz/jarvizbot/core/logger"
	"github.com/jarviz/jarvizbot/internal/model"
	"github.com/jarviz/jarvizbot/internal/storage"
)

const defaultCurrency = "INR"

// Transactions records expense entries after validating and normalizing them.
type Transactions struct {
	repo     storage.Transactions
	validate *validator.Validate
}

// NewTransactions builds the service around a repository.
func NewTransactions(repo storage.Transactions, validate *validator.Validate) *Transactions {
	return &Transactions{
		repo:     repo,
		validate: validate,
	}
}

// Add validates the transaction, fills defaults, and persists it.
func (s *Transactions) Add(ctx context.Context, tx *model.Transaction) (int64, error) {
	if tx == nil {
		return 0, fmt.Errorf("service: nil transaction")
	}
	tx.Category = strings.ToLower(strings.TrimSpace(tx.Category))
	if tx.Currency == "" {
		tx.Currency = defaultCurrency
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now().UTC().Truncate(24 * time.Hour)
	}
	tx.Tags = NormalizeTags(tx.Tags)

	if err := s.validate.StructCtx(ctx, tx); err != nil {
		return 0, fmt.Errorf("service: invalid transaction: %w", err)
	}

	start := time.Now()
	id, err := s.repo.Insert(ctx, tx)
	if err != nil {
		logger.SVCTransactions.Error("add failed",
			slog.String("event", "tx.add"),
			slog.Int64("user_id", tx.UserID),
			slog.String("category", tx.Category),
			slog.String("err", err.Error()),
		)
		return 0, err
	}
	tx.ID = id

	logger.SVCTransactions.Info("transaction added",
		slog.String("event", "tx.add"),
		slog.String("status", "ok"),
		slog.Int64("user_id", tx.UserID),
		slog.Int64("tx_id", id),
		slog.String("category", tx.Category),
		slog.Float64("amount", tx.Amount),
		slog.String("currency", tx.Currency),
		slog.Duration("duration", logger.Took(start)),
	)
	return id, nil
}

// Recent returns up to limit latest transactions for the user.
func (s *Transactions) Recent(ctx context.Context, userID int64, limit int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.repo.Recent(ctx, userID, limit)
	if err != nil {
		logger.SVCTransactions.Error("recent failed",
			slog.String("event", "tx.recent"),
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	logger.SVCTransactions.Debug("recent fetched",
		slog.String("event", "tx.recent"),
		slog.Int64("user_id", userID),
		slog.Int("rows", len(rows)),
		slog.Int("limit", limit),
	)
	return rows, nil
}

// NormalizeTags trims entries and drops empty ones, returning nil for an empty set.
func NormalizeTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SplitTags parses a comma-separated tag string into normalized tags.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return NormalizeTags(strings.Split(raw, ","))
}
