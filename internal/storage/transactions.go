package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jarviz/jarvizbot/internal/model"
)

// Transactions is the persistence surface used by the services.
type Transactions interface {
	Insert(ctx context.Context, tx *model.Transaction) (int64, error)
	Recent(ctx context.Context, userID int64, limit int) ([]model.Transaction, error)
	SummaryByCategory(ctx context.Context, userID int64, since *time.Time) ([]model.CategoryTotal, error)
	All(ctx context.Context, userID int64) ([]model.ExportRow, error)
	Stats(ctx context.Context) (model.Stats, error)
}

// Postgres implements Transactions on top of a sqlx connection pool.
type Postgres struct {
	db *sqlx.DB
}

// NewPostgres wraps an established pool.
func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

// Insert stores a transaction and returns the generated id.
func (p *Postgres) Insert(ctx context.Context, tx *model.Transaction) (int64, error) {
	var tags any
	if len(tx.Tags) > 0 {
		raw, err := json.Marshal(tx.Tags)
		if err != nil {
			return 0, fmt.Errorf("storage: marshal tags: %w", err)
		}
		tags = raw
	}

	const query = `
		INSERT INTO transactions (user_id, category, amount, currency, date, description, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := p.db.QueryRowxContext(ctx, query,
		tx.UserID, tx.Category, tx.Amount, tx.Currency, tx.Date, tx.Description, tags,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("storage: insert transaction: %w", err)
	}
	return id, nil
}

// Recent returns the newest transactions for a user, most recent date first.
func (p *Postgres) Recent(ctx context.Context, userID int64, limit int) ([]model.Transaction, error) {
	const query = `
		SELECT id, user_id, category, amount, currency, date, description, created_at, updated_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
		LIMIT $2`

	var rows []model.Transaction
	if err := p.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("storage: select recent: %w", err)
	}
	return rows, nil
}

// SummaryByCategory sums amounts per category, optionally from a start date.
func (p *Postgres) SummaryByCategory(ctx context.Context, userID int64, since *time.Time) ([]model.CategoryTotal, error) {
	var (
		rows []model.CategoryTotal
		err  error
	)
	if since != nil {
		const query = `
			SELECT category, SUM(amount) AS total
			FROM transactions
			WHERE user_id = $1 AND date >= $2
			GROUP BY category
			ORDER BY total DESC`
		err = p.db.SelectContext(ctx, &rows, query, userID, *since)
	} else {
		const query = `
			SELECT category, SUM(amount) AS total
			FROM transactions
			WHERE user_id = $1
			GROUP BY category
			ORDER BY total DESC`
		err = p.db.SelectContext(ctx, &rows, query, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: select summary: %w", err)
	}
	return rows, nil
}

// All returns every transaction of a user in chronological order for export.
func (p *Postgres) All(ctx context.Context, userID int64) ([]model.ExportRow, error) {
	const query = `
		SELECT id, date, category, amount, currency, description
		FROM transactions
		WHERE user_id = $1
		ORDER BY date, id`

	var rows []model.ExportRow
	if err := p.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("storage: select export rows: %w", err)
	}
	return rows, nil
}

// Stats reports row and user counts across the whole table.
func (p *Postgres) Stats(ctx context.Context) (model.Stats, error) {
	const query = `
		SELECT COUNT(*) AS transactions, COUNT(DISTINCT user_id) AS users
		FROM transactions`

	var stats model.Stats
	if err := p.db.GetContext(ctx, &stats, query); err != nil {
		return model.Stats{}, fmt.Errorf("storage: select stats: %w", err)
	}
	return stats, nil
}
