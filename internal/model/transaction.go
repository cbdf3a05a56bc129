package model

import "time"

// Transaction is a single expense or income record owned by a Telegram user.
type Transaction struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id" validate:"required"`
	Category    string    `db:"category" validate:"required,max=64"`
	Amount      float64   `db:"amount" validate:"required,gt=0"`
	Currency    string    `db:"currency"`
	Date        time.Time `db:"date"`
	Description *string   `db:"description"`
	Tags        []string  `db:"-"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// CategoryTotal is one row of a per-category summary.
type CategoryTotal struct {
	Category string  `db:"category"`
	Total    float64 `db:"total"`
}

// Stats summarizes table-wide usage for the admin command.
type Stats struct {
	Transactions int64 `db:"transactions"`
	Users        int64 `db:"users"`
}

// ExportRow is the flat projection written to CSV exports.
type ExportRow struct {
	ID          int64     `db:"id"`
	Date        time.Time `db:"date"`
	Category    string    `db:"category"`
	Amount      float64   `db:"amount"`
	Currency    string    `db:"currency"`
	Description *string   `db:"description"`
}
