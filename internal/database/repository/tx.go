package repository

import (
	"context"
	"database/sql"
	"time"
)

// withTx runs fn in a transaction, rolling back when fn fails.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// now returns UTC time truncated to seconds (consistent with SQLite default).
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
