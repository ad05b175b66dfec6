package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// StateRepo persists widget state.
type StateRepo struct {
	db *sql.DB
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// Save replaces the stored state of s.WidgetID.
func (r *StateRepo) Save(ctx context.Context, s WidgetState) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return saveTx(ctx, tx, s)
	})
}

func saveTx(ctx context.Context, tx *sql.Tx, s WidgetState) error {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now()
	}
	_, err := tx.ExecContext(ctx, `
	INSERT INTO widget_state(widget_id, kind, active_id, input, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(widget_id) DO UPDATE SET
	 kind=excluded.kind,
	 active_id=excluded.active_id,
	 input=excluded.input,
	 updated_at=excluded.updated_at;
	`, s.WidgetID, s.Kind, s.ActiveID, s.Input, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert widget state: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM widget_expanded WHERE widget_id = ?`, s.WidgetID); err != nil {
		return fmt.Errorf("clear expanded: %w", err)
	}
	for _, id := range s.ExpandedIDs {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO widget_expanded(widget_id, item_id) VALUES (?, ?)`, s.WidgetID, id); err != nil {
			return fmt.Errorf("insert expanded: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM widget_selected WHERE widget_id = ?`, s.WidgetID); err != nil {
		return fmt.Errorf("clear selected: %w", err)
	}
	for i, v := range s.Selected {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO widget_selected(widget_id, value, position) VALUES (?, ?, ?)`, s.WidgetID, v, i); err != nil {
			return fmt.Errorf("insert selected: %w", err)
		}
	}
	return nil
}

// Load returns the stored state or nil when the widget was never saved.
func (r *StateRepo) Load(ctx context.Context, widgetID string) (*WidgetState, error) {
	row := r.db.QueryRowContext(ctx, `SELECT widget_id, kind, active_id, input, updated_at FROM widget_state WHERE widget_id = ?`, widgetID)
	var s WidgetState
	if err := row.Scan(&s.WidgetID, &s.Kind, &s.ActiveID, &s.Input, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	var err error
	if s.ExpandedIDs, err = r.strings(ctx, `SELECT item_id FROM widget_expanded WHERE widget_id = ? ORDER BY item_id`, widgetID); err != nil {
		return nil, err
	}
	if s.Selected, err = r.strings(ctx, `SELECT value FROM widget_selected WHERE widget_id = ? ORDER BY position`, widgetID); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StateRepo) strings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Delete forgets a widget.
func (r *StateRepo) Delete(ctx context.Context, widgetID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM widget_state WHERE widget_id = ?`, widgetID)
	return err
}
