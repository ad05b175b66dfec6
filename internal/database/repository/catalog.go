package repository

import (
	"context"
	"database/sql"
)

// CatalogRepo handles catalog entries.
type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) Upsert(ctx context.Context, e CatalogEntry) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO catalog(id, parent_id, text, disabled, sort_order)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 parent_id=excluded.parent_id,
	 text=excluded.text,
	 disabled=excluded.disabled,
	 sort_order=excluded.sort_order;
	`, e.ID, e.ParentID, e.Text, e.Disabled, e.SortOrder)
	return err
}

// List returns every entry in document order: parents before children,
// siblings by sort order then text.
func (r *CatalogRepo) List(ctx context.Context) ([]CatalogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, parent_id, text, disabled, sort_order FROM catalog ORDER BY sort_order, text`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var flat []CatalogEntry
	for rows.Next() {
		var e CatalogEntry
		if err := rows.Scan(&e.ID, &e.ParentID, &e.Text, &e.Disabled, &e.SortOrder); err != nil {
			return nil, err
		}
		flat = append(flat, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return documentOrder(flat), nil
}

// documentOrder lays siblings out depth first. Entries whose parent is
// missing are treated as top level.
func documentOrder(flat []CatalogEntry) []CatalogEntry {
	ids := make(map[string]bool, len(flat))
	for _, e := range flat {
		ids[e.ID] = true
	}
	children := map[string][]CatalogEntry{}
	for _, e := range flat {
		key := ""
		if e.ParentID != nil && ids[*e.ParentID] {
			key = *e.ParentID
		}
		children[key] = append(children[key], e)
	}
	out := make([]CatalogEntry, 0, len(flat))
	var walk func(id string)
	walk = func(id string) {
		for _, e := range children[id] {
			out = append(out, e)
			walk(e.ID)
		}
	}
	walk("")
	return out
}

// ByID returns the entry or nil when it does not exist.
func (r *CatalogRepo) ByID(ctx context.Context, id string) (*CatalogEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, parent_id, text, disabled, sort_order FROM catalog WHERE id = ?`, id)
	var e CatalogEntry
	if err := row.Scan(&e.ID, &e.ParentID, &e.Text, &e.Disabled, &e.SortOrder); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// SetDisabled flips one entry's disabled flag.
func (r *CatalogRepo) SetDisabled(ctx context.Context, id string, disabled bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE catalog SET disabled = ? WHERE id = ?`, disabled, id)
	return err
}

// Delete removes an entry and, through the foreign key, its subtree.
func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM catalog WHERE id = ?`, id)
	return err
}
