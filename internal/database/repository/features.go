package repository

import (
	"context"
	"database/sql"
)

// FeatureRepo handles the features table.
type FeatureRepo struct {
	db *sql.DB
}

func NewFeatureRepo(db *sql.DB) *FeatureRepo { return &FeatureRepo{db: db} }

func (r *FeatureRepo) UpsertTx(ctx context.Context, tx *sql.Tx, f FeatureRow) error {
	_, err := tx.ExecContext(ctx, `
	INSERT INTO features(id, name, sort_order) VALUES (?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET name=excluded.name, sort_order=excluded.sort_order;
	`, f.ID, f.Name, f.SortOrder)
	return err
}

func (r *FeatureRepo) List(ctx context.Context) ([]FeatureRow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, sort_order FROM features ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []FeatureRow
	for rows.Next() {
		var f FeatureRow
		if err := rows.Scan(&f.ID, &f.Name, &f.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
