package repository

import (
	"context"
	"database/sql"
	"time"
)

// FavoriteRepo handles starred features.
type FavoriteRepo struct {
	db *sql.DB
}

func NewFavoriteRepo(db *sql.DB) *FavoriteRepo { return &FavoriteRepo{db: db} }

// Set stars or unstars a feature. Setting an existing state is a no-op.
func (r *FavoriteRepo) Set(ctx context.Context, featureID string, on bool, at time.Time) error {
	if !on {
		_, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE feature_id = ?`, featureID)
		return err
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO favorites(feature_id, created_at) VALUES (?, ?)
	ON CONFLICT(feature_id) DO NOTHING;
	`, featureID, at.UTC())
	return err
}

func (r *FavoriteRepo) List(ctx context.Context) ([]Favorite, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT feature_id, created_at FROM favorites ORDER BY created_at, feature_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.FeatureID, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
