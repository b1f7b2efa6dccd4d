package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// VisitRepo records which feature pages were opened.
type VisitRepo struct {
	db *sql.DB
}

func NewVisitRepo(db *sql.DB) *VisitRepo { return &VisitRepo{db: db} }

// Record appends a visit and returns it.
func (r *VisitRepo) Record(ctx context.Context, featureID string, at time.Time) (Visit, error) {
	v := Visit{ID: uuid.NewString(), FeatureID: featureID, VisitedAt: at.UTC()}
	_, err := r.db.ExecContext(ctx, `INSERT INTO visits(id, feature_id, visited_at) VALUES (?, ?, ?)`,
		v.ID, v.FeatureID, v.VisitedAt)
	if err != nil {
		return Visit{}, err
	}
	return v, nil
}

// Recent returns distinct feature ids, most recently visited first.
func (r *VisitRepo) Recent(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT feature_id FROM visits
	GROUP BY feature_id
	ORDER BY MAX(rowid) DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// Count returns how many times a feature was opened.
func (r *VisitRepo) Count(ctx context.Context, featureID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits WHERE feature_id = ?`, featureID).Scan(&n)
	return n, err
}

// Prune deletes visits older than before and reports how many went.
func (r *VisitRepo) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM visits WHERE visited_at < ?`, before.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
