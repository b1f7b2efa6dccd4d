package database

import (
	"context"
	"database/sql"
	"fmt"
)

// ResetHistory deletes every visit and favorite. The feature table and the
// schema stay so the app can keep running.
func ResetHistory(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("reset history: db not configured")
	}
	if err := WithTx(db, func(tx *sql.Tx) error {
		for _, t := range []string{"favorites", "visits"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = db.ExecContext(ctx, "VACUUM")
	return nil
}
