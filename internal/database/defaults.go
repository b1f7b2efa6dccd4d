package database

import (
	"context"
	"database/sql"

	"github.com/jask/nutritionlabel/internal/catalog"
	"github.com/jask/nutritionlabel/internal/database/repository"
)

// SeedFeatures mirrors the catalog into the features table so visits and
// favorites can reference it. It is idempotent and safe to run on every startup.
func SeedFeatures(ctx context.Context, db *sql.DB, cat *catalog.Catalog) error {
	repo := repository.NewFeatureRepo(db)
	return WithTx(db, func(tx *sql.Tx) error {
		for idx, f := range cat.All() {
			row := repository.FeatureRow{ID: string(f.ID), Name: f.Name, SortOrder: idx}
			if err := repo.UpsertTx(ctx, tx, row); err != nil {
				return err
			}
		}
		return nil
	})
}
