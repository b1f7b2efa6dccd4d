package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/nutritionlabel/internal/catalog"
	"github.com/jask/nutritionlabel/internal/database/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))

	cat, err := catalog.Default()
	require.NoError(t, err)
	require.NoError(t, SeedFeatures(context.Background(), db, cat))
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
}

func TestSeedFeaturesMirrorsCatalogOrder(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	cat, err := catalog.Default()
	require.NoError(t, err)
	require.NoError(t, SeedFeatures(ctx, db, cat))

	rows, err := repository.NewFeatureRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, cat.Len())
	for i, f := range cat.All() {
		require.Equal(t, string(f.ID), rows[i].ID)
		require.Equal(t, f.Name, rows[i].Name)
	}
}

func TestRecentVisitsAreDistinctAndNewestFirst(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	visits := repository.NewVisitRepo(db)
	now := Now()

	for i, id := range []catalog.FeatureID{catalog.VoiceOver, catalog.Captions, catalog.VoiceOver, catalog.LargerText} {
		_, err := visits.Record(ctx, string(id), now.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
	}

	recent, err := visits.Recent(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, []string{"larger-text", "voiceover", "captions"}, recent)

	recent, err = visits.Recent(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"larger-text", "voiceover"}, recent)

	n, err := visits.Count(ctx, string(catalog.VoiceOver))
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestVisitRejectsUnknownFeature(t *testing.T) {
	db := openTestDB(t)
	_, err := repository.NewVisitRepo(db).Record(context.Background(), "telepathy", Now())
	require.Error(t, err)
}

func TestPruneDropsOldVisits(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	visits := repository.NewVisitRepo(db)
	now := Now()

	_, err := visits.Record(ctx, string(catalog.Captions), now.Add(-48*time.Hour))
	require.NoError(t, err)
	_, err = visits.Record(ctx, string(catalog.VoiceOver), now)
	require.NoError(t, err)

	n, err := visits.Prune(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	recent, err := visits.Recent(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, []string{"voiceover"}, recent)
}

func TestFavoritesToggle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	favs := repository.NewFavoriteRepo(db)
	now := Now()

	require.NoError(t, favs.Set(ctx, string(catalog.ReducedMotion), true, now))
	require.NoError(t, favs.Set(ctx, string(catalog.ReducedMotion), true, now.Add(time.Second)))
	require.NoError(t, favs.Set(ctx, string(catalog.Captions), true, now.Add(2*time.Second)))

	list, err := favs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "reduced-motion", list[0].FeatureID)
	require.True(t, list[0].CreatedAt.Equal(now))

	require.NoError(t, favs.Set(ctx, string(catalog.ReducedMotion), false, now))
	list, err = favs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "captions", list[0].FeatureID)
}

func TestResetHistoryKeepsFeatures(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	visits := repository.NewVisitRepo(db)
	favs := repository.NewFavoriteRepo(db)
	_, err := visits.Record(ctx, string(catalog.VoiceOver), Now())
	require.NoError(t, err)
	require.NoError(t, favs.Set(ctx, string(catalog.Captions), true, Now()))

	require.NoError(t, ResetHistory(ctx, db))

	n, err := visits.Count(ctx, string(catalog.VoiceOver))
	require.NoError(t, err)
	require.Zero(t, n)
	list, err := favs.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
	rows, err := repository.NewFeatureRepo(db).List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	require.Error(t, ResetHistory(ctx, nil))
}
