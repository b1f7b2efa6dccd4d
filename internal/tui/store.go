package tui

import (
	"context"
	"database/sql"
	"time"

	"github.com/jask/nutritionlabel/internal/catalog"
	"github.com/jask/nutritionlabel/internal/database"
	"github.com/jask/nutritionlabel/internal/database/repository"
)

// Store persists the viewing history and favorites.
type Store interface {
	RecordVisit(ctx context.Context, id catalog.FeatureID) error
	Recent(ctx context.Context, limit int) ([]catalog.FeatureID, error)
	SetFavorite(ctx context.Context, id catalog.FeatureID, on bool) error
	Favorites(ctx context.Context) ([]catalog.FeatureID, error)
	Clear(ctx context.Context) error
}

// SQLStore is the sqlite-backed Store.
type SQLStore struct {
	db        *sql.DB
	visits    *repository.VisitRepo
	favorites *repository.FavoriteRepo
	now       func() time.Time
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{
		db:        db,
		visits:    repository.NewVisitRepo(db),
		favorites: repository.NewFavoriteRepo(db),
		now:       database.Now,
	}
}

func (s *SQLStore) RecordVisit(ctx context.Context, id catalog.FeatureID) error {
	_, err := s.visits.Record(ctx, string(id), s.now())
	return err
}

func (s *SQLStore) Recent(ctx context.Context, limit int) ([]catalog.FeatureID, error) {
	ids, err := s.visits.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.FeatureID, len(ids))
	for i, id := range ids {
		out[i] = catalog.FeatureID(id)
	}
	return out, nil
}

func (s *SQLStore) SetFavorite(ctx context.Context, id catalog.FeatureID, on bool) error {
	return s.favorites.Set(ctx, string(id), on, s.now())
}

func (s *SQLStore) Favorites(ctx context.Context) ([]catalog.FeatureID, error) {
	favs, err := s.favorites.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.FeatureID, len(favs))
	for i, f := range favs {
		out[i] = catalog.FeatureID(f.FeatureID)
	}
	return out, nil
}

// Clear deletes all visits and favorites.
func (s *SQLStore) Clear(ctx context.Context) error {
	return database.ResetHistory(ctx, s.db)
}
