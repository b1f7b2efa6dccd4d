package repository

import "time"

// FeatureRow is the persisted copy of a catalog entry.
type FeatureRow struct {
	ID        string
	Name      string
	SortOrder int
}

// Visit represents a visits row.
type Visit struct {
	ID        string
	FeatureID string
	VisitedAt time.Time
}

// Favorite represents a favorites row.
type Favorite struct {
	FeatureID string
	CreatedAt time.Time
}
