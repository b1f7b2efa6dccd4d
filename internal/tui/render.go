package tui

import (
	"github.com/jask/nutritionlabel/internal/catalog"
)

// Render returns the detail page of one feature as plain terminal output, or
// the catalog page when id is empty.
func Render(s *Session, id catalog.FeatureID, width int) (string, error) {
	if s.Keys == nil {
		s.Keys = NewKeyRegistry(DefaultKeyBindings())
	}
	width = max(20, width)
	if id == "" {
		out, _, _ := NewListScreen(s).render(width)
		return out, nil
	}
	f, err := s.Catalog.Get(string(id))
	if err != nil {
		return "", err
	}
	return NewDetailScreen(s, f).content(width), nil
}
