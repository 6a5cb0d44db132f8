package store

import (
	"strings"

	"github.com/idilsaglam/shopping/internal/model"
)

// stage narrows a list of items. Stages never reorder.
type stage func([]model.Item) []model.Item

func keep(items []model.Item, pred func(model.Item) bool) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

func hideCompletedStage(items []model.Item) []model.Item {
	return keep(items, func(it model.Item) bool { return !it.Checked })
}

// searchStage matches case-sensitively.
func searchStage(term string) stage {
	return func(items []model.Item) []model.Item {
		return keep(items, func(it model.Item) bool { return strings.Contains(it.Name, term) })
	}
}

// pipeline returns the active stages in the order they must run:
// hide completed first, then search.
func (s *Store) pipeline() []stage {
	var stages []stage
	if s.hideCompleted {
		stages = append(stages, hideCompletedStage)
	}
	if s.searchTerm != "" {
		stages = append(stages, searchStage(s.searchTerm))
	}
	return stages
}

// VisibleItems returns copies of the items that pass the current filters,
// in insertion order. It never mutates the store.
func (s *Store) VisibleItems() []model.Item {
	visible := s.Items()
	for _, st := range s.pipeline() {
		visible = st(visible)
	}
	return visible
}
