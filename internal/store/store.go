package store

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/shopping/internal/model"
)

// Store owns the shopping list and its two display filters.
// All mutation goes through its methods. Not safe for concurrent use;
// the TUI drives it from a single goroutine.
type Store struct {
	items         []model.Item
	hideCompleted bool
	searchTerm    string

	log   zerolog.Logger
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger mutations are traced to.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithIDGenerator replaces the UUID generator. Mostly for tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// DefaultSeed is the list a fresh session starts with.
func DefaultSeed() []model.Item {
	return []model.Item{
		{Name: "apples"},
		{Name: "oranges"},
		{Name: "milk", Checked: true},
		{Name: "bread"},
	}
}

// New builds a Store from seed. Seed items keep their id when it is set and
// unique, otherwise they get a fresh one. IsEditing is reset.
func New(seed []model.Item, opts ...Option) *Store {
	s := &Store{
		log:   zerolog.Nop(),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.items = make([]model.Item, 0, len(seed))
	for _, it := range seed {
		if it.ID == "" || s.index(it.ID) >= 0 {
			it.ID = s.freshID()
		}
		it.IsEditing = false
		s.items = append(s.items, it)
	}
	return s
}

func (s *Store) freshID() string {
	for {
		id := s.newID()
		if id != "" && s.index(id) < 0 {
			return id
		}
	}
}

// index returns the position of id in items, or -1.
func (s *Store) index(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// find returns a pointer into items for id. A miss is logged and the
// caller treats it as a no-op.
func (s *Store) find(op, id string) *model.Item {
	i := s.index(id)
	if i < 0 {
		s.log.Debug().Str("op", op).Str("id", id).Bool("found", false).Msg("item not in list")
		return nil
	}
	return &s.items[i]
}

// AddItem appends a new unchecked item and returns its id.
// The name is taken as is, empty included.
func (s *Store) AddItem(name string) string {
	id := s.freshID()
	s.log.Debug().Str("id", id).Str("name", name).Msg("adding item")
	s.items = append(s.items, model.Item{ID: id, Name: name})
	return id
}

// RemoveItem deletes the item with the given id.
func (s *Store) RemoveItem(id string) {
	i := s.index(id)
	if i < 0 {
		s.log.Debug().Str("op", "remove").Str("id", id).Bool("found", false).Msg("item not in list")
		return
	}
	s.log.Debug().Str("id", id).Msg("deleting item")
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// ToggleChecked flips the checked state of the item.
func (s *Store) ToggleChecked(id string) {
	it := s.find("toggle", id)
	if it == nil {
		return
	}
	it.Checked = !it.Checked
	s.log.Debug().Str("id", id).Bool("checked", it.Checked).Msg("toggling checked")
}

// SetEditing puts the item in or out of inline edit mode.
// Other items are left alone, so several may be editing at once.
func (s *Store) SetEditing(id string, editing bool) {
	it := s.find("set_editing", id)
	if it == nil {
		return
	}
	it.IsEditing = editing
	s.log.Debug().Str("id", id).Bool("editing", editing).Msg("setting editing")
}

// RenameItem overwrites the item's name.
func (s *Store) RenameItem(id, name string) {
	it := s.find("rename", id)
	if it == nil {
		return
	}
	s.log.Debug().Str("id", id).Str("from", it.Name).Str("to", name).Msg("renaming item")
	it.Name = name
}

// SetHideCompleted sets whether checked items are filtered out.
func (s *Store) SetHideCompleted(v bool) {
	s.log.Debug().Bool("hide_completed", v).Msg("setting hide completed")
	s.hideCompleted = v
}

func (s *Store) HideCompleted() bool { return s.hideCompleted }

// SetSearchTerm sets the name filter. An empty term clears it.
func (s *Store) SetSearchTerm(term string) {
	s.log.Debug().Str("term", term).Msg("setting search term")
	s.searchTerm = term
}

func (s *Store) SearchTerm() string { return s.searchTerm }

// Items returns a copy of every item in insertion order, ignoring filters.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Item returns a copy of the item with the given id.
func (s *Store) Item(id string) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

func (s *Store) Len() int { return len(s.items) }

// Counts reports how many items are checked and unchecked, ignoring filters.
func (s *Store) Counts() (checked, unchecked int) {
	for _, it := range s.items {
		if it.Checked {
			checked++
		} else {
			unchecked++
		}
	}
	return
}
