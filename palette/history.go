package palette

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Store keys. These are the only persisted schema the palette owns: JSON
// string arrays of command ids, most-recent/most-relevant first.
const (
	RecentKey    = "commandPalette.recent"
	FavoritesKey = "commandPalette.favorites"
)

const (
	DefaultRecentCap   = 10
	DefaultFavoriteCap = 10
)

// History maintains the capped recent and favorite id lists over a Store.
// Reads degrade to empty lists on any store or decode failure; writes return
// the error but leave the in-memory view updated so the session keeps
// working when persistence is unavailable.
type History struct {
	store       Store
	recentCap   int
	favoriteCap int

	recent    []string
	favorites []string
	loaded    bool
}

func NewHistory(store Store, recentCap, favoriteCap int) *History {
	if recentCap <= 0 {
		recentCap = DefaultRecentCap
	}
	if favoriteCap <= 0 {
		favoriteCap = DefaultFavoriteCap
	}
	return &History{store: store, recentCap: recentCap, favoriteCap: favoriteCap}
}

func (h *History) load() {
	if h.loaded {
		return
	}
	h.loaded = true
	h.recent = readIDList(h.store, RecentKey, h.recentCap)
	h.favorites = readIDList(h.store, FavoritesKey, h.favoriteCap)
}

// Recent returns command ids most-recent-first.
func (h *History) Recent() []string {
	h.load()
	return append([]string(nil), h.recent...)
}

// Favorites returns pinned command ids, most recently pinned first.
func (h *History) Favorites() []string {
	h.load()
	return append([]string(nil), h.favorites...)
}

func (h *History) IsFavorite(id string) bool {
	h.load()
	return slices.Contains(h.favorites, id)
}

// RecordUse pushes id to the front of the recent list, evicting any earlier
// occurrence and truncating to the cap.
func (h *History) RecordUse(id string) error {
	if id == "" {
		return nil
	}
	h.load()
	h.recent = pushFront(h.recent, id, h.recentCap)
	return h.persist(RecentKey, h.recent)
}

// ToggleFavorite flips membership of id and reports whether it is now a
// favorite.
func (h *History) ToggleFavorite(id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	h.load()
	if i := slices.Index(h.favorites, id); i >= 0 {
		h.favorites = slices.Delete(h.favorites, i, i+1)
		return false, h.persist(FavoritesKey, h.favorites)
	}
	h.favorites = pushFront(h.favorites, id, h.favoriteCap)
	return true, h.persist(FavoritesKey, h.favorites)
}

// Clear drops both lists from memory and the store.
func (h *History) Clear() error {
	h.loaded = true
	h.recent = nil
	h.favorites = nil
	if err := h.store.Delete(RecentKey); err != nil {
		return fmt.Errorf("clear recents: %w", err)
	}
	if err := h.store.Delete(FavoritesKey); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}
	return nil
}

func (h *History) persist(key string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := h.store.Set(key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func pushFront(ids []string, id string, limit int) []string {
	if i := slices.Index(ids, id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	}
	ids = slices.Insert(ids, 0, id)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

func readIDList(store Store, key string, limit int) []string {
	data, ok, err := store.Get(key)
	if err != nil || !ok {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}
