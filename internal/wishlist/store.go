// Package wishlist persists the per-user wishlist and UI theme as JSON
// files, the server-side analogue of the browser's local storage keys.
// A corrupt or unreadable file is treated as empty state, never as an
// error: the wishlist fails open.
package wishlist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

const (
	wishlistFile = "wishlist.json"
	themeFile    = "theme.json"
)

// Themes the UI knows about. Anything else decodes to the default.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Store holds wishlists and theme choices for all users. All
// operations are synchronous and local; mutations are written through
// to disk immediately.
type Store struct {
	dir string

	mu        sync.Mutex
	wishlists map[string][]int
	themes    map[string]string
}

// New opens (or creates) the store in the given directory. Corrupt
// state files are silently reset.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		dir:       dir,
		wishlists: map[string][]int{},
		themes:    map[string]string{},
	}
	if m := loadWishlists(filepath.Join(dir, wishlistFile)); m != nil {
		s.wishlists = m
	}
	if m := loadThemes(filepath.Join(dir, themeFile)); m != nil {
		s.themes = m
	}
	return s, nil
}

// Toggle flips membership of a recipe in the user's wishlist and
// returns the new state: true when the recipe is now wishlisted.
func (s *Store) Toggle(userID uuid.UUID, recipeID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := userID.String()
	ids := s.wishlists[key]
	for i, id := range ids {
		if id == recipeID {
			s.wishlists[key] = append(ids[:i], ids[i+1:]...)
			return false, s.persistWishlists()
		}
	}
	s.wishlists[key] = append(ids, recipeID)
	return true, s.persistWishlists()
}

// Contains reports whether the recipe is on the user's wishlist.
func (s *Store) Contains(userID uuid.UUID, recipeID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.wishlists[userID.String()] {
		if id == recipeID {
			return true
		}
	}
	return false
}

// List returns the user's wishlisted recipe IDs in insertion order.
func (s *Store) List(userID uuid.UUID) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.wishlists[userID.String()]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

// Theme returns the user's saved theme, defaulting to light.
func (s *Store) Theme(userID uuid.UUID) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t := s.themes[userID.String()]; t == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// SetTheme saves the user's theme choice. Unknown values reset to the
// default rather than erroring.
func (s *Store) SetTheme(userID uuid.UUID, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		theme = ThemeLight
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.themes[userID.String()] = theme

	data, err := json.Marshal(s.themes)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, themeFile), data, 0o644)
}

func (s *Store) persistWishlists() error {
	data, err := json.Marshal(s.wishlists)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, wishlistFile), data, 0o644)
}

// loadWishlists reads a wishlist state file, returning nil when the
// file is missing or malformed.
func loadWishlists(path string) map[string][]int {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	m := map[string][]int{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}

// loadThemes reads a theme state file, returning nil when the file is
// missing or malformed.
func loadThemes(path string) map[string]string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	m := map[string]string{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}
