package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// Store is the on-disk layout of the JSON backend.
type Store struct {
	Version   int                          `json:"version"`
	Drafts    map[string]models.FormData   `json:"drafts"`    // "employeeID/kind" -> draft
	Favorites map[string][]models.Favorite `json:"favorites"` // "employeeID" -> favorites
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func draftKey(employeeID int, kind constants.FormKind) string {
	return strconv.Itoa(employeeID) + "/" + string(kind)
}

func favoritesKey(employeeID int) string {
	return strconv.Itoa(employeeID)
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:   1,
		Drafts:    make(map[string]models.FormData),
		Favorites: make(map[string][]models.Favorite),
	}

	return s.save()
}

// Load reads the store, creating an empty one on first use. Drafts and
// favorites must survive logout, so a missing file is never an error.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.Init()
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Drafts == nil {
		s.store.Drafts = make(map[string]models.FormData)
	}
	if s.store.Favorites == nil {
		s.store.Favorites = make(map[string][]models.Favorite)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Draft(employeeID int, kind constants.FormKind) (models.FormData, error) {
	if s.store == nil {
		return models.FormData{}, fmt.Errorf("storage not loaded")
	}

	draft, ok := s.store.Drafts[draftKey(employeeID, kind)]
	if !ok {
		return models.FormData{}, ErrNoDraft
	}
	return draft, nil
}

func (s *JSONStore) SaveDraft(employeeID int, kind constants.FormKind, data models.FormData) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Drafts[draftKey(employeeID, kind)] = data
	return s.save()
}

func (s *JSONStore) DeleteDraft(employeeID int, kind constants.FormKind) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	delete(s.store.Drafts, draftKey(employeeID, kind))
	return s.save()
}

func (s *JSONStore) Favorites(employeeID int) ([]models.Favorite, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	return s.store.Favorites[favoritesKey(employeeID)], nil
}

func (s *JSONStore) AddFavorite(employeeID int, fav models.Favorite) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	key := favoritesKey(employeeID)
	s.store.Favorites[key] = append(s.store.Favorites[key], fav)
	return s.save()
}

func (s *JSONStore) DeleteFavorite(employeeID int, id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	key := favoritesKey(employeeID)
	favs := s.store.Favorites[key]
	for i, f := range favs {
		if f.ID == id {
			s.store.Favorites[key] = append(favs[:i], favs[i+1:]...)
			return s.save()
		}
	}
	return ErrFavoriteNotFound
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
