package localstore

import (
	"database/sql"

	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/localstore/sqlite"
	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// SQLiteStore adapts sqlite.Store to the Provider interface.
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore creates a new SQLite-backed store
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		store: sqlite.NewStore(path),
	}
}

// Lifecycle methods
func (s *SQLiteStore) Init() error           { return s.store.Init() }
func (s *SQLiteStore) Load() error           { return s.store.Load() }
func (s *SQLiteStore) Close() error          { return s.store.Close() }
func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }

// GetDB exposes the underlying handle for tests.
func (s *SQLiteStore) GetDB() *sql.DB { return s.store.GetDB() }

// Draft methods
func (s *SQLiteStore) Draft(employeeID int, kind constants.FormKind) (models.FormData, error) {
	data, ok, err := s.store.Draft(employeeID, kind)
	if err != nil {
		return models.FormData{}, err
	}
	if !ok {
		return models.FormData{}, ErrNoDraft
	}
	return data, nil
}

func (s *SQLiteStore) SaveDraft(employeeID int, kind constants.FormKind, data models.FormData) error {
	return s.store.SaveDraft(employeeID, kind, data)
}

func (s *SQLiteStore) DeleteDraft(employeeID int, kind constants.FormKind) error {
	return s.store.DeleteDraft(employeeID, kind)
}

// Favorite methods
func (s *SQLiteStore) Favorites(employeeID int) ([]models.Favorite, error) {
	return s.store.Favorites(employeeID)
}

func (s *SQLiteStore) AddFavorite(employeeID int, fav models.Favorite) error {
	return s.store.AddFavorite(employeeID, fav)
}

func (s *SQLiteStore) DeleteFavorite(employeeID int, id string) error {
	n, err := s.store.DeleteFavorite(employeeID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
