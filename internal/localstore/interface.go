package localstore

import (
	"errors"

	"github.com/ib-ingenieria/horas-cli/internal/constants"
	"github.com/ib-ingenieria/horas-cli/internal/models"
)

// ErrNoDraft is returned when no draft is stored for an employee/form pair.
var ErrNoDraft = errors.New("no draft saved")

// ErrFavoriteNotFound is returned when a favorite id is unknown.
var ErrFavoriteNotFound = errors.New("favorite not found")

// Provider is the client-side draft/favorites store. Everything is keyed per
// employee; drafts additionally per form kind. Drafts mirror the latest form
// state (written on every change, read on mount, never expire); favorites are
// saved taxonomy shortcuts with no server representation.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Drafts
	Draft(employeeID int, kind constants.FormKind) (models.FormData, error)
	SaveDraft(employeeID int, kind constants.FormKind, data models.FormData) error
	DeleteDraft(employeeID int, kind constants.FormKind) error

	// Favorites
	Favorites(employeeID int) ([]models.Favorite, error)
	AddFavorite(employeeID int, fav models.Favorite) error
	DeleteFavorite(employeeID int, id string) error

	// Utils
	GetConfigPath() string
}
