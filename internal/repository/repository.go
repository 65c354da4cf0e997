// Package repository holds the data-access layer. Services depend on the
// interfaces below so tests can swap in in-memory fakes; the GORM-backed
// implementations live alongside them.
package repository

import (
	"github.com/sefazor/eventmate-backend/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
	Update(user *models.User) error
	UpdateLocation(id uint, lat, lng float64) error
}

type EventRepository interface {
	GetByAPIEventID(apiEventID string) (*models.Event, error)
}

type SavedEventRepository interface {
	// Save caches the event (when it has no ID yet) and bookmarks it for the
	// user inside a single transaction. The bool result reports whether the
	// bookmark already existed.
	Save(userID uint, event *models.Event) (*models.SavedEvent, bool, error)
	GetByUser(userID uint) ([]models.SavedEvent, error)
	// DeleteOwned removes the bookmark only when it belongs to userID and
	// reports whether a row was deleted.
	DeleteOwned(id, userID uint) (bool, error)
}

type FriendshipRepository interface {
	// Create adds a directed edge and reports whether it was newly created.
	Create(userID, friendID uint) (bool, error)
	GetFriends(userID uint) ([]models.User, error)
}
