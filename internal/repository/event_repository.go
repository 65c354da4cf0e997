package repository

import (
	"github.com/sefazor/eventmate-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetByAPIEventID(apiEventID string) (*models.Event, error) {
	var event models.Event
	if err := r.db.Where("api_event_id = ?", apiEventID).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

type savedEventRepository struct {
	db *gorm.DB
}

func NewSavedEventRepository(db *gorm.DB) SavedEventRepository {
	return &savedEventRepository{db: db}
}

// Save runs the cache-then-bookmark sequence as one transaction. Both
// inserts use ON CONFLICT DO NOTHING so a duplicate never errors a
// statement: on Postgres a failed insert would abort the whole
// transaction and poison every statement after it. A zero RowsAffected is
// the "already exists" outcome; the existing row is then read back.
func (r *savedEventRepository) Save(userID uint, event *models.Event) (*models.SavedEvent, bool, error) {
	var saved models.SavedEvent
	var alreadySaved bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if event.ID == 0 {
			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "api_event_id"}},
				DoNothing: true,
			}).Create(event)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				// Lost the insert race: adopt the first writer's row.
				var existing models.Event
				if err := tx.Where("api_event_id = ?", event.APIEventID).First(&existing).Error; err != nil {
					return err
				}
				*event = existing
			}
		}

		saved = models.SavedEvent{UserID: userID, EventID: event.ID}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
			DoNothing: true,
		}).Create(&saved)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			alreadySaved = true
			return tx.Where("user_id = ? AND event_id = ?", userID, event.ID).First(&saved).Error
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	saved.Event = *event
	return &saved, alreadySaved, nil
}

func (r *savedEventRepository) GetByUser(userID uint) ([]models.SavedEvent, error) {
	var saved []models.SavedEvent
	err := r.db.Preload("Event").Where("user_id = ?", userID).Find(&saved).Error
	return saved, err
}

func (r *savedEventRepository) DeleteOwned(id, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.SavedEvent{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
