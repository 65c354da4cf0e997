package service

import (
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sefazor/eventmate-backend/internal/models"
	"github.com/sefazor/eventmate-backend/internal/repository"
	"github.com/sefazor/eventmate-backend/pkg/apperror"
	"github.com/sefazor/eventmate-backend/pkg/ticketmaster"
)

// EventLookup is the outbound events API, abstracted for tests.
type EventLookup interface {
	SearchNearby(lat, lng float64) ([]json.RawMessage, error)
	GetEvent(id string) (*ticketmaster.EventDetails, error)
}

type EventService struct {
	userRepo       repository.UserRepository
	eventRepo      repository.EventRepository
	savedEventRepo repository.SavedEventRepository
	lookup         EventLookup
	logger         *zap.Logger
}

func NewEventService(
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	savedEventRepo repository.SavedEventRepository,
	lookup EventLookup,
	logger *zap.Logger,
) *EventService {
	return &EventService{
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		savedEventRepo: savedEventRepo,
		lookup:         lookup,
		logger:         logger,
	}
}

// Nearby returns the upstream event objects around the user's stored
// location, untouched.
func (s *EventService) Nearby(userID uint) ([]json.RawMessage, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !user.HasLocation() {
		return nil, apperror.New(apperror.KindInvalidInput, "User location not set.")
	}

	events, err := s.lookup.SearchNearby(*user.Latitude, *user.Longitude)
	if err != nil {
		s.logger.Error("event search failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return events, nil
}

// SaveEvent bookmarks the external event for the user, fetching and caching
// its details on first save. The bool result reports the "already saved"
// outcome, which is not an error.
func (s *EventService) SaveEvent(userID uint, apiEventID string) (*models.SavedEventResponse, bool, error) {
	event, err := s.eventRepo.GetByAPIEventID(apiEventID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperror.Internal(err)
		}

		// Not cached yet: fetch upstream before touching storage. An
		// upstream failure means no writes at all.
		details, lookupErr := s.lookup.GetEvent(apiEventID)
		if lookupErr != nil {
			s.logger.Error("event lookup failed", zap.String("api_event_id", apiEventID), zap.Error(lookupErr))
			return nil, false, lookupErr
		}

		event = &models.Event{
			APIEventID: details.ID,
			Name:       details.Name,
			Location:   details.Location,
			Date:       details.Date,
			Category:   details.Category,
			ImageURL:   details.ImageURL,
		}
	}

	saved, alreadySaved, err := s.savedEventRepo.Save(userID, event)
	if err != nil {
		return nil, false, apperror.Internal(err)
	}

	resp := &models.SavedEventResponse{
		SavedEventID: saved.ID,
		Name:         saved.Event.Name,
		Location:     saved.Event.Location,
		Date:         saved.Event.Date.UTC().Format(time.RFC3339),
		ImageURL:     saved.Event.ImageURL,
	}
	return resp, alreadySaved, nil
}

// RemoveSavedEvent deletes the bookmark when the acting user owns it. A
// bookmark that does not exist and one owned by someone else look the same
// to the caller.
func (s *EventService) RemoveSavedEvent(userID, savedEventID uint) error {
	deleted, err := s.savedEventRepo.DeleteOwned(savedEventID, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !deleted {
		return apperror.New(apperror.KindNotFound, "Saved event not found")
	}
	return nil
}
