package service

import (
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sefazor/eventmate-backend/internal/models"
	"github.com/sefazor/eventmate-backend/internal/repository"
	"github.com/sefazor/eventmate-backend/pkg/apperror"
	"github.com/sefazor/eventmate-backend/pkg/utils"
)

type UserService struct {
	userRepo       repository.UserRepository
	savedEventRepo repository.SavedEventRepository
	validator      *utils.Validator
	logger         *zap.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	savedEventRepo repository.SavedEventRepository,
	validator *utils.Validator,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		savedEventRepo: savedEventRepo,
		validator:      validator,
		logger:         logger,
	}
}

// GetProfile returns the acting user's own profile. The path username must
// match the authenticated identity; nobody reads another user's full
// profile through this operation.
func (s *UserService) GetProfile(actingUserID uint, actingUsername, requestedUsername string) (*models.ProfileResponse, error) {
	if actingUsername != requestedUsername {
		return nil, apperror.New(apperror.KindForbidden, "Unauthorized access")
	}

	user, err := s.userRepo.GetByID(actingUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.KindNotFound, "User not found")
		}
		return nil, apperror.Internal(err)
	}

	saved, err := s.savedEventRepo.GetByUser(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	savedEvents := make([]models.SavedEventResponse, 0, len(saved))
	for _, se := range saved {
		savedEvents = append(savedEvents, models.SavedEventResponse{
			SavedEventID: se.ID,
			Name:         se.Event.Name,
			Location:     se.Event.Location,
			Date:         se.Event.Date.Format(time.RFC3339),
			ImageURL:     se.Event.ImageURL,
		})
	}

	return &models.ProfileResponse{
		Username:       user.Username,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		Latitude:       user.Latitude,
		Longitude:      user.Longitude,
		SavedEvents:    savedEvents,
	}, nil
}

// UpdateLocation overwrites the stored coordinates. Calling it again with
// the same values is a no-op.
func (s *UserService) UpdateLocation(userID uint, lat, lng float64) error {
	if err := s.userRepo.UpdateLocation(userID, lat, lng); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

type profilePicture struct {
	MimeType string `validate:"supported_image"`
}

// EditProfile overwrites the bio unconditionally and, when picture bytes
// are present, stores them as a base64 data URI. Both land in one write.
func (s *UserService) EditProfile(userID uint, bio string, picture []byte) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.KindNotFound, "User not found")
		}
		return apperror.Internal(err)
	}

	user.Bio = bio

	if len(picture) > 0 {
		mimeType := http.DetectContentType(picture)
		if err := s.validator.Struct(profilePicture{MimeType: mimeType}); err != nil {
			return apperror.New(apperror.KindInvalidInput, "Unsupported image format")
		}
		user.ProfilePicture = "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(picture)
	}

	if err := s.userRepo.Update(user); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
