package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sefazor/eventmate-backend/internal/models"
	"github.com/sefazor/eventmate-backend/internal/repository"
	"github.com/sefazor/eventmate-backend/pkg/apperror"
)

type FriendService struct {
	userRepo       repository.UserRepository
	friendshipRepo repository.FriendshipRepository
}

func NewFriendService(userRepo repository.UserRepository, friendshipRepo repository.FriendshipRepository) *FriendService {
	return &FriendService{
		userRepo:       userRepo,
		friendshipRepo: friendshipRepo,
	}
}

// AddFriend creates a directed edge from the acting user to the target.
// The bool result reports whether the edge is new; an existing edge is the
// non-error "already friends" outcome.
func (s *FriendService) AddFriend(userID uint, targetUsername string) (bool, error) {
	target, err := s.userRepo.GetByUsername(targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperror.New(apperror.KindInvalidTarget, "User not found")
		}
		return false, apperror.Internal(err)
	}

	if target.ID == userID {
		return false, apperror.New(apperror.KindInvalidTarget, "You cannot add yourself as a friend")
	}

	created, err := s.friendshipRepo.Create(userID, target.ID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return created, nil
}

// ListFriends returns the users the acting user follows. Edges are
// directed, so appearing in someone's list implies nothing in reverse.
func (s *FriendService) ListFriends(userID uint) ([]models.FriendResponse, error) {
	friends, err := s.friendshipRepo.GetFriends(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	responses := make([]models.FriendResponse, 0, len(friends))
	for _, friend := range friends {
		responses = append(responses, models.FriendResponse{
			Username:       friend.Username,
			Bio:            friend.Bio,
			ProfilePicture: friend.ProfilePicture,
		})
	}
	return responses, nil
}
