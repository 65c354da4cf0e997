package repository

import (
	"errors"

	"github.com/sefazor/eventmate-backend/internal/models"
	"gorm.io/gorm"
)

type friendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Create(userID, friendID uint) (bool, error) {
	edge := models.Friendship{UserID: userID, FriendID: friendID}
	if err := r.db.Create(&edge).Error; err != nil {
		// The composite primary key makes a repeated add a duplicate insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *friendshipRepository) GetFriends(userID uint) ([]models.User, error) {
	var friends []models.User
	err := r.db.
		Joins("JOIN friendships ON friendships.friend_id = users.id").
		Where("friendships.user_id = ?", userID).
		Find(&friends).Error
	return friends, err
}
