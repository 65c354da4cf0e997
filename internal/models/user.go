package models

import (
	"time"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	Password       string    `json:"-" gorm:"not null"`
	Bio            string    `json:"bio" gorm:"type:text"`
	ProfilePicture string    `json:"profile_picture" gorm:"type:text"` // base64 data URI
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasLocation reports whether both coordinates have been stored.
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}
