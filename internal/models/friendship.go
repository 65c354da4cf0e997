package models

// Friendship is a directed edge in the follow graph: A→B does not imply
// B→A. Self-edges are rejected at the service layer.
type Friendship struct {
	UserID   uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	FriendID uint `json:"friend_id" gorm:"primaryKey;autoIncrement:false"`
}

type FriendResponse struct {
	Username       string `json:"username"`
	Bio            string `json:"bio,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}
