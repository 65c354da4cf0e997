package models

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type SaveLocationRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lng *float64 `json:"lng" validate:"required"`
}

type AddFriendRequest struct {
	Username string `json:"username" validate:"required"`
}

type ProfileResponse struct {
	Username       string               `json:"username"`
	Bio            string               `json:"bio"`
	ProfilePicture string               `json:"profile_picture"`
	Latitude       *float64             `json:"latitude"`
	Longitude      *float64             `json:"longitude"`
	SavedEvents    []SavedEventResponse `json:"saved_events"`
}
