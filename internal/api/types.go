package api

import (
	"github.com/cookmate/backend/internal/models"
)

// MessageResponse is the plain {status, message} envelope
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type AddFavoriteResponse struct {
	Status       string                 `json:"status"`
	Message      string                 `json:"message"`
	FavoriteFood *models.FavoriteRecipe `json:"favoriteFood"`
}

type FavoritesResponse struct {
	Status    string                  `json:"status"`
	Message   string                  `json:"message"`
	Favorites []models.FavoriteRecipe `json:"favorites"`
}

type AddRatingResponse struct {
	Status     string         `json:"status"`
	Message    string         `json:"message"`
	RatingFood *models.Rating `json:"ratingFood"`
}

// SignupData is the created user with its first token
type SignupData struct {
	*models.User
	Token string `json:"token"`
}

type SignupResponse struct {
	Status  string     `json:"status"`
	Message string     `json:"message"`
	Data    SignupData `json:"data"`
}

type LoginResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// TokenToIDResponse mirrors the shape the web client expects from /tokenToId
type TokenToIDResponse struct {
	Success bool   `json:"success"`
	UserID  int64  `json:"userId,omitempty"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Redis       string `json:"redis"`
	Recommender string `json:"recommender"`
}
