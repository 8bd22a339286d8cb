package models

import "time"

const (
	MinRating = 0
	MaxRating = 5
)

// Rating is a user's score for a recipe. At most one per (user, recipe).
// JSON names follow the web client.
type Rating struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_rating_user_recipe,priority:1" json:"UserId"`
	RecipeID  int64     `gorm:"not null;uniqueIndex:idx_rating_user_recipe,priority:2;index" json:"RecipeId"`
	Rating    int       `gorm:"not null;check:chk_ratings_range,rating >= 0 AND rating <= 5" json:"Rating"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Rating) TableName() string {
	return "ratings"
}
