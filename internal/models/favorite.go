package models

import "time"

// FavoriteRecipe marks a recipe as favorited by a user. (user_id, recipe_id) is unique.
type FavoriteRecipe struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_favorite_user_recipe,priority:1" json:"user_id"`
	RecipeID  int64     `gorm:"not null;uniqueIndex:idx_favorite_user_recipe,priority:2" json:"recipe_id"`
	CreatedAt time.Time `json:"dateAdded"`
}

func (FavoriteRecipe) TableName() string {
	return "favorite_recipes"
}
