package models

import (
	"time"
)

// PreferenceKind groups the preference values a user can save.
type PreferenceKind string

const (
	PreferenceDietary PreferenceKind = "dietary"
	PreferenceAllergy PreferenceKind = "allergy"
	PreferenceCuisine PreferenceKind = "cuisine"
)

// DietaryPreference is one saved search preference for a user.
type DietaryPreference struct {
	ID        int64          `gorm:"primaryKey" json:"id"`
	UserID    int64          `gorm:"not null;uniqueIndex:idx_preference_user_kind_value,priority:1" json:"user_id"`
	Kind      PreferenceKind `gorm:"size:16;not null;uniqueIndex:idx_preference_user_kind_value,priority:2" json:"kind"`
	Value     string         `gorm:"size:50;not null;uniqueIndex:idx_preference_user_kind_value,priority:3" json:"value"`
	CreatedAt time.Time      `json:"created_at"`
}

func (DietaryPreference) TableName() string {
	return "dietary_preferences"
}

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Recipe{},
		&FavoriteRecipe{},
		&Rating{},
		&DietaryPreference{},
	}
}
