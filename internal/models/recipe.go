package models

// Recipe is a read-only catalog entry. IDs come from the source dataset.
type Recipe struct {
	ID           int64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name         string   `gorm:"size:512;not null" json:"name"`
	Ingredients  string   `gorm:"type:text" json:"ingredients"`
	Instructions string   `gorm:"type:text" json:"instructions"`
	CookTime     string   `gorm:"size:64" json:"cookTime"`
	Calories     *float64 `gorm:"type:decimal(10,2)" json:"calories"`
	ImageURL     *string  `gorm:"type:text" json:"imageUrl"`
	AvgRate      *float64 `json:"avgRate"`
}

func (Recipe) TableName() string {
	return "recipes"
}
