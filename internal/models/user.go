package models

import (
	"time"
)

type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:100" json:"firstName"`
	LastName     string    `gorm:"size:100" json:"lastName"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Height       *float64  `json:"height"`
	Weight       *float64  `json:"weight"`
	Age          *int      `json:"age"`
	Gender       string    `gorm:"size:32" json:"gender"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
