package testhelpers

import (
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cookmate/backend/internal/models"
)

// CreateTestUser inserts a user whose password is "password123".
func CreateTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestRecipe inserts a catalog recipe with the given id.
func CreateTestRecipe(t *testing.T, db *gorm.DB, id int64, name string) *models.Recipe {
	t.Helper()
	calories := 250.5
	image := fmt.Sprintf(`c("https://img.example.com/%d.jpg")`, id)
	recipe := &models.Recipe{
		ID:           id,
		Name:         name,
		Ingredients:  `c("flour", "sugar", "eggs")`,
		Instructions: "Mix everything. Bake for 20 minutes",
		CookTime:     "PT1H20M",
		Calories:     &calories,
		ImageURL:     &image,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return recipe
}
