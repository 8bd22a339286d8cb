package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngredientList(t *testing.T) {
	r := Recipe{Ingredients: `c("blueberries", "granulated sugar"; "vanilla yogurt", "lemon juice")`}
	assert.Equal(t, []string{"blueberries", "granulated sugar", "vanilla yogurt", "lemon juice"}, r.IngredientList())

	assert.Equal(t, []string{}, Recipe{}.IngredientList())
}

func TestInstructionSteps(t *testing.T) {
	r := Recipe{Instructions: "Toss the berries. Chill for an hour.\nServe cold"}
	assert.Equal(t, []string{"Toss the berries", "Chill for an hour", "Serve cold"}, r.InstructionSteps())
}

func TestFormatDuration(t *testing.T) {
	cases := map[string]string{
		"PT1H20M": "1h 20m",
		"PT45M":   "0h 45m",
		"PT2H":    "2h 0m",
		"PT0M":    "N/A",
		"":        "N/A",
		"20 mins": "N/A",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatDuration(in), in)
	}
	assert.Equal(t, "1h 5m", Recipe{CookTime: "PT1H5M"}.DisplayCookTime())
}

func TestCleanImageURL(t *testing.T) {
	assert.Equal(t, "https://img.example.com/a.jpg",
		CleanImageURL(`c("https://img.example.com/a.jpg", "https://img.example.com/b.jpg")`))
	assert.Equal(t, "https://img.example.com/b.jpg", CleanImageURL(`character(0), https://img.example.com/b.jpg`))
	assert.Equal(t, FallbackImageURL, CleanImageURL(""))
	assert.Equal(t, FallbackImageURL, CleanImageURL("Error: Message timed out"))
	assert.Equal(t, FallbackImageURL, CleanImageURL("NA"))
}
