package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FallbackImageURL is served when a recipe has no usable image.
const FallbackImageURL = "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcT27gTKHqKhHk3i-EiarE5Q9IND_awvKaKjxw&s"

var (
	ingredientSep  = regexp.MustCompile(`[;,]`)
	instructionSep = regexp.MustCompile(`\.|\n`)
	imageSep       = regexp.MustCompile(`[,\s]+`)
	isoDuration    = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?`)
)

// The dataset stores lists as R vectors: c("a", "b").
func stripVector(raw string) string {
	r := strings.NewReplacer(`c(`, "", `)`, "", `"`, "")
	return r.Replace(raw)
}

func splitClean(raw string, sep *regexp.Regexp) []string {
	out := []string{}
	for _, part := range sep.Split(stripVector(raw), -1) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IngredientList splits the stored ingredient text on commas and semicolons.
func (r Recipe) IngredientList() []string {
	return splitClean(r.Ingredients, ingredientSep)
}

// InstructionSteps splits the stored instructions into sentences or lines.
func (r Recipe) InstructionSteps() []string {
	return splitClean(r.Instructions, instructionSep)
}

// DisplayCookTime renders ISO-8601 cook times such as PT1H20M as "1h 20m".
func (r Recipe) DisplayCookTime() string {
	return FormatDuration(r.CookTime)
}

// FormatDuration converts PT#H#M durations. Anything else is "N/A".
func FormatDuration(raw string) string {
	m := isoDuration.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "N/A"
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if h == 0 && min == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dh %dm", h, min)
}

// CleanImageURL picks the first http URL out of the stored image field.
func CleanImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "Error: Message") {
		return FallbackImageURL
	}
	for _, u := range imageSep.Split(stripVector(raw), -1) {
		u = strings.TrimSpace(u)
		if strings.HasPrefix(u, "http") {
			return u
		}
	}
	return FallbackImageURL
}
