// Package seed loads the recipe catalog and demo accounts into a fresh database.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cookmate/backend/internal/models"
)

// DefaultBatchSize is the number of rows written per INSERT
const DefaultBatchSize = 500

// RecipeWriter persists catalog rows
type RecipeWriter interface {
	Upsert(ctx context.Context, recipes []models.Recipe, batchSize int) error
}

// column names of the Food.com export
const (
	colID           = "RecipeId"
	colName         = "Name"
	colIngredients  = "RecipeIngredientParts"
	colInstructions = "RecipeInstructions"
	colDescription  = "Description"
	colTotalTime    = "TotalTime"
	colCookTime     = "CookTime"
	colCalories     = "Calories"
	colImages       = "Images"
	colRating       = "AggregatedRating"
)

// LoadRecipes streams the CSV in r into w, batchSize rows at a time.
// Rows without a usable RecipeId or Name are skipped. It returns the number of rows written.
func LoadRecipes(ctx context.Context, r io.Reader, w RecipeWriter, batchSize int, log *zap.Logger) (int, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if log == nil {
		log = zap.NewNop()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	if _, ok := index[colID]; !ok {
		return 0, fmt.Errorf("missing %s column", colID)
	}

	var (
		batch   = make([]models.Recipe, 0, batchSize)
		written int
		skipped int
		line    = 1
	)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := w.Upsert(ctx, batch, batchSize); err != nil {
			return fmt.Errorf("failed to write batch ending at line %d: %w", line, err)
		}
		written += len(batch)
		batch = batch[:0]
		return nil
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return written, fmt.Errorf("line %d: %w", line, err)
		}

		recipe, ok := parseRecipe(record, index)
		if !ok {
			skipped++
			continue
		}
		batch = append(batch, recipe)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return written, err
			}
		}
	}
	if err := flush(); err != nil {
		return written, err
	}

	log.Info("recipes loaded", zap.Int("written", written), zap.Int("skipped", skipped))
	return written, nil
}

func parseRecipe(record []string, index map[string]int) (models.Recipe, bool) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		v := strings.TrimSpace(record[i])
		if v == "NA" {
			return ""
		}
		return v
	}

	id, err := strconv.ParseFloat(field(colID), 64)
	if err != nil || id <= 0 {
		return models.Recipe{}, false
	}
	name := field(colName)
	if name == "" {
		return models.Recipe{}, false
	}

	recipe := models.Recipe{
		ID:           int64(id),
		Name:         name,
		Ingredients:  field(colIngredients),
		Instructions: firstNonEmpty(field(colInstructions), field(colDescription)),
		CookTime:     firstNonEmpty(field(colTotalTime), field(colCookTime)),
		Calories:     parseFloat(field(colCalories)),
		AvgRate:      parseFloat(field(colRating)),
	}
	if img := field(colImages); img != "" && img != "character(0)" {
		recipe.ImageURL = &img
	}
	return recipe, true
}

func parseFloat(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
