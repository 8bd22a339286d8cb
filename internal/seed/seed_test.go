package seed

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookmate/backend/internal/models"
	"github.com/cookmate/backend/internal/service"
	"github.com/cookmate/backend/internal/store"
	"github.com/cookmate/backend/internal/testhelpers"
)

const sampleCSV = `RecipeId,Name,CookTime,TotalTime,Description,Images,RecipeIngredientParts,AggregatedRating,Calories,RecipeInstructions
38,Low-Fat Berry Blue Frozen Dessert,PT24H,PT24H45M,Make and share this dessert,"c(""https://img.example.com/38.jpg"")","c(""blueberries"", ""sugar"")",4.5,170.9,"c(""Toss berries."", ""Freeze."")"
39,Biryani,PT25M,,Spicy rice,character(0),"c(""rice"")",NA,1110.7,
,Missing Id,PT5M,,,,,,,
40,,PT5M,,,,,,,
`

type recordingWriter struct {
	batches [][]models.Recipe
	err     error
}

func (w *recordingWriter) Upsert(ctx context.Context, recipes []models.Recipe, batchSize int) error {
	if w.err != nil {
		return w.err
	}
	batch := make([]models.Recipe, len(recipes))
	copy(batch, recipes)
	w.batches = append(w.batches, batch)
	return nil
}

func TestLoadRecipesParsesRows(t *testing.T) {
	w := &recordingWriter{}
	n, err := LoadRecipes(context.Background(), strings.NewReader(sampleCSV), w, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, w.batches, 1)

	dessert := w.batches[0][0]
	assert.Equal(t, int64(38), dessert.ID)
	assert.Equal(t, "PT24H45M", dessert.CookTime)
	assert.Equal(t, `c("Toss berries.", "Freeze.")`, dessert.Instructions)
	require.NotNil(t, dessert.ImageURL)
	assert.Equal(t, `c("https://img.example.com/38.jpg")`, *dessert.ImageURL)
	require.NotNil(t, dessert.AvgRate)
	assert.InDelta(t, 4.5, *dessert.AvgRate, 0.001)
	require.NotNil(t, dessert.Calories)
	assert.InDelta(t, 170.9, *dessert.Calories, 0.001)

	biryani := w.batches[0][1]
	assert.Equal(t, "PT25M", biryani.CookTime)
	assert.Equal(t, "Spicy rice", biryani.Instructions)
	assert.Nil(t, biryani.ImageURL)
	assert.Nil(t, biryani.AvgRate)
}

func TestLoadRecipesBatches(t *testing.T) {
	w := &recordingWriter{}
	n, err := LoadRecipes(context.Background(), strings.NewReader(sampleCSV), w, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, w.batches, 2)
}

func TestLoadRecipesErrors(t *testing.T) {
	_, err := LoadRecipes(context.Background(), strings.NewReader("Name,Calories\nSoup,10\n"), &recordingWriter{}, 10, nil)
	assert.Error(t, err)

	_, err = LoadRecipes(context.Background(), strings.NewReader(""), &recordingWriter{}, 10, nil)
	assert.Error(t, err)

	failing := &recordingWriter{err: errors.New("disk full")}
	n, err := LoadRecipes(context.Background(), strings.NewReader(sampleCSV), failing, 10, nil)
	assert.ErrorContains(t, err, "disk full")
	assert.Zero(t, n)
}

func TestLoadRecipesIntoStore(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	recipes := store.NewRecipeStore(db)
	ctx := context.Background()

	_, err := LoadRecipes(ctx, strings.NewReader(sampleCSV), recipes, 10, nil)
	require.NoError(t, err)

	// reseeding replaces rows instead of failing
	_, err = LoadRecipes(ctx, strings.NewReader(sampleCSV), recipes, 10, nil)
	require.NoError(t, err)

	count, err := recipes.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	got, err := recipes.GetByID(ctx, 38)
	require.NoError(t, err)
	assert.Equal(t, []string{"blueberries", "sugar"}, got.IngredientList())
}

func TestLoadDemoUsers(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	auth := service.NewAuthService(db, "seed-secret", time.Hour, nil)
	ctx := context.Background()

	n, err := LoadDemoUsers(ctx, auth, nil)
	require.NoError(t, err)
	assert.Equal(t, len(DemoUsers), n)

	n, err = LoadDemoUsers(ctx, auth, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, _, err = auth.Login(ctx, DemoUsers[0].Email, DemoPassword)
	assert.NoError(t, err)
}
