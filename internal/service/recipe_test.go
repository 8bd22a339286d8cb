package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookmate/backend/internal/models"
	"github.com/cookmate/backend/internal/service"
	"github.com/cookmate/backend/internal/store"
	"github.com/cookmate/backend/internal/testhelpers"
	"github.com/cookmate/backend/internal/types"
)

type fakePresigner struct {
	bucket string
	err    error
	keys   []string
}

func (f *fakePresigner) GeneratePresignedURL(_ context.Context, key string, exp time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "https://" + f.bucket + ".s3.amazonaws.com/" + key + "?X-Amz-Expires=" + exp.String(), nil
}

func (f *fakePresigner) Bucket() string { return f.bucket }

func TestGetRecipe(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	testhelpers.CreateTestRecipe(t, db, 10, "Banana Bread")
	ratings := store.NewRatingStore(db)
	svc := service.NewRecipeService(store.NewRecipeStore(db), ratings, nil)
	ctx := context.Background()

	_, err := ratings.Add(ctx, 1, 10, 5)
	require.NoError(t, err)
	_, err = ratings.Add(ctx, 2, 10, 2)
	require.NoError(t, err)

	view, err := svc.GetRecipe(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), view.ID)
	assert.Equal(t, "Banana Bread", view.Name)
	assert.Equal(t, []string{"flour", "sugar", "eggs"}, view.Ingredients)
	assert.Equal(t, []string{"Mix everything", "Bake for 20 minutes"}, view.Instructions)
	assert.Equal(t, "1h 20m", view.CookTime)
	assert.Equal(t, "https://img.example.com/10.jpg", view.ImageURL)
	assert.Equal(t, int64(2), view.TotalRatings)
	assert.InDelta(t, 3.5, view.AverageRating, 0.001)

	_, err = svc.GetRecipe(ctx, 11)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)

	_, err = svc.GetRecipe(ctx, 0)
	var ve *service.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestImageResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("without bucket", func(t *testing.T) {
		r := service.NewImageResolver(nil, nil)
		assert.Equal(t, "https://img.example.com/a.jpg", r.Resolve(ctx, `c("https://img.example.com/a.jpg")`))
		assert.Equal(t, models.FallbackImageURL, r.Resolve(ctx, "recipes/1.jpg"))
		assert.Equal(t, models.FallbackImageURL, r.Resolve(ctx, ""))
	})

	t.Run("with bucket", func(t *testing.T) {
		p := &fakePresigner{bucket: "cookmate-images"}
		r := service.NewImageResolver(p, nil)

		assert.Contains(t, r.Resolve(ctx, "s3://cookmate-images/recipes/1.jpg"), "cookmate-images.s3.amazonaws.com/recipes/1.jpg")
		assert.Contains(t, r.Resolve(ctx, "/recipes/2.jpg"), "/recipes/2.jpg")
		assert.Equal(t, []string{"recipes/1.jpg", "recipes/2.jpg"}, p.keys)

		// foreign buckets and dataset URLs are not presigned
		assert.Equal(t, models.FallbackImageURL, r.Resolve(ctx, "s3://elsewhere/recipes/1.jpg"))
		assert.Equal(t, "https://img.example.com/a.jpg", r.Resolve(ctx, `c("https://img.example.com/a.jpg")`))
		assert.Len(t, p.keys, 2)
	})

	t.Run("presign failure", func(t *testing.T) {
		r := service.NewImageResolver(&fakePresigner{bucket: "b", err: errors.New("no credentials")}, nil)
		assert.Equal(t, models.FallbackImageURL, r.Resolve(ctx, "s3://b/recipes/1.jpg"))
	})
}

func TestPreferenceService(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	svc := service.NewPreferenceService(store.NewPreferenceStore(db))
	ctx := context.Background()

	prefs, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, prefs.Empty())
	assert.NotNil(t, prefs.Dietary)

	saved, err := svc.Save(ctx, 1, &types.Preferences{
		Dietary:   []string{" Vegan ", "vegan", "Gluten-Free"},
		Allergies: []string{"peanuts", ""},
		Cuisine:   []string{"Italian"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"vegan", "gluten-free"}, saved.Dietary)
	assert.Equal(t, []string{"peanuts"}, saved.Allergies)
	assert.Equal(t, []string{"italian"}, saved.Cuisine)

	// saving again replaces the previous set
	saved, err = svc.Save(ctx, 1, &types.Preferences{Cuisine: []string{"thai"}})
	require.NoError(t, err)
	assert.Empty(t, saved.Dietary)
	assert.Empty(t, saved.Allergies)
	assert.Equal(t, []string{"thai"}, saved.Cuisine)

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	_, err = svc.Save(ctx, 1, &types.Preferences{Dietary: []string{string(long)}})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "dietary", ve.Field)

	prefs, err = svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"thai"}, prefs.Cuisine)
}
