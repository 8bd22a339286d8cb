package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cookmate/backend/internal/mocks"
	"github.com/cookmate/backend/internal/service"
	"github.com/cookmate/backend/internal/types"
)

// fakeRecommendation records the last query it received
type fakeRecommendation struct {
	mu    sync.Mutex
	query url.Values
	path  string
}

func (f *fakeRecommendation) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		fmt.Fprint(w, `{"status":"success","data":[{"name":"Dal"}],"suggestion":null}`)
	})
	mux.HandleFunc("/recommend/by_recipe", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"detail":"Recipe not found"}`)
	})
	mux.HandleFunc("/dietary-options", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		fmt.Fprint(w, `{"dietary":["vegan"],"allergies":["nuts"]}`)
	})
	return mux
}

func (f *fakeRecommendation) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.query = r.URL.Query()
	f.path = r.URL.Path
}

func (f *fakeRecommendation) last() (string, url.Values) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.path, f.query
}

func setupRecommendAPI(t *testing.T) (*testEnv, *fakeRecommendation) {
	t.Helper()
	fake := &fakeRecommendation{}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	env := setupTestAPI(t, withRecommender(service.NewRecommenderClient(srv.URL, 2*time.Second, nil)))
	return env, fake
}

func TestSearchUsesSavedPreferences(t *testing.T) {
	env, fake := setupRecommendAPI(t)
	userID, token := env.createUserAndToken(t, "search@example.com")

	w := env.do(http.MethodPut, fmt.Sprintf("/api/preferences/%d", userID),
		map[string]interface{}{"dietary": []string{"Vegan"}, "allergies": []string{"peanuts"}}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(http.MethodGet, "/api/search?ingredients=lentils&cuisine=indian", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.RecommendResponse
	decode(t, w, &resp)
	assert.Equal(t, "success", resp.Status)
	assert.JSONEq(t, `[{"name":"Dal"}]`, string(resp.Data))

	path, q := fake.last()
	assert.Equal(t, "/search", path)
	assert.Equal(t, fmt.Sprint(userID), q.Get("user_id"))
	assert.Equal(t, "lentils", q.Get("ingredients"))
	assert.Equal(t, []string{"vegan"}, q["dietary"])
	assert.Equal(t, []string{"peanuts"}, q["allergies"])
	assert.Equal(t, []string{"indian"}, q["cuisine"])
}

func TestSearchAnonymous(t *testing.T) {
	env, fake := setupRecommendAPI(t)

	// root path used by the web client
	w := env.do(http.MethodGet, "/search?ingredients=rice&max_calories=500", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	_, q := fake.last()
	assert.Empty(t, q.Get("user_id"))
	assert.Equal(t, "500", q.Get("max_calories"))

	w = env.do(http.MethodGet, "/api/search?max_calories=0", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestByRecipePassesUpstreamStatus(t *testing.T) {
	env, fake := setupRecommendAPI(t)

	w := env.do(http.MethodGet, "/recommend/by_recipe?recipe=Unknown+Pie", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp types.RecommendResponse
	decode(t, w, &resp)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Recipe not found", resp.Message)
	assert.JSONEq(t, `[]`, string(resp.Data))

	_, q := fake.last()
	assert.Equal(t, "Unknown Pie", q.Get("recipe"))

	w = env.do(http.MethodGet, "/recommend/by_recipe", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDietaryOptionsEndpoint(t *testing.T) {
	env, _ := setupRecommendAPI(t)

	w := env.do(http.MethodGet, "/api/dietary-options", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp types.RecommendResponse
	decode(t, w, &resp)
	var options map[string][]string
	require.NoError(t, json.Unmarshal(resp.Data, &options))
	assert.Equal(t, []string{"vegan"}, options["dietary"])
}

func TestRecommenderUnavailable(t *testing.T) {
	recommender := new(mocks.MockRecommender)
	recommender.On("ByIngredients", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: dial tcp: connection refused", service.ErrRecommenderUnavailable))
	recommender.On("Health", mock.Anything).Return(context.DeadlineExceeded)

	env := setupTestAPI(t, withRecommender(recommender))

	w := env.do(http.MethodGet, "/api/recommend/by_ingredients?ingredients=egg", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp types.RecommendResponse
	decode(t, w, &resp)
	assert.Equal(t, "error", resp.Status)
	assert.JSONEq(t, `[]`, string(resp.Data))

	w = env.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var health HealthResponse
	decode(t, w, &health)
	assert.Equal(t, "degraded", health.Status)
	assert.Equal(t, "down", health.Recommender)

	recommender.AssertExpectations(t)
}

func TestRecommendRoutesAbsentWithoutService(t *testing.T) {
	env := setupTestAPI(t)
	w := env.do(http.MethodGet, "/api/search?ingredients=egg", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
