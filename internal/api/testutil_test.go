package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cookmate/backend/internal/middleware"
	"github.com/cookmate/backend/internal/service"
	"github.com/cookmate/backend/internal/store"
	"github.com/cookmate/backend/internal/testhelpers"
)

const testSecret = "test-secret"

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

type envOption func(*Dependencies)

func withRecommender(r service.IRecommender) envOption {
	return func(d *Dependencies) { d.Recommender = r }
}

func withEmptyAs404() envOption {
	return func(d *Dependencies) { d.FavoritesEmptyAs404 = true }
}

// setupTestAPI wires the real services over an in-memory SQLite database.
func setupTestAPI(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLite(t)
	favorites := store.NewFavoriteStore(db)
	ratings := store.NewRatingStore(db)
	recipes := store.NewRecipeStore(db)
	authSvc := service.NewAuthService(db, testSecret, time.Hour, nil)

	deps := &Dependencies{
		DB:          db,
		Auth:        authSvc,
		Favorites:   service.NewFavoriteService(favorites, ratings, recipes, service.NewTransactor(db, favorites, ratings), nil),
		Recipes:     service.NewRecipeService(recipes, ratings, nil),
		Preferences: service.NewPreferenceService(store.NewPreferenceStore(db)),
	}
	for _, opt := range opts {
		opt(deps)
	}

	router := gin.New()
	router.Use(middleware.Recovery(zap.NewNop()))
	SetupAPI(router, deps)

	return &testEnv{router: router, db: db, auth: authSvc}
}

// createUserAndToken inserts a user and returns its id with a signed token.
func (e *testEnv) createUserAndToken(t *testing.T, email string) (int64, string) {
	t.Helper()
	user := testhelpers.CreateTestUser(t, e.db, email)
	token, err := e.auth.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return user.ID, token
}

func (e *testEnv) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	return performRequest(e.router, method, path, body, token)
}

// performRequest performs an HTTP request with an optional JWT token
func performRequest(router http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		var raw []byte
		switch b := body.(type) {
		case string:
			raw = []byte(b)
		default:
			var err error
			raw, err = json.Marshal(body)
			if err != nil {
				panic(err)
			}
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
}
