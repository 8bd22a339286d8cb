package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cookmate/backend/internal/middleware"
	"github.com/cookmate/backend/internal/service"
)

// Dependencies are the services the HTTP layer is built from
type Dependencies struct {
	DB          *gorm.DB
	Redis       *redis.Client
	Auth        service.IAuthService
	Favorites   service.IFavoriteService
	Recipes     service.IRecipeService
	Preferences service.IPreferenceService
	Recommender service.IRecommender

	// WriteLimiter may be nil or wrap a nil client; limiting is then skipped.
	WriteLimiter        *middleware.RateLimiter
	FavoritesEmptyAs404 bool
	SecureCookies       bool
	Logger              *zap.Logger
}

// SetupAPI registers every route on router.
func SetupAPI(router *gin.Engine, deps *Dependencies) {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	health := NewHealthHandler(deps.DB, deps.Redis, deps.Recommender)
	router.GET("/health", health.HealthCheck)

	api := router.Group("/api")
	api.GET("/health", health.HealthCheck)

	NewAuthHandler(deps.Auth, deps.WriteLimiter, deps.SecureCookies, log).RegisterRoutes(api)
	NewFavoriteHandler(deps.Favorites, deps.Auth, deps.WriteLimiter, deps.FavoritesEmptyAs404, log).RegisterRoutes(api)
	NewRatingHandler(deps.Favorites, deps.Auth, deps.WriteLimiter, log).RegisterRoutes(api)
	NewRecipeHandler(deps.Recipes, log).RegisterRoutes(api)
	NewPreferenceHandler(deps.Preferences, deps.Auth, log).RegisterRoutes(api)
	NewDashboardHandler(deps.Favorites, deps.Preferences, deps.Auth, log).RegisterRoutes(api)

	if deps.Recommender != nil {
		recommend := NewRecommendHandler(deps.Recommender, deps.Preferences, deps.Auth, log)
		recommend.RegisterRoutes(api)
		// the web client calls the recommendation paths without the /api prefix
		recommend.RegisterRoutes(&router.RouterGroup)
	}

	router.NoRoute(func(c *gin.Context) {
		respondFail(c, http.StatusNotFound, "Route not found")
	})
}
