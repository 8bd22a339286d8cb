package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cookmate/backend/internal/middleware"
	"github.com/cookmate/backend/internal/service"
)

const recentFavoritesLimit = 5

// DashboardHandler serves the summary widgets of the signed-in user's home page
type DashboardHandler struct {
	favorites service.IFavoriteService
	prefs     service.IPreferenceService
	auth      middleware.TokenValidator
	log       *zap.Logger
}

func NewDashboardHandler(favorites service.IFavoriteService, prefs service.IPreferenceService, auth middleware.TokenValidator, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{favorites: favorites, prefs: prefs, auth: auth, log: log}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(h.auth))
	{
		dashboard.GET("/stats", h.GetStats)
		dashboard.GET("/favorites/recent", h.GetRecentFavorites)
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	Favorites   int    `json:"favorites"`
	Ratings     int    `json:"ratings"`
	ThisWeek    int    `json:"thisWeek"`
	PrimaryDiet string `json:"primaryDiet"`
}

// GetStats counts the user's favorites and ratings; ThisWeek is favorites added in the last 7 days.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	ctx := c.Request.Context()

	favorites, err := h.favorites.ListFavorites(ctx, userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	rated, err := h.favorites.GetRatingsWithRecipes(ctx, userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	stats := DashboardStats{Favorites: len(favorites), Ratings: len(rated)}
	weekAgo := time.Now().AddDate(0, 0, -7)
	for _, f := range favorites {
		if f.CreatedAt.After(weekAgo) {
			stats.ThisWeek++
		}
	}

	if h.prefs != nil {
		prefs, err := h.prefs.Get(ctx, userID)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		if len(prefs.Dietary) > 0 {
			stats.PrimaryDiet = prefs.Dietary[0]
		}
	}

	c.JSON(http.StatusOK, stats)
}

// GetRecentFavorites returns the newest favorites with their recipes, newest first.
func (h *DashboardHandler) GetRecentFavorites(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	details, err := h.favorites.ListFavoriteDetails(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	recent := make([]service.FavoriteDetail, 0, recentFavoritesLimit)
	for i := len(details) - 1; i >= 0 && len(recent) < recentFavoritesLimit; i-- {
		recent = append(recent, details[i])
	}
	c.JSON(http.StatusOK, recent)
}
