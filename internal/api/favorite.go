package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cookmate/backend/internal/middleware"
	"github.com/cookmate/backend/internal/models"
	"github.com/cookmate/backend/internal/service"
	"github.com/cookmate/backend/internal/types"
)

type FavoriteHandler struct {
	favorites  service.IFavoriteService
	auth       middleware.TokenValidator
	limiter    *middleware.RateLimiter
	emptyAs404 bool
	log        *zap.Logger
}

func NewFavoriteHandler(favorites service.IFavoriteService, auth middleware.TokenValidator, limiter *middleware.RateLimiter, emptyAs404 bool, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favorites:  favorites,
		auth:       auth,
		limiter:    limiter,
		emptyAs404: emptyAs404,
		log:        log,
	}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	favorite := router.Group("/favorite")
	favorite.Use(middleware.AuthMiddleware(h.auth))
	{
		favorite.POST("/addFavorite", h.limiter.RateLimitMiddleware(), h.AddFavorite)
		favorite.GET("/getFavorites/:userId", middleware.RequireSelf("userId"), h.GetFavorites)
		favorite.GET("/getFavoriteDetails/:userId", middleware.RequireSelf("userId"), h.GetFavoriteDetails)
		favorite.DELETE("/removeFavorite/:userId/:recipeId", middleware.RequireSelf("userId"), h.limiter.RateLimitMiddleware(), h.RemoveFavorite)
	}

	// path used by the web client's favorites page
	router.GET("/favorites/:userId", middleware.AuthMiddleware(h.auth), middleware.RequireSelf("userId"), h.GetFavorites)
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var req types.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID > 0 && !middleware.IsSelf(c, req.UserID) {
		respondFail(c, http.StatusForbidden, "You are not allowed to access another user's data")
		return
	}

	fav, err := h.favorites.AddFavorite(c.Request.Context(), req.UserID, req.RecipeID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, AddFavoriteResponse{
		Status:       statusSuccess,
		Message:      "Recipe added to favorites successfully!",
		FavoriteFood: fav,
	})
}

func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	favorites, err := h.favorites.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if len(favorites) == 0 && h.emptyAs404 {
		respondFail(c, http.StatusNotFound, "No favorite recipes found for this user.")
		return
	}
	if favorites == nil {
		favorites = []models.FavoriteRecipe{}
	}

	c.JSON(http.StatusOK, FavoritesResponse{
		Status:    statusSuccess,
		Message:   "Favorite recipes retrieved successfully.",
		Favorites: favorites,
	})
}

// GetFavoriteDetails answers with a bare JSON array, as the web client expects.
func (h *FavoriteHandler) GetFavoriteDetails(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	details, err := h.favorites.ListFavoriteDetails(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if details == nil {
		details = []service.FavoriteDetail{}
	}
	c.JSON(http.StatusOK, details)
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	recipeID, ok := pathID(c, "recipeId")
	if !ok {
		return
	}

	if err := h.favorites.RemoveFavorite(c.Request.Context(), userID, recipeID); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Status: statusSuccess, Message: "Recipe removed from favorites successfully!"})
}
