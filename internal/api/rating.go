package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cookmate/backend/internal/middleware"
	"github.com/cookmate/backend/internal/service"
	"github.com/cookmate/backend/internal/types"
)

type RatingHandler struct {
	favorites service.IFavoriteService
	auth      middleware.TokenValidator
	limiter   *middleware.RateLimiter
	log       *zap.Logger
}

func NewRatingHandler(favorites service.IFavoriteService, auth middleware.TokenValidator, limiter *middleware.RateLimiter, log *zap.Logger) *RatingHandler {
	return &RatingHandler{favorites: favorites, auth: auth, limiter: limiter, log: log}
}

func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	rating := router.Group("/rating")
	{
		rating.POST("/addRating/:userId",
			middleware.AuthMiddleware(h.auth),
			middleware.RequireSelf("userId"),
			h.limiter.RateLimitMiddleware(),
			h.AddRating)
		rating.GET("/getRating/:userId",
			middleware.AuthMiddleware(h.auth),
			middleware.RequireSelf("userId"),
			h.GetRating)
		rating.GET("/summary/:recipeId", h.Summary)
	}
}

func (h *RatingHandler) AddRating(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req types.AddRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	value := req.Value()
	if value == nil {
		respondFail(c, http.StatusBadRequest, "rating is required")
		return
	}

	rating, err := h.favorites.AddRating(c.Request.Context(), userID, req.RecipeID, *value)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, AddRatingResponse{
		Status:     statusSuccess,
		Message:    "Rating added successfully!",
		RatingFood: rating,
	})
}

// GetRating lists the user's rated recipes as a bare JSON array.
func (h *RatingHandler) GetRating(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	rated, err := h.favorites.GetRatingsWithRecipes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if rated == nil {
		rated = []service.RatedRecipe{}
	}
	c.JSON(http.StatusOK, rated)
}

func (h *RatingHandler) Summary(c *gin.Context) {
	recipeID, ok := pathID(c, "recipeId")
	if !ok {
		return
	}

	summary, err := h.favorites.RatingSummary(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
