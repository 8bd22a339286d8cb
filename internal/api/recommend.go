package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cookmate/backend/internal/middleware"
	"github.com/cookmate/backend/internal/service"
	"github.com/cookmate/backend/internal/types"
)

// RecommendHandler proxies search and recommendation calls to the AI service.
// A valid bearer token is optional; when present the user's saved
// preferences fill any filter the query leaves empty.
type RecommendHandler struct {
	recommender service.IRecommender
	prefs       service.IPreferenceService
	auth        middleware.TokenValidator
	log         *zap.Logger
}

func NewRecommendHandler(recommender service.IRecommender, prefs service.IPreferenceService, auth middleware.TokenValidator, log *zap.Logger) *RecommendHandler {
	return &RecommendHandler{recommender: recommender, prefs: prefs, auth: auth, log: log}
}

func (h *RecommendHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/search", h.Search)
	router.GET("/dietary-options", h.DietaryOptions)

	recommend := router.Group("/recommend")
	{
		recommend.GET("/by_ingredients", h.ByIngredients)
		recommend.GET("/by_recipe", h.ByRecipe)
	}
}

func (h *RecommendHandler) Search(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	resp, err := h.recommender.Search(c.Request.Context(), q)
	h.respond(c, resp, err)
}

func (h *RecommendHandler) ByIngredients(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	resp, err := h.recommender.ByIngredients(c.Request.Context(), q)
	h.respond(c, resp, err)
}

func (h *RecommendHandler) ByRecipe(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	resp, err := h.recommender.ByRecipe(c.Request.Context(), c.Query("recipe"), q)
	h.respond(c, resp, err)
}

func (h *RecommendHandler) DietaryOptions(c *gin.Context) {
	resp, err := h.recommender.DietaryOptions(c.Request.Context())
	h.respond(c, resp, err)
}

func (h *RecommendHandler) bindQuery(c *gin.Context) (*types.SearchQuery, bool) {
	var q types.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid search parameters")
		return nil, false
	}

	if token, ok := middleware.BearerToken(c); ok && h.auth != nil {
		if claims, err := h.auth.ValidateToken(token); err == nil {
			q.UserID = claims.UserID
		}
	}

	if q.UserID > 0 && h.prefs != nil {
		prefs, err := h.prefs.Get(c.Request.Context(), q.UserID)
		if err != nil {
			h.log.Warn("load search preferences", zap.Int64("user_id", q.UserID), zap.Error(err))
		} else {
			q.ApplyDefaults(prefs)
		}
	}
	return &q, true
}

// respond always answers with the normalized envelope so the client can read
// status and data regardless of what went wrong upstream.
func (h *RecommendHandler) respond(c *gin.Context, resp *types.RecommendResponse, err error) {
	if err != nil {
		if service.IsUnavailable(err) {
			h.log.Warn("recommendation service unavailable", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, &types.RecommendResponse{
				Status:  statusError,
				Data:    json.RawMessage("[]"),
				Message: "Recommendation service is unavailable",
			})
			return
		}
		respondError(c, h.log, err)
		return
	}

	code := resp.HTTPStatus
	if code < http.StatusBadRequest {
		code = http.StatusOK
	}
	c.JSON(code, resp)
}
