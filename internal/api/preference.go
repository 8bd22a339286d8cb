package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cookmate/backend/internal/middleware"
	"github.com/cookmate/backend/internal/service"
	"github.com/cookmate/backend/internal/types"
)

type PreferenceHandler struct {
	prefs service.IPreferenceService
	auth  middleware.TokenValidator
	log   *zap.Logger
}

func NewPreferenceHandler(prefs service.IPreferenceService, auth middleware.TokenValidator, log *zap.Logger) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs, auth: auth, log: log}
}

func (h *PreferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	prefs := router.Group("/preferences")
	prefs.Use(middleware.AuthMiddleware(h.auth))
	{
		prefs.GET("/:userId", middleware.RequireSelf("userId"), h.GetPreferences)
		prefs.PUT("/:userId", middleware.RequireSelf("userId"), h.SavePreferences)
	}
}

func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	prefs, err := h.prefs.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *PreferenceHandler) SavePreferences(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req types.Preferences
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.prefs.Save(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
