package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cookmate/backend/internal/database"
	"github.com/cookmate/backend/internal/service"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports dependency status. Only the database decides the status code.
type HealthHandler struct {
	db          *gorm.DB
	redis       *redis.Client
	recommender service.IRecommender
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, recommender service.IRecommender) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient, recommender: recommender}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	resp := HealthResponse{Status: "healthy", Database: "up", Redis: "disabled", Recommender: "disabled"}
	code := http.StatusOK

	if err := database.HealthCheck(ctx, h.db); err != nil {
		resp.Status = "unhealthy"
		resp.Database = "down"
		code = http.StatusServiceUnavailable
	}

	if h.redis != nil {
		resp.Redis = "up"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			resp.Redis = "down"
		}
	}

	if h.recommender != nil {
		resp.Recommender = "up"
		if err := h.recommender.Health(ctx); err != nil {
			resp.Recommender = "down"
		}
	}

	if code == http.StatusOK && (resp.Redis == "down" || resp.Recommender == "down") {
		resp.Status = "degraded"
	}

	c.JSON(code, resp)
}
