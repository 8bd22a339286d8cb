package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cookmate/backend/internal/service"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

// errorMapping is the fixed status and message returned for a domain error
type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{service.ErrDuplicateFavorite, http.StatusBadRequest, "This recipe is already in the favorites."},
	{service.ErrFavoriteNotFound, http.StatusNotFound, "The recipe is not in the user's favorites."},
	{service.ErrRatingRequiresFavorite, http.StatusNotFound, "Recipe is not in the user's favorite list."},
	{service.ErrDuplicateRating, http.StatusBadRequest, "User has already rated this recipe."},
	{service.ErrRecipeNotFound, http.StatusNotFound, "Recipe not found"},
	{service.ErrEmailTaken, http.StatusConflict, "Email is already registered"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Incorrect email or password"},
	{service.ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrRecommenderUnavailable, http.StatusServiceUnavailable, "Recommendation service is unavailable"},
}

// respondError writes the envelope for err. Unknown errors are logged and reported as 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			c.JSON(m.status, MessageResponse{Status: statusWord(m.status), Message: m.message})
			return
		}
	}

	var ve *service.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, MessageResponse{Status: statusFail, Message: ve.Error()})
		return
	}

	_ = c.Error(err)
	log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err))

	var se *service.StorageError
	if errors.As(err, &se) {
		c.JSON(http.StatusInternalServerError, MessageResponse{
			Status:  statusError,
			Message: "An error occurred while processing the request.",
			Error:   se.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, MessageResponse{Status: statusError, Message: "Internal Server Error"})
}

func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Status: statusFail, Message: message})
}

func statusWord(code int) string {
	if code >= http.StatusInternalServerError {
		return statusError
	}
	return statusFail
}

// pathID parses a positive integer path parameter, writing a 400 when it is not one.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondFail(c, http.StatusBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
