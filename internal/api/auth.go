package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cookmate/backend/internal/middleware"
	"github.com/cookmate/backend/internal/service"
	"github.com/cookmate/backend/internal/types"
)

const authCookie = "authToken"

type AuthHandler struct {
	auth         service.IAuthService
	limiter      *middleware.RateLimiter
	secureCookie bool
	log          *zap.Logger
}

func NewAuthHandler(auth service.IAuthService, limiter *middleware.RateLimiter, secureCookie bool, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter, secureCookie: secureCookie, log: log}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.limiter.RateLimitMiddleware(), h.Signup)
		auth.POST("/login", h.limiter.RateLimitMiddleware(), h.Login)
		auth.GET("/tokenToId", h.TokenToID)
		auth.POST("/signout", h.Signout)
		auth.DELETE("/deleteAccount", middleware.AuthMiddleware(h.auth), h.DeleteAccount)
		auth.DELETE("/delete-account", middleware.AuthMiddleware(h.auth), h.DeleteAccount)
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if req.Email == "" || req.Password == "" {
			respondFail(c, http.StatusBadRequest, "Email and password are required!")
			return
		}
		respondFail(c, http.StatusBadRequest, "Invalid signup data: "+err.Error())
		return
	}

	user, token, err := h.auth.Signup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, SignupResponse{
		Status:  statusSuccess,
		Message: "User created successfully",
		Data:    SignupData{User: user, Token: token},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		respondFail(c, http.StatusBadRequest, "Email and password are required!")
		return
	}

	_, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Status:  statusSuccess,
		Message: "User logged in successfully",
		Token:   token,
	})
}

// TokenToID resolves the bearer token to its user id.
func (h *AuthHandler) TokenToID(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, TokenToIDResponse{Message: "Authorization header is missing or invalid"})
		return
	}

	claims, err := h.auth.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, TokenToIDResponse{Message: "Invalid or expired token"})
		return
	}
	c.JSON(http.StatusOK, TokenToIDResponse{Success: true, UserID: claims.UserID})
}

func (h *AuthHandler) Signout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(authCookie, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	err := h.auth.DeleteAccount(c.Request.Context(), userID)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	case err != nil:
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
