package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in a JWT token. The web client reads the user id from "id".
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"id"`
}
