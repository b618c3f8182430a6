package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextKey is where the JWT middleware stores the parsed token.
const ContextKey = "user"

// NewClaims is handed to the echo-jwt middleware so tokens parse into Claims.
func NewClaims(c echo.Context) jwt.Claims {
	return new(Claims)
}

// UserIDFromContext returns the authenticated user id placed on the context by the JWT middleware.
// Refresh tokens carry a token id and are not accepted here.
func UserIDFromContext(c echo.Context) (uint, error) {
	token, ok := c.Get(ContextKey).(*jwt.Token)
	if !ok || token == nil {
		return 0, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.ID != "" {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
