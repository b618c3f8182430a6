package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath/internal/auth"
)

func TestJWTMiddleware(t *testing.T) {
	jwtService := auth.NewJWTService("router-secret")
	access, err := jwtService.GenerateAccessToken(5, "user@example.com")
	require.NoError(t, err)
	_, refresh, err := jwtService.GenerateRefreshToken(5, "user@example.com")
	require.NoError(t, err)
	foreign, err := auth.NewJWTService("other-secret").GenerateAccessToken(5, "user@example.com")
	require.NoError(t, err)

	e := echo.New()
	e.GET("/whoami", func(c echo.Context) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized)
		}
		return c.JSON(http.StatusOK, map[string]uint{"user_id": userID})
	}, JWTMiddleware("router-secret"))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"access token", "Bearer " + access, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong signature", "Bearer " + foreign, http.StatusUnauthorized},
		{"refresh token is not an access token", "Bearer " + refresh, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusOK {
				assert.JSONEq(t, `{"user_id":5}`, rec.Body.String())
			}
		})
	}
}

func TestCustomValidator(t *testing.T) {
	type req struct {
		Email string `validate:"required,email"`
	}
	v := &CustomValidator{validator: newValidator()}
	assert.NoError(t, v.Validate(&req{Email: "a@b.co"}))
	assert.Error(t, v.Validate(&req{Email: "nope"}))
}
