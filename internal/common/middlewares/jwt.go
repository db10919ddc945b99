package middlewares

import (
	"net/http"
	"strings"

	"github.com/c14220110/penjadwalan-backend/pkg/utils"
	"github.com/labstack/echo/v4"
)

// Tipe kustom untuk context key
type contextKey string

const (
	ContextKeyClaims contextKey = "claims"
)

// JWTMiddlewareManagement memastikan request membawa token manajemen yang valid
// sebelum diteruskan ke handler. Klaim disimpan pada context echo.
func JWTMiddlewareManagement(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"status":  http.StatusUnauthorized,
				"message": "Authorization header missing",
				"data":    nil,
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"status":  http.StatusUnauthorized,
				"message": "Invalid authorization header",
				"data":    nil,
			})
		}

		claims, err := utils.ValidateJWTToken(parts[1])
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"status":  http.StatusUnauthorized,
				"message": "Invalid token: " + err.Error(),
				"data":    nil,
			})
		}

		c.Set(string(ContextKeyClaims), claims)
		return next(c)
	}
}
