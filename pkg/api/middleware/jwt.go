package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/summitfg/summit-api/pkg/auth"
	"github.com/summitfg/summit-api/pkg/models"
)

// JWTMiddleware creates a JWT authentication middleware
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "missing_token",
					Message: "Authorization header is required",
				})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token_format",
					Message: "Authorization header must be 'Bearer {token}'",
				})
			}

			claims, err := auth.ValidateJWT(parts[1], secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token",
					Message: "Token is invalid or expired",
				})
			}

			// Set user info in context
			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)

			return next(c)
		}
	}
}

// RequireFounder rejects requests whose token does not carry the founder role.
// Must run after JWTMiddleware.
func RequireFounder() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("user_role").(string)
			if role != models.RoleFounder {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:   "forbidden",
					Message: "This action requires the founder role.",
				})
			}
			return next(c)
		}
	}
}
