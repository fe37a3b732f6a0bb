package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4/middleware"
)

// CORSConfig returns the CORS configuration used by the application.
// Centralised here so that both main.go and tests reference the same config.
func CORSConfig(allowedOrigins []string) middleware.CORSConfig {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	return middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}
}
