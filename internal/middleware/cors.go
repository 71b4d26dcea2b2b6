package middleware

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the browser UI (served separately) to call the API.
// CORS_ORIGINS is a comma-separated allowlist; empty means localhost dev.
func CORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:8080",
		}
	}

	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{
		"Origin", "Content-Type", "Accept", "X-Request-ID",
	}
	cfg.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	cfg.MaxAge = 12 * time.Hour

	return cors.New(cfg)
}
