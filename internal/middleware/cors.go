package middleware

import (
	"net/http"
	"slices"

	"polar-backend/internal/config"

	"github.com/rs/cors"
)

// NewCORS allows the desk frontend to call the API. Credentials are only
// allowed for an explicit origin list; Content-Disposition is exposed so
// report downloads keep their file names.
func NewCORS(cfg *config.Config) func(http.Handler) http.Handler {
	origins := cfg.Server.CorsAllowedOrigins
	wildcard := len(origins) == 0 || slices.Contains(origins, "*")
	if wildcard {
		origins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   cfg.Server.CorsAllowedMethods,
		AllowedHeaders:   cfg.Server.CorsAllowedHeaders,
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: !wildcard,
		MaxAge:           300, // 5 minutes
	})

	return c.Handler
}
