package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORS permite el origen del frontend configurado. Vacío o "*" permite cualquiera.
func CORS(frontendURL string) func(http.Handler) http.Handler {
	origins := []string{"*"}
	credentials := false
	if o := strings.TrimRight(strings.TrimSpace(frontendURL), "/"); o != "" && o != "*" {
		origins = []string{o}
		credentials = true
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: credentials,
		MaxAge:           300,
	})
}
