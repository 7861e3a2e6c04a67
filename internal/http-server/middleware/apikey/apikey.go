package apikey

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"labcatalog/internal/lib/api/response"
)

const (
	CodeKeyRequired = "API_KEY_REQUIRED"
	CodeKeyInvalid  = "INVALID_API_KEY"
)

// New gates every route behind the shared API key, except paths on the
// public allowlist. An allowlist entry ending in "/*" matches by prefix.
// The key is accepted from the x-api-key header, an Authorization bearer
// token, or the api_key query parameter.
func New(log *slog.Logger, key string, publicPaths []string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("component", "middleware/apikey"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path, publicPaths) {
				next.ServeHTTP(w, r)
				return
			}

			supplied := extractKey(r)
			if supplied == "" {
				log.Warn("request without api key", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.ErrorCode("API key required", CodeKeyRequired))
				return
			}

			if supplied != key {
				log.Warn("request with invalid api key", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.ErrorCode("invalid API key", CodeKeyInvalid))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func isPublic(path string, publicPaths []string) bool {
	for _, p := range publicPaths {
		if prefix, ok := strings.CutSuffix(p, "/*"); ok {
			if strings.HasPrefix(path, prefix) {
				return true
			}
			continue
		}
		if path == p {
			return true
		}
	}
	return false
}

func extractKey(r *http.Request) string {
	if k := r.Header.Get("x-api-key"); k != "" {
		return k
	}
	if auth := r.Header.Get("Authorization"); auth != "" {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return r.URL.Query().Get("api_key")
}
