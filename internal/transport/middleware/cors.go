package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/transkana/internal/config"
)

// CORS lets browser clients call the convert API from other origins.
// Preflight requests (OPTIONS with Access-Control-Request-Method) are
// answered here: 204 for an allowed origin, 403 otherwise.
func CORS(cfg config.CORSConfig) Middleware {
	allowAny, origins := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	allowed := func(origin string) bool {
		return origin != "" && (allowAny || origins[origin])
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if !allowed(origin) {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				setAllowOrigin(w, origin, cfg.AllowCredentials)
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if allowed(origin) {
				setAllowOrigin(w, origin, cfg.AllowCredentials)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func setAllowOrigin(w http.ResponseWriter, origin string, credentials bool) {
	w.Header().Set("Access-Control-Allow-Origin", origin)
	if credentials {
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
}

func parseOrigins(list string) (bool, map[string]bool) {
	set := make(map[string]bool)
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			return true, nil
		}
		if o != "" {
			set[o] = true
		}
	}
	return false, set
}
