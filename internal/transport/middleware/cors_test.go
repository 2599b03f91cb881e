package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/transkana/internal/config"
)

func corsConfig(origins string) config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins:   origins,
		AllowedMethods:   "GET,POST,OPTIONS",
		AllowedHeaders:   "Content-Type,X-Request-Id",
		AllowCredentials: true,
		MaxAge:           86400,
	}
}

func preflight(origin string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/convert", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	return req
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		origins    string
		origin     string
		wantCode   int
		wantOrigin string
	}{
		{name: "listed origin", origins: "https://a.example, https://b.example", origin: "https://b.example", wantCode: http.StatusNoContent, wantOrigin: "https://b.example"},
		{name: "wildcard", origins: "*", origin: "https://any.example", wantCode: http.StatusNoContent, wantOrigin: "https://any.example"},
		{name: "unlisted origin", origins: "https://a.example", origin: "https://evil.example", wantCode: http.StatusForbidden},
		{name: "no origin", origins: "*", origin: "", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler must not be called for preflight")
			})

			rec := httptest.NewRecorder()
			CORS(corsConfig(tt.origins))(handler).ServeHTTP(rec, preflight(tt.origin))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "Origin", rec.Header().Get("Vary"))
			if tt.wantCode == http.StatusNoContent {
				assert.Equal(t, "GET,POST,OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
				assert.Equal(t, "Content-Type,X-Request-Id", rec.Header().Get("Access-Control-Allow-Headers"))
				assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
				assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}

func TestCORS_SimpleRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{name: "allowed", origin: "https://a.example", wantOrigin: "https://a.example"},
		{name: "disallowed still served", origin: "https://evil.example", wantOrigin: ""},
		{name: "same origin", origin: "", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			CORS(corsConfig("https://a.example"))(handler).ServeHTTP(rec, req)

			assert.True(t, called)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_PlainOptionsPassesThrough(t *testing.T) {
	t.Parallel()

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/convert", nil)
	rec := httptest.NewRecorder()
	CORS(corsConfig("*"))(handler).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
