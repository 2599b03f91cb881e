package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tracing(name string, order *[]string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, name+">")
			next.ServeHTTP(w, r)
			*order = append(*order, "<"+name)
		})
	}
}

func TestChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mws  func(order *[]string) []Middleware
		want []string
	}{
		{
			name: "outermost first",
			mws: func(order *[]string) []Middleware {
				return []Middleware{tracing("id", order), tracing("log", order)}
			},
			want: []string{"id>", "log>", "handler", "<log", "<id"},
		},
		{
			name: "nil entries skipped",
			mws: func(order *[]string) []Middleware {
				return []Middleware{nil, tracing("cors", order), nil}
			},
			want: []string{"cors>", "handler", "<cors"},
		},
		{
			name: "empty",
			mws:  func(*[]string) []Middleware { return nil },
			want: []string{"handler"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var order []string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "handler")
				w.WriteHeader(http.StatusNoContent)
			})

			rec := httptest.NewRecorder()
			Chain(tt.mws(&order)...)(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.want, order)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}
