package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yuvrajghadi/thakkar-backend/internal/http/middlewares"
)

func corsRouter(origins []string) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.CORSMiddleware(origins))

	r.GET("/api/properties", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	return r
}

func TestCORSMiddleware(t *testing.T) {
	origins := []string{"https://example.com", "https://admin.example.com"}

	tests := []struct {
		name        string
		method      string
		origin      string
		wantStatus  int
		wantAllowed string
	}{
		{
			name:        "listed_origin_is_echoed",
			method:      http.MethodGet,
			origin:      "https://example.com",
			wantStatus:  http.StatusOK,
			wantAllowed: "https://example.com",
		},
		{
			name:       "unlisted_origin_gets_no_cors_headers",
			method:     http.MethodGet,
			origin:     "https://evil.example.net",
			wantStatus: http.StatusOK,
		},
		{
			name:       "no_origin_passes",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
		{
			name:        "preflight_is_answered_here",
			method:      http.MethodOptions,
			origin:      "https://admin.example.com",
			wantStatus:  http.StatusNoContent,
			wantAllowed: "https://admin.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := corsRouter(origins)

			req := httptest.NewRequest(tt.method, "/api/properties", nil)

			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d", w.Code, tt.wantStatus)
			}

			got := w.Header().Get("Access-Control-Allow-Origin")

			if got != tt.wantAllowed {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantAllowed)
			}
		})
	}
}
