package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newRequestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFromContext(c))
	})
	return r
}

func TestRequestIDKeepsCallerValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	resp := httptest.NewRecorder()
	newRequestIDRouter().ServeHTTP(resp, req)

	if got := resp.Header().Get(RequestIDHeader); got != "req-123" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
	if resp.Body.String() != "req-123" {
		t.Fatalf("expected request id in context, got %q", resp.Body.String())
	}
}

func TestRequestIDMintsForMissingOrInvalid(t *testing.T) {
	for _, in := range []string{"", "has space", strings.Repeat("x", maxRequestIDLen+1)} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if in != "" {
			req.Header.Set(RequestIDHeader, in)
		}
		resp := httptest.NewRecorder()
		newRequestIDRouter().ServeHTTP(resp, req)

		got := resp.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(got); err != nil {
			t.Fatalf("input %q: expected minted uuid, got %q", in, got)
		}
	}
}
