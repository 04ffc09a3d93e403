package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "pong"})
	})
	return r
}

func TestRequestIDGenerated(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/ping", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a generated X-Request-ID header")
	}
}

func TestRequestIDPropagated(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if got := resp.Header().Get("X-Request-ID"); got != "caller-supplied-id" {
		t.Errorf("Expected propagated request id, got %q", got)
	}
}
