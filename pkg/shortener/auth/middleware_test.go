package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

const testKey = "super-secret-key"

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", APIKeyMiddleware(testKey), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "ok"})
	})
	return r
}

func TestAPIKeyMiddlewareValidKey(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set(HeaderName, testKey)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.Code)
	}
}

func TestAPIKeyMiddlewareRejects(t *testing.T) {
	router := setupTestRouter()

	cases := []struct {
		name string
		key  string
		set  bool
	}{
		{"missing header", "", false},
		{"empty key", "", true},
		{"wrong key", "wrong-key", true},
		{"case mismatch", "SUPER-SECRET-KEY", true},
		{"padded key", " " + testKey, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", "/protected", nil)
			if tc.set {
				req.Header.Set(HeaderName, tc.key)
			}
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			if resp.Code != http.StatusUnauthorized {
				t.Errorf("Expected status 401, got %d", resp.Code)
			}
		})
	}
}
