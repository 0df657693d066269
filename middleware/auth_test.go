package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func signed(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod, key interface{}) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func newRouter(apiKey, jwtSecret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", RequireAdmin(apiKey, jwtSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"auth": c.GetString("auth")})
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()
	past := time.Now().Add(-time.Hour).Unix()

	tests := []struct {
		name    string
		headers map[string]string
		want    int
	}{
		{"no credentials", nil, http.StatusUnauthorized},
		{"api key", map[string]string{"X-API-KEY": "k3y"}, http.StatusOK},
		{"wrong api key", map[string]string{"X-API-KEY": "nope"}, http.StatusUnauthorized},
		{"admin token", map[string]string{"Authorization": "Bearer " + signed(t, jwt.MapClaims{"sub": "1", "role": "admin", "exp": future}, jwt.SigningMethodHS256, []byte(secret))}, http.StatusOK},
		{"user token", map[string]string{"Authorization": "Bearer " + signed(t, jwt.MapClaims{"sub": "1", "role": "user", "exp": future}, jwt.SigningMethodHS256, []byte(secret))}, http.StatusUnauthorized},
		{"expired token", map[string]string{"Authorization": "Bearer " + signed(t, jwt.MapClaims{"role": "admin", "exp": past}, jwt.SigningMethodHS256, []byte(secret))}, http.StatusUnauthorized},
		{"foreign key", map[string]string{"Authorization": "Bearer " + signed(t, jwt.MapClaims{"role": "admin", "exp": future}, jwt.SigningMethodHS256, []byte("other"))}, http.StatusUnauthorized},
	}

	r := newRouter("k3y", secret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestRequireAdminEmptyKeyNeverMatches(t *testing.T) {
	r := newRouter("", "")
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-API-KEY", "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
