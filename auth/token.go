package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const adminTokenTTL = 12 * time.Hour

// POST /admin/token
// Exchanges a valid admin API key for a bearer token.
func IssueAdminTokenHandler(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, expiresAt, err := IssueAdminToken(secret, adminTokenTTL)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}

// IssueAdminToken signs an HS256 token with role=admin valid for ttl.
func IssueAdminToken(secret string, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET is not set")
	}
	expiresAt := time.Now().Add(ttl)
	claims := jwt.MapClaims{
		"sub":  "admin_" + generateRandomString(8),
		"role": "admin",
		"exp":  expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	return signed, expiresAt, err
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_admin"
	}
	return hex.EncodeToString(bytes)
}
