package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

func validAPIKey(c *gin.Context, key string) bool {
	apiKey := c.GetHeader("X-API-KEY")
	if key == "" || apiKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1
}
