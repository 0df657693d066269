package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAdmin lets a request through when it carries the admin X-API-KEY
// or an HS256 bearer token whose "role" claim is "admin".
func RequireAdmin(apiKey, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if validAPIKey(c, apiKey) {
			c.Set("auth", "api_key")
			c.Next()
			return
		}

		claims, err := adminClaims(c.GetHeader("Authorization"), jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing admin credentials"})
			c.Abort()
			return
		}

		c.Set("auth", "jwt")
		c.Set("user_id", claims["sub"])
		c.Next()
	}
}

func adminClaims(header, secret string) (jwt.MapClaims, error) {
	if secret == "" {
		return nil, errors.New("jwt auth disabled")
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if tokenString == "" {
		return nil, errors.New("authorization header is missing")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return nil, errors.New("not an admin token")
	}
	return claims, nil
}
