package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/shop-api/apperr"
)

// Error writes err as {"error": msg} with the status its kind maps to.
func Error(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": apperr.Message(err)})
}

// ParseID reads a positive id from raw, naming it field in the error.
func ParseID(raw, field string) (uint, error) {
	if raw == "" {
		return 0, apperr.E("parse", apperr.InvalidArgument, field+" is required")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.E("parse", apperr.InvalidArgument, "Invalid "+field)
	}
	return uint(id), nil
}

// QueryID reads a positive id from query parameter key.
func QueryID(c *gin.Context, key string) (uint, error) {
	return ParseID(c.Query(key), key)
}
