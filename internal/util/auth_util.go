package util

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Context key set by the auth middleware
const userIDKey = "user_id"

// UserID returns the authenticated user id, or "" when the request is anonymous
func UserID(c *gin.Context) string {
	value, exists := c.Get(userIDKey)
	if !exists {
		return ""
	}
	userID, ok := value.(string)
	if !ok {
		return ""
	}
	return userID
}

// QueryList collects a repeated or comma separated query parameter, dropping blanks.
// ?ids=a,b&ids=c yields [a b c].
func QueryList(c *gin.Context, key string) []string {
	var out []string
	for _, value := range c.QueryArray(key) {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
