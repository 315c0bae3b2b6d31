package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"fleet-field-api/internal/response"
)

// Context keys set by Auth
const (
	ContextUserID = "user_id"
	ContextToken  = "jwtToken"
)

// Auth returns a middleware that validates HS256 bearer tokens signed with jwtSecret
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Invalid authorization header format")
			return
		}
		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c, "Invalid token claims")
			return
		}

		// "user_id" is ours, "sub" is the registered claim
		var userID string
		if uid, ok := claims["user_id"].(string); ok && uid != "" {
			userID = uid
		} else if sub, err := claims.GetSubject(); err == nil && sub != "" {
			userID = sub
		} else {
			unauthorized(c, "User ID not found in token")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextToken, tokenString)

		c.Next()
	}
}

// AuthWrites applies Auth to mutating requests only. Reads stay public.
func AuthWrites(jwtSecret string) gin.HandlerFunc {
	auth := Auth(jwtSecret)
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		auth(c)
	}
}

func unauthorized(c *gin.Context, message string) {
	response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, message)
	c.Abort()
}
