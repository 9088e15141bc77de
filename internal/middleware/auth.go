package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/strideline/routes-backend-go/pkg/response"
)

const userIDKey = "userID"

// Auth validates the Bearer token and stores the authenticated user id
// in the request context. Tokens are issued by the account service;
// this backend only verifies them.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Missing bearer token", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", err)
			c.Abort()
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || subject == "" {
			response.Error(c, http.StatusUnauthorized, "Token has no subject", err)
			c.Abort()
			return
		}
		userID, err := strconv.ParseInt(subject, 10, 64)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Token subject is not a user id", err)
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user id set by Auth.
func UserIDFromContext(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
