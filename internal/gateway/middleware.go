package gateway

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userKey = "user_uuid"

// extractToken looks in the token cookie first, then the Authorization
// header. The cookie wins when both are present.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// RequireAuth rejects requests without a valid token and stores the token
// subject (the user uuid) on the context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			respondFail(c, http.StatusUnauthorized, "you are not logged in")
			c.Abort()
			return
		}

		sub, err := ParseToken(tokenString, secret)
		if err != nil {
			respondFail(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(userKey, sub)
		c.Next()
	}
}

// UserUUID returns the authenticated caller's uuid.
func UserUUID(c *gin.Context) (string, bool) {
	v, exists := c.Get(userKey)
	if !exists {
		return "", false
	}
	sub, ok := v.(string)
	return sub, ok && sub != ""
}
