package auth

import "github.com/gin-gonic/gin"

// GetUserID returns the authenticated user's ID or empty string.
// Service-token calls carry no user identity.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// IsServiceCall reports whether the request was authenticated with the
// shared service token rather than a user JWT.
func IsServiceCall(c *gin.Context) bool {
	if v, ok := c.Get("serviceCall"); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
