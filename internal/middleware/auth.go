package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/stackit/stackit-api/internal/constants"
	apierrors "github.com/stackit/stackit-api/internal/errors"
)

// RequireAuth checks if the user is authenticated via session. Login stores
// the user ID as uint64; a session value of any other shape is treated the
// same as no session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		userID, ok := session.Get(constants.ContextKeyUserID).(uint64)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := value.(uint64)
	return id, ok
}
