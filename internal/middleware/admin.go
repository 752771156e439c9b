package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/stackit/stackit-api/internal/constants"
	"github.com/stackit/stackit-api/internal/database"
	apierrors "github.com/stackit/stackit-api/internal/errors"
	"github.com/stackit/stackit-api/internal/models"
)

// RequireAdmin verifies the authenticated user carries the ADMIN role.
// Must run after RequireAuth: a missing identity is a 401 there, a present
// identity with the wrong role is a 403 here. Every admin endpoint composes
// these two guards instead of re-checking inline.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var user models.User
		if err := database.GetDB().Select("id", "role").First(&user, userID).Error; err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if user.Role != models.RoleAdmin {
			apierrors.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyRole, user.Role)
		c.Next()
	}
}
