package middlewares

import (
	"net/http"
	"strings"

	"backend/entity"
	"backend/pkg/authz"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Auth verifies the Bearer token, resolves the caller's role from group
// membership and (if requiredRoles is non-empty) enforces it. The role comes
// from the store on every request, never from a token claim, so revoking a
// group membership takes effect immediately.
func Auth(db *gorm.DB, secret string, requiredRoles ...authz.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		var user entity.User
		if err := db.Preload("Groups").First(&user, claims.UserID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unknown user"})
			c.Abort()
			return
		}

		role := authz.Resolve(user.IsStaff, user.GroupNames())

		c.Set("userId", user.ID)
		c.Set("username", user.Username)
		c.Set("role", role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
