package middlewares

import (
	"log"
	"net/http"
	"strings"

	"qr-inventory/models"

	"github.com/gin-gonic/gin"
)

// RoleBasedAccessControl allows only the given roles through. Must run after
// AuthMiddleware, which stores the user in the context. The role comes from
// the users table, not from the token claims, so a role change takes effect
// on the next request.
func RoleBasedAccessControl(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userModel, ok := user.(*models.User)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		hasAccess := false
		userRole := strings.TrimSpace(strings.ToLower(userModel.Role))
		for _, allowedRole := range allowedRoles {
			if userRole == strings.TrimSpace(strings.ToLower(allowedRole)) {
				hasAccess = true
				break
			}
		}

		if !hasAccess {
			log.Printf("RoleBasedAccessControl: Access denied. User role=%s, Required roles=%v",
				userModel.Role, allowedRoles)
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		ctx.Next()
	}
}
