package middleware

import (
	"net/http"

	"hotelops/internal/domain"
	"hotelops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated staff member holds one of the given roles.
func RequireRole(roles ...domain.StaffRole) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}

	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if !allowed[role.(string)] {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// SuperadminOnly restricts a route group to superadmins.
func SuperadminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleSuperadmin)
}

// StaffOnly admits any staff role, rejecting tokens minted for clients.
func StaffOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleReceptionist, domain.RoleSupervisor, domain.RoleSuperadmin)
}
