package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/ewallet/internal/services"
)

type AdminMiddleware struct {
	membershipService *services.MembershipService
}

func NewAdminMiddleware(membershipService *services.MembershipService) *AdminMiddleware {
	return &AdminMiddleware{membershipService: membershipService}
}

// RequireAdmin must run after RequireClient.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil {
			abortWithError(c, http.StatusUnauthorized, "user:access_token_not_found",
				"authentication required")
			return
		}

		isAdmin, err := m.membershipService.IsAdmin(user)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "server:internal_server_error", err.Error())
			return
		}

		if !isAdmin {
			abortWithError(c, http.StatusForbidden, "unauthorized",
				"You are not allowed to perform the requested operation.")
			return
		}

		c.Next()
	}
}
