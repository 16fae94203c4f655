package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-ops/services"
	"hotel-ops/utils"
)

const (
	StaffIDKey = "staff_id"
	RoleKey    = "role"
	HotelIDKey = "hotel_id"
)

// RequireAuth accepts "Authorization: Bearer <jwt>" and stores the staff ID
// and role on the context.
func RequireAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}
		claims, err := auth.ParseToken(strings.TrimSpace(token))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}
		c.Set(StaffIDKey, claims.StaffID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}
