package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops/services"
	"hotel-ops/utils"
)

// RequireHotel resolves the caller's active hotel. Every hotel scoped route
// reads it from the context instead of trusting the request body.
func RequireHotel(hotels *services.HotelContextService) gin.HandlerFunc {
	return func(c *gin.Context) {
		hotelID, err := hotels.Active(c.Request.Context(), c.GetUint(StaffIDKey))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoActiveHotel):
				utils.JSONError(c, http.StatusConflict, err.Error())
			case errors.Is(err, services.ErrNotFound):
				utils.JSONError(c, http.StatusUnauthorized, "unknown staff member")
			default:
				log.Printf("❌ resolve active hotel: %v", err)
				utils.JSONError(c, http.StatusInternalServerError, "could not resolve active hotel")
			}
			c.Abort()
			return
		}
		c.Set(HotelIDKey, hotelID)
		c.Next()
	}
}
