package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-ops/middleware"
	"hotel-ops/reports"
	"hotel-ops/services"
	"hotel-ops/utils"
	"hotel-ops/validation"
)

// respondError maps service errors onto status codes and the response
// envelope.
func respondError(c *gin.Context, err error) {
	if fields, ok := validation.AsErrors(err); ok {
		utils.JSONValidation(c, http.StatusUnprocessableEntity, fields)
		return
	}
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrNoActiveHotel):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalid):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// bindJSON binds the body into form and answers 400 itself on failure.
func bindJSON(c *gin.Context, form interface{}) bool {
	if err := c.ShouldBindJSON(form); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

func hotelID(c *gin.Context) uint { return c.GetUint(middleware.HotelIDKey) }

func staffID(c *gin.Context) uint { return c.GetUint(middleware.StaffIDKey) }

func periodParam(c *gin.Context) (reports.Period, bool) {
	p, err := reports.ParsePeriod(c.Query("period"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return "", false
	}
	return p, true
}

func uintQuery(c *gin.Context, key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil || n == 0 {
		utils.JSONError(c, http.StatusBadRequest, "query parameter "+key+" must be a positive integer")
		return 0, false
	}
	return uint(n), true
}
