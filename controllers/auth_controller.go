package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops/services"
	"hotel-ops/utils"
	"hotel-ops/validation"
)

type AuthController struct {
	AuthSvc  *services.AuthService
	StaffSvc *services.StaffService
}

func NewAuthController(auth *services.AuthService, staff *services.StaffService) *AuthController {
	return &AuthController{AuthSvc: auth, StaffSvc: staff}
}

// Login handles POST /auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var form validation.LoginForm
	if !bindJSON(c, &form) {
		return
	}
	sess, err := ac.AuthSvc.Login(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}
	log.Printf("🔑 staff %d logged in", sess.Staff.ID)
	utils.JSONSuccess(c, http.StatusOK, sess)
}

// ListStaff handles GET /hotel/staff.
func (ac *AuthController) ListStaff(c *gin.Context) {
	staff, err := ac.StaffSvc.List(c.Request.Context(), hotelID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}
