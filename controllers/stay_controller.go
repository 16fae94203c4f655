package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops/services"
	"hotel-ops/utils"
	"hotel-ops/validation"
)

// StayController serves reservations, bookings and walk-ins.
type StayController struct {
	StaySvc *services.StayService
}

func NewStayController(svc *services.StayService) *StayController {
	return &StayController{StaySvc: svc}
}

func (sc *StayController) GetStays(c *gin.Context) {
	period, ok := periodParam(c)
	if !ok {
		return
	}
	stays, err := sc.StaySvc.List(c.Request.Context(), hotelID(c), period)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stays)
}

func (sc *StayController) CreateStay(c *gin.Context) {
	var form validation.StayForm
	if !bindJSON(c, &form) {
		return
	}
	stay, err := sc.StaySvc.Create(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, stay)
}

func (sc *StayController) UpdateStay(c *gin.Context) {
	var form validation.StayUpdateForm
	if !bindJSON(c, &form) {
		return
	}
	stay, err := sc.StaySvc.Update(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stay)
}
