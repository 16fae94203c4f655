package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops/services"
	"hotel-ops/utils"
	"hotel-ops/validation"
)

type ScheduledServiceController struct {
	ServiceSvc *services.ScheduledServiceService
}

func NewScheduledServiceController(svc *services.ScheduledServiceService) *ScheduledServiceController {
	return &ScheduledServiceController{ServiceSvc: svc}
}

func (ssc *ScheduledServiceController) GetScheduledServices(c *gin.Context) {
	period, ok := periodParam(c)
	if !ok {
		return
	}
	out, err := ssc.ServiceSvc.List(c.Request.Context(), hotelID(c), period)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

func (ssc *ScheduledServiceController) ScheduleService(c *gin.Context) {
	var form validation.ScheduleServiceForm
	if !bindJSON(c, &form) {
		return
	}
	svc, err := ssc.ServiceSvc.Schedule(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, svc)
}

func (ssc *ScheduledServiceController) UpdateScheduledService(c *gin.Context) {
	var form validation.ServicePaymentForm
	if !bindJSON(c, &form) {
		return
	}
	svc, err := ssc.ServiceSvc.UpdatePayment(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, svc)
}
