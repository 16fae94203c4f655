package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops/services"
	"hotel-ops/utils"
	"hotel-ops/validation"
)

type RoomTypeController struct {
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypeSvc: svc}
}

func (rtc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := rtc.RoomTypeSvc.List(c.Request.Context(), hotelID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (rtc *RoomTypeController) CreateRoomType(c *gin.Context) {
	var form validation.RoomTypeForm
	if !bindJSON(c, &form) {
		return
	}
	rt, err := rtc.RoomTypeSvc.Create(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

func (rtc *RoomTypeController) UpdateRoomType(c *gin.Context) {
	var form validation.RoomTypeForm
	if !bindJSON(c, &form) {
		return
	}
	rt, err := rtc.RoomTypeSvc.Update(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

// DeleteRoomType handles DELETE /hotel/delete-room-type?id=
func (rtc *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := uintQuery(c, "id")
	if !ok {
		return
	}
	if err := rtc.RoomTypeSvc.Delete(c.Request.Context(), hotelID(c), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}
