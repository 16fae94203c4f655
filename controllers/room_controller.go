package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops/services"
	"hotel-ops/utils"
	"hotel-ops/validation"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// ----------------------------------------------------
// GET /hotel/rooms
// ----------------------------------------------------

func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.RoomSvc.List(c.Request.Context(), hotelID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// ----------------------------------------------------
// POST /hotel/add-room
// ----------------------------------------------------

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var form validation.RoomForm
	if !bindJSON(c, &form) {
		return
	}
	room, err := rc.RoomSvc.Create(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// ----------------------------------------------------
// PUT /hotel/update-room
// ----------------------------------------------------

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	var form validation.RoomForm
	if !bindJSON(c, &form) {
		return
	}
	room, err := rc.RoomSvc.Update(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// PUT /hotel/update-room-status
// ----------------------------------------------------

func (rc *RoomController) UpdateRoomStatus(c *gin.Context) {
	var form validation.RoomStatusForm
	if !bindJSON(c, &form) {
		return
	}
	room, err := rc.RoomSvc.UpdateStatus(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	log.Printf("🛏️ room %s -> %s", room.RoomNumber, room.Status)
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// PATCH /hotel/mark-room-for-cleaning
// ----------------------------------------------------

func (rc *RoomController) MarkForCleaning(c *gin.Context) {
	var form validation.MarkCleaningForm
	if !bindJSON(c, &form) {
		return
	}
	room, err := rc.RoomSvc.MarkForCleaning(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	log.Printf("🧹 room %s marked for cleaning", room.RoomNumber)
	utils.JSONSuccess(c, http.StatusOK, room)
}
