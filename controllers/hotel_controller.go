package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops/services"
	"hotel-ops/utils"
	"hotel-ops/validation"
)

type HotelController struct {
	HotelSvc   *services.HotelService
	ContextSvc *services.HotelContextService
}

func NewHotelController(hotels *services.HotelService, hc *services.HotelContextService) *HotelController {
	return &HotelController{HotelSvc: hotels, ContextSvc: hc}
}

func (hc *HotelController) AddHotel(c *gin.Context) {
	var form validation.HotelForm
	if !bindJSON(c, &form) {
		return
	}
	hotel, err := hc.HotelSvc.Create(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}
	log.Printf("🏨 hotel %d (%s) registered", hotel.ID, hotel.Name)
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

func (hc *HotelController) ListHotels(c *gin.Context) {
	hotels, err := hc.HotelSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

func (hc *HotelController) SwitchHotel(c *gin.Context) {
	var form validation.SwitchHotelForm
	if !bindJSON(c, &form) {
		return
	}
	hotel, err := hc.ContextSvc.Switch(c.Request.Context(), staffID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// Current returns the caller's active hotel.
func (hc *HotelController) Current(c *gin.Context) {
	hotel, err := hc.HotelSvc.Get(c.Request.Context(), hotelID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}
