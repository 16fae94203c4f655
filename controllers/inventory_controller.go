package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops/services"
	"hotel-ops/utils"
	"hotel-ops/validation"
)

type InventoryController struct {
	InventorySvc *services.InventoryService
}

func NewInventoryController(svc *services.InventoryService) *InventoryController {
	return &InventoryController{InventorySvc: svc}
}

func (ic *InventoryController) GetInventory(c *gin.Context) {
	items, err := ic.InventorySvc.List(c.Request.Context(), hotelID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (ic *InventoryController) AddInventory(c *gin.Context) {
	var form validation.InventoryForm
	if !bindJSON(c, &form) {
		return
	}
	item, err := ic.InventorySvc.Create(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}
