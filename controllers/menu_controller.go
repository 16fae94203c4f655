package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops/services"
	"hotel-ops/utils"
	"hotel-ops/validation"
)

type MenuController struct {
	MenuSvc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{MenuSvc: svc}
}

func (mc *MenuController) GetMenu(c *gin.Context) {
	items, err := mc.MenuSvc.List(c.Request.Context(), hotelID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var form validation.MenuForm
	if !bindJSON(c, &form) {
		return
	}
	item, err := mc.MenuSvc.Create(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	var form validation.MenuForm
	if !bindJSON(c, &form) {
		return
	}
	item, err := mc.MenuSvc.Update(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}
