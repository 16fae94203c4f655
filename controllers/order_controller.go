package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops/services"
	"hotel-ops/utils"
	"hotel-ops/validation"
)

type OrderController struct {
	OrderSvc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{OrderSvc: svc}
}

func (oc *OrderController) GetOrders(c *gin.Context) {
	period, ok := periodParam(c)
	if !ok {
		return
	}
	orders, err := oc.OrderSvc.List(c.Request.Context(), hotelID(c), period)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var form validation.OrderForm
	if !bindJSON(c, &form) {
		return
	}
	order, err := oc.OrderSvc.Create(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, order)
}

func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var form validation.OrderStatusForm
	if !bindJSON(c, &form) {
		return
	}
	order, err := oc.OrderSvc.UpdateStatus(c.Request.Context(), hotelID(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	log.Printf("🍽️ order %d -> %s", order.ID, order.Status)
	utils.JSONSuccess(c, http.StatusOK, order)
}
