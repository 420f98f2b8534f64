package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation-api/services"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{Service: services.NewOrderService(db)}
}

// CreateOrder
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req services.CreateOrderInput
	if err := utils.BindJSON(c, &req); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	order, err := oc.Service.CreateOrder(c.Request.Context(), caller(c), req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusCreated, "Order created successfully", gin.H{
		"id":    order.ID,
		"total": order.Total,
	})
}

// GetOrderByID returns the order together with its line items.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := pathID(c, "id", "Order not found")
	if !ok {
		return
	}

	order, err := oc.Service.GetOrder(c.Request.Context(), caller(c), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, orderDetail(order))
}

func (oc *OrderController) GetUserOrders(c *gin.Context) {
	orders, err := oc.Service.ListUserOrders(c.Request.Context(), caller(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, orderList(orders))
}

func (oc *OrderController) GetRestaurantOrders(c *gin.Context) {
	restaurantID, ok := pathID(c, "restaurant_id", "Restaurant not found")
	if !ok {
		return
	}

	orders, err := oc.Service.ListRestaurantOrders(c.Request.Context(), caller(c), restaurantID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, orderList(orders))
}

// UpdateOrderStatus
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "id", "Order not found")
	if !ok {
		return
	}

	body, err := utils.ReadPayload(c)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if _, err := oc.Service.UpdateOrderStatus(c.Request.Context(), caller(c), id, body); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Order status updated successfully", nil)
}

// DeleteOrder
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id", "Order not found")
	if !ok {
		return
	}

	if err := oc.Service.DeleteOrder(c.Request.Context(), caller(c), id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Order deleted successfully", nil)
}
