// internal/handlers/order.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/openmart/ecommerce-backend/internal/services"
	"github.com/openmart/ecommerce-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// GET /users/:user_id/orders
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	orders, err := h.orderService.GetUserOrders(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			utils.BadRequestResponse(c, "Invalid user ID format", nil)
		case errors.Is(err, services.ErrUserNotFound):
			utils.NotFoundResponse(c, "User not found")
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, orders)
}

// GET /orders/:order_id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			utils.BadRequestResponse(c, "Invalid order ID format", nil)
		case errors.Is(err, services.ErrOrderNotFound):
			utils.NotFoundResponse(c, "Order not found")
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, order)
}
