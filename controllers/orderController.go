package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-restaurant-reservation/apperr"
	"go-restaurant-reservation/models"
	"go-restaurant-reservation/services"
)

// OrderController propagates failures through the generic error middleware
// rather than rendering locally; see middleware.ErrorHandler.
type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

type createOrderRequest struct {
	Table_number *int               `json:"tableNumber" validate:"required"`
	Items        []models.OrderItem `json:"items" validate:"required,min=1,dive"`
}

func (ct *OrderController) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperr.Validation(err.Error()))
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.Error(apperr.Validation(err.Error()))
			return
		}

		order, err := ct.orders.Create(ctx, *req.Table_number, req.Items)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": order})
	}
}

func (ct *OrderController) GetAllOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		orders, err := ct.orders.List(ctx)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
	}
}

func (ct *OrderController) UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var body struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Error(apperr.Validation(err.Error()))
			return
		}

		order, err := ct.orders.UpdateStatus(ctx, c.Param("orderId"), body.Status)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
	}
}
