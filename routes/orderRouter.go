package routes

import (
	"github.com/gin-gonic/gin"

	"go-restaurant-reservation/controllers"
)

func OrderRoutes(incomingRoutes *gin.Engine, controller *controllers.OrderController) {
	incomingRoutes.POST("/createOrders", controller.CreateOrder())
	incomingRoutes.GET("/orders", controller.GetAllOrders())
	incomingRoutes.PUT("/orders/:orderId/status", controller.UpdateOrderStatus())
}
