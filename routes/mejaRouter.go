package routes

import (
	"github.com/gin-gonic/gin"

	"go-restaurant-reservation/controllers"
)

func MejaRoutes(incomingRoutes *gin.Engine, controller *controllers.MejaController) {
	incomingRoutes.POST("/createMeja", controller.CreateMeja())
	incomingRoutes.GET("/meja", controller.GetAllMeja())
	incomingRoutes.PUT("/meja/:tableNumber/reserve", controller.ReserveMeja())
	incomingRoutes.PUT("/meja/:tableNumber/cancel", controller.CancelReservation())
}
