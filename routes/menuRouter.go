package routes

import (
	"github.com/gin-gonic/gin"

	"go-restaurant-reservation/controllers"
)

func MenuRoutes(incomingRoutes *gin.Engine, controller *controllers.MenuController) {
	incomingRoutes.POST("/createMenu", controller.CreateMenu())
	incomingRoutes.GET("/menu", controller.GetAllMenuItems())
	incomingRoutes.GET("/menu/:category", controller.GetMenuByCategory())
}
