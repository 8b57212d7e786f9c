package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go-restaurant-reservation/configs"
	"go-restaurant-reservation/controllers"
	"go-restaurant-reservation/database"
	"go-restaurant-reservation/middleware"
	"go-restaurant-reservation/routes"
	"go-restaurant-reservation/services"
	"go-restaurant-reservation/ws"
)

func main() {
	cfg := configs.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Printf("database close failed: %v", err)
		}
	}()
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatalf("index creation failed: %v", err)
	}

	hub := ws.NewHub()
	tableService := services.NewTableService(db.Collection("meja"))
	menuService := services.NewMenuService(db.Collection("menu"))
	orderService := services.NewOrderService(db.Collection("order"), db.Collection("menu"), tableService, hub)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.ErrorHandler())

	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Restaurant Reservation API"})
	})
	router.GET("/ws", hub.Handler())
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	routes.MenuRoutes(router, controllers.NewMenuController(menuService))
	routes.MejaRoutes(router, controllers.NewMejaController(tableService))
	routes.OrderRoutes(router, controllers.NewOrderController(orderService))

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
