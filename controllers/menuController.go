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

type MenuController struct {
	menus *services.MenuService
}

func NewMenuController(menus *services.MenuService) *MenuController {
	return &MenuController{menus: menus}
}

func (ct *MenuController) CreateMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var menu models.Menu
		if err := c.ShouldBindJSON(&menu); err != nil {
			respondError(c, apperr.Validation(err.Error()))
			return
		}
		if err := validate.Struct(&menu); err != nil {
			respondError(c, apperr.Validation(err.Error()))
			return
		}
		if err := ct.menus.Create(ctx, &menu); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, menu)
	}
}

func (ct *MenuController) GetAllMenuItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		items, err := ct.menus.ListAll(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func (ct *MenuController) GetMenuByCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		items, err := ct.menus.ListByCategory(ctx, c.Param("category"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
