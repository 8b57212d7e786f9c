package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-restaurant-reservation/apperr"
	"go-restaurant-reservation/models"
	"go-restaurant-reservation/services"
)

type MejaController struct {
	tables *services.TableService
}

func NewMejaController(tables *services.TableService) *MejaController {
	return &MejaController{tables: tables}
}

func (ct *MejaController) CreateMeja() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var meja models.Meja
		if err := c.ShouldBindJSON(&meja); err != nil {
			respondError(c, apperr.Validation(err.Error()))
			return
		}
		if err := validate.Struct(&meja); err != nil {
			respondError(c, apperr.Validation(err.Error()))
			return
		}
		if err := ct.tables.Create(ctx, &meja); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": meja})
	}
}

func (ct *MejaController) GetAllMeja() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		all, err := ct.tables.ListAll(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": all})
	}
}

func (ct *MejaController) ReserveMeja() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		tableNumber, err := strconv.Atoi(c.Param("tableNumber"))
		if err != nil {
			respondError(c, apperr.Validation("invalid table number"))
			return
		}
		var body struct {
			Customer_name string `json:"customerName"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			respondError(c, apperr.Validation(err.Error()))
			return
		}

		meja, err := ct.tables.Reserve(ctx, tableNumber, body.Customer_name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": meja})
	}
}

func (ct *MejaController) CancelReservation() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		tableNumber, err := strconv.Atoi(c.Param("tableNumber"))
		if err != nil {
			respondError(c, apperr.Validation("invalid table number"))
			return
		}

		meja, err := ct.tables.Cancel(ctx, tableNumber)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": fmt.Sprintf("Reservation for table %d has been cancelled", tableNumber),
			"data":    meja,
		})
	}
}
