package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"

	"go-restaurant-reservation/apperr"
)

var validate = validator.New()

// respondError renders the uniform error body directly. The meja and menu
// handlers use it; the order handlers attach their failures to the context
// and let middleware.ErrorHandler render the same shape.
func respondError(c *gin.Context, err error) {
	c.JSON(apperr.StatusCode(err), gin.H{"success": false, "error": apperr.Message(err)})
}
