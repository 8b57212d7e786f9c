package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"go-restaurant-reservation/apperr"
)

// ErrorHandler renders any failure a handler attached via c.Error as the
// uniform {success:false, error:message} body at the status carried by the
// error, defaulting to 500. Handlers that already wrote a response are left
// alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		if c.Writer.Written() {
			return
		}
		c.JSON(apperr.StatusCode(err), gin.H{"success": false, "error": apperr.Message(err)})
	}
}
