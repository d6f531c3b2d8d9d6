package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	apperrors "github.com/lvgroup1/eksperti-sub000/server/errors"
	"github.com/lvgroup1/eksperti-sub000/server/middleware"
)

// SendJSONResponse sends a JSON response through the gin context.
func SendJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendJSONError sends a JSON error through the gin context and logs it.
func SendJSONError(c *gin.Context, statusCode int, message string) {
	log.Printf("http error %d on %s %s: %s [%s]",
		statusCode, c.Request.Method, c.Request.URL.Path, message,
		middleware.GetRequestIDFromGin(c))

	c.JSON(statusCode, gin.H{
		"error":   true,
		"message": message,
	})
}

// SendAppError sends an AppError with its own status code. The wrapped
// cause is logged but never serialized.
func SendAppError(c *gin.Context, err *apperrors.AppError) {
	log.Printf("http error %d on %s %s: %v [%s]",
		err.StatusCode(), c.Request.Method, c.Request.URL.Path, err,
		middleware.GetRequestIDFromGin(c))

	c.JSON(err.StatusCode(), gin.H{
		"error":   true,
		"message": err.UserMessage(),
	})
}
