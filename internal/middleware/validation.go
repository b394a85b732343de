package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/ams/internal/app/models/dto"
)

// BindJSON binds the request body into obj and writes a 400 on failure
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleValidationError(c, err)
		return false
	}
	return true
}

// BindQuery binds query parameters into obj and writes a 400 on failure
func BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		HandleValidationError(c, err)
		return false
	}
	return true
}

// HandleValidationError writes a binding or validator error as a 400
func HandleValidationError(c *gin.Context, err error) {
	errorDetail := dto.HandleValidationError(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
