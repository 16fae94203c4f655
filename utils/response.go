package utils

import (
	"github.com/gin-gonic/gin"

	"hotel-ops/validation"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONValidation reports per-field errors so a form can show them inline.
func JSONValidation(c *gin.Context, code int, fields validation.Errors) {
	c.JSON(code, gin.H{"success": false, "error": "validation failed", "fields": fields})
}
