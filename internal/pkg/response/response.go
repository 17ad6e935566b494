package response

import "github.com/gin-gonic/gin"

// Error writes the flat {"error": message} body the frontend expects.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": message,
	})
}

// AbortError is Error for middleware, stopping the handler chain.
func AbortError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"error": message,
	})
}
