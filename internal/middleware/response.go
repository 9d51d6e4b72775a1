package middleware

import "github.com/gin-gonic/gin"

// ErrorBody builds the eWallet error envelope.
func ErrorBody(code, description string) gin.H {
	return gin.H{
		"version": "1",
		"success": false,
		"data": gin.H{
			"object":      "error",
			"code":        code,
			"description": description,
			"messages":    nil,
		},
	}
}

func abortWithError(c *gin.Context, status int, code, description string) {
	c.AbortWithStatusJSON(status, ErrorBody(code, description))
}
