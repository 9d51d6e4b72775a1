package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const AcceptHeader = "application/vnd.omisego.v1+json"

// RequireAccept rejects requests that do not ask for version 1 of the API.
func RequireAccept() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Accept") != AcceptHeader {
			abortWithError(c, http.StatusBadRequest, "client:invalid_version",
				"Invalid API version Given: '"+c.GetHeader("Accept")+"'.")
			return
		}
		c.Next()
	}
}
