package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatusResponse struct {
	Success bool `json:"success"`
}

// Status godoc
// @Summary API status
// @Description Reports whether the API is up
// @Tags public
// @Produce json
// @Param Accept header string true "application/vnd.omisego.v1+json"
// @Success 200 {object} StatusResponse
// @Router /status [post]
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Success: true})
}
