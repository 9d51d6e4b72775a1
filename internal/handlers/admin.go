package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/ewallet/internal/middleware"
	"github.com/h4ks-com/ewallet/internal/services"
)

type AdminHandler struct {
	membershipService *services.MembershipService
}

func NewAdminHandler(membershipService *services.MembershipService) *AdminHandler {
	return &AdminHandler{membershipService: membershipService}
}

// Memberships godoc
// @Summary List memberships (Admin)
// @Description List the accounts and roles of the authenticated admin
// @Tags admin
// @Produce json
// @Security OMGClient
// @Success 200 {object} Envelope{data=ListData{data=[]MembershipResponse}}
// @Failure 401 {object} Envelope{data=ErrorData}
// @Failure 403 {object} Envelope{data=ErrorData}
// @Router /admin.memberships [post]
func (h *AdminHandler) Memberships(c *gin.Context) {
	memberships, err := h.membershipService.ListForUser(middleware.GetUser(c))
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]MembershipResponse, len(memberships))
	for i := range memberships {
		out[i] = serializeMembership(&memberships[i])
	}
	respondList(c, out)
}
