package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type GetUserRequest struct {
	ID             string `json:"id" binding:"required_without=ProviderUserID"`
	ProviderUserID string `json:"provider_user_id" binding:"required_without=ID"`
}

// Get godoc
// @Summary Get a user
// @Description Get a user by id or provider_user_id
// @Tags provider
// @Accept json
// @Produce json
// @Security OMGServer
// @Param request body GetUserRequest true "Lookup"
// @Success 200 {object} Envelope{data=UserResponse}
// @Failure 401 {object} Envelope{data=ErrorData}
// @Router /user.get [post]
func (h *UserHandler) Get(c *gin.Context) {
	var req GetUserRequest
	if !bindJSON(c, &req) {
		return
	}

	var user *models.User
	var err error
	if req.ID != "" {
		user, err = h.userService.GetByExternalID(req.ID)
	} else {
		user, err = h.userService.GetByProviderUserID(req.ProviderUserID)
	}
	if err != nil {
		handleError(c, err)
		return
	}
	if user == nil {
		handleError(c, services.ErrUserNotFound)
		return
	}

	respond(c, serializeUser(user))
}

// Create godoc
// @Summary Create a user
// @Description Create a provider user along with its primary wallet
// @Tags provider
// @Accept json
// @Produce json
// @Security OMGServer
// @Param request body services.ProviderUserInput true "User"
// @Success 200 {object} Envelope{data=UserResponse}
// @Failure 401 {object} Envelope{data=ErrorData}
// @Router /user.create [post]
func (h *UserHandler) Create(c *gin.Context) {
	var input services.ProviderUserInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := h.userService.InsertProviderUser(input)
	if err != nil {
		handleError(c, err)
		return
	}

	respond(c, serializeUser(user))
}
