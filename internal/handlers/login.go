package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/services"
)

type LoginHandler struct {
	userService      *services.UserService
	authTokenService *services.AuthTokenService
}

func NewLoginHandler(userService *services.UserService, authTokenService *services.AuthTokenService) *LoginHandler {
	return &LoginHandler{
		userService:      userService,
		authTokenService: authTokenService,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Admin login
// @Description Exchange an admin email and password for an auth token
// @Tags public
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} Envelope{data=AuthTokenResponse}
// @Router /admin.login [post]
func (h *LoginHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	token, err := h.authTokenService.Generate(user, models.OwnerAppEWalletAPI)
	if err != nil {
		handleError(c, err)
		return
	}

	log.Printf("[Auth] %s logged in", user.DisplayName())
	respond(c, serializeAuthToken(token))
}
