package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/ewallet/internal/middleware"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/services"
)

type TokenHandler struct {
	tokenService *services.TokenService
	mintGate     *services.MintGate
}

func NewTokenHandler(tokenService *services.TokenService, mintGate *services.MintGate) *TokenHandler {
	return &TokenHandler{
		tokenService: tokenService,
		mintGate:     mintGate,
	}
}

// All godoc
// @Summary List tokens
// @Tags provider
// @Produce json
// @Security OMGServer
// @Success 200 {object} Envelope{data=ListData{data=[]TokenResponse}}
// @Failure 401 {object} Envelope{data=ErrorData}
// @Router /token.all [post]
func (h *TokenHandler) All(c *gin.Context) {
	tokens, err := h.tokenService.List()
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]TokenResponse, len(tokens))
	for i := range tokens {
		out[i] = serializeToken(&tokens[i])
	}
	respondList(c, out)
}

// Create godoc
// @Summary Create a token
// @Description Define a new token owned by the calling account
// @Tags provider
// @Accept json
// @Produce json
// @Security OMGServer
// @Param request body services.TokenInput true "Token"
// @Success 200 {object} Envelope{data=TokenResponse}
// @Failure 401 {object} Envelope{data=ErrorData}
// @Router /token.create [post]
func (h *TokenHandler) Create(c *gin.Context) {
	var input services.TokenInput
	if !bindJSON(c, &input) {
		return
	}

	token, err := h.tokenService.Create(middleware.GetAccount(c), input)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, serializeToken(token))
}

type MintRequest struct {
	TokenID     string          `json:"token_id" binding:"required"`
	Amount      int64           `json:"amount"`
	Description string          `json:"description"`
	Metadata    models.Metadata `json:"metadata"`
}

// Mint godoc
// @Summary Mint a token
// @Description Create new funds and credit them to the token owner's primary wallet
// @Tags provider
// @Accept json
// @Produce json
// @Security OMGServer
// @Param Idempotency-Token header string true "Idempotency token"
// @Param request body MintRequest true "Mint"
// @Success 200 {object} Envelope{data=MintResponse}
// @Failure 401 {object} Envelope{data=ErrorData}
// @Router /mint [post]
func (h *TokenHandler) Mint(c *gin.Context) {
	var req MintRequest
	if !bindJSON(c, &req) {
		return
	}

	mint, transfer, err := h.mintGate.Insert(c.Request.Context(), services.MintRequest{
		IdempotencyToken: c.GetHeader(IdempotencyHeader),
		TokenID:          req.TokenID,
		Amount:           req.Amount,
		Description:      req.Description,
		Metadata:         req.Metadata,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, serializeMint(mint, transfer))
}
