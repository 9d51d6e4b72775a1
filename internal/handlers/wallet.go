package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/services"
)

type WalletHandler struct {
	walletService *services.WalletService
	tokenService  *services.TokenService
}

func NewWalletHandler(walletService *services.WalletService, tokenService *services.TokenService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		tokenService:  tokenService,
	}
}

type BalancesRequest struct {
	Address string `json:"address" binding:"required"`
}

// Balances godoc
// @Summary Wallet balances
// @Description Get the balances of a wallet by address
// @Tags provider
// @Accept json
// @Produce json
// @Security OMGServer
// @Param request body BalancesRequest true "Wallet address"
// @Success 200 {object} Envelope{data=ListData{data=[]WalletResponse}}
// @Failure 401 {object} Envelope{data=ErrorData}
// @Router /wallet.balances [post]
func (h *WalletHandler) Balances(c *gin.Context) {
	var req BalancesRequest
	if !bindJSON(c, &req) {
		return
	}

	wallet, err := h.walletService.GetByAddress(req.Address)
	if err != nil {
		handleError(c, err)
		return
	}

	view, err := h.view(wallet)
	if err != nil {
		handleError(c, err)
		return
	}
	respondList(c, []WalletResponse{view})
}

// view loads the ledger balances of wallet along with their tokens.
func (h *WalletHandler) view(wallet *models.Wallet) (WalletResponse, error) {
	balances, err := h.walletService.GetBalances(wallet.Address)
	if err != nil {
		return WalletResponse{}, err
	}

	tokens := make(map[string]*models.Token, len(balances))
	for _, balance := range balances {
		token, err := h.tokenService.Get(balance.TokenID)
		if err != nil {
			return WalletResponse{}, err
		}
		tokens[balance.TokenID] = token
	}

	return serializeWallet(wallet, balances, tokens), nil
}
