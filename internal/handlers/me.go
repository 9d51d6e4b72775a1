package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/ewallet/internal/middleware"
	"github.com/h4ks-com/ewallet/internal/services"
)

type MeHandler struct {
	wallets          *WalletHandler
	authTokenService *services.AuthTokenService
	transactionGate  *services.TransactionGate
}

func NewMeHandler(wallets *WalletHandler, authTokenService *services.AuthTokenService, transactionGate *services.TransactionGate) *MeHandler {
	return &MeHandler{
		wallets:          wallets,
		authTokenService: authTokenService,
		transactionGate:  transactionGate,
	}
}

// Get godoc
// @Summary Current user
// @Tags client
// @Produce json
// @Security OMGClient
// @Success 200 {object} Envelope{data=UserResponse}
// @Failure 401 {object} Envelope{data=ErrorData}
// @Router /me.get [post]
func (h *MeHandler) Get(c *gin.Context) {
	respond(c, serializeUser(middleware.GetUser(c)))
}

// GetWallets godoc
// @Summary Current user's wallets
// @Description List the wallets of the authenticated user with their balances
// @Tags client
// @Produce json
// @Security OMGClient
// @Success 200 {object} Envelope{data=ListData{data=[]WalletResponse}}
// @Failure 401 {object} Envelope{data=ErrorData}
// @Router /me.get_wallets [post]
func (h *MeHandler) GetWallets(c *gin.Context) {
	wallets, err := h.wallets.walletService.ListForUser(middleware.GetUser(c))
	if err != nil {
		handleError(c, err)
		return
	}

	views := make([]WalletResponse, 0, len(wallets))
	for i := range wallets {
		view, err := h.wallets.view(&wallets[i])
		if err != nil {
			handleError(c, err)
			return
		}
		views = append(views, view)
	}
	respondList(c, views)
}

// GetTransactions godoc
// @Summary Current user's transactions
// @Description List transfers sent or received by the primary wallet of the authenticated user
// @Tags client
// @Produce json
// @Security OMGClient
// @Success 200 {object} Envelope{data=ListData{data=[]TransferResponse}}
// @Failure 401 {object} Envelope{data=ErrorData}
// @Router /me.get_transactions [post]
func (h *MeHandler) GetTransactions(c *gin.Context) {
	wallet, err := h.wallets.walletService.GetOrCreatePrimaryForUser(middleware.GetUser(c))
	if err != nil {
		handleError(c, err)
		return
	}

	transfers, err := h.transactionGate.History(wallet.Address)
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]*TransferResponse, len(transfers))
	for i := range transfers {
		out[i] = serializeTransfer(&transfers[i])
	}
	respondList(c, out)
}

// Logout godoc
// @Summary Log out
// @Description Revoke the auth token used for this request
// @Tags client
// @Produce json
// @Security OMGClient
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope{data=ErrorData}
// @Router /me.logout [post]
func (h *MeHandler) Logout(c *gin.Context) {
	if err := h.authTokenService.Revoke(middleware.GetAuthToken(c)); err != nil {
		handleError(c, err)
		return
	}
	respond(c, struct{}{})
}
