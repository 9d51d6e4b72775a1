package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/services"
)

const IdempotencyHeader = "Idempotency-Token"

type TransferHandler struct {
	transactionGate *services.TransactionGate
}

func NewTransferHandler(transactionGate *services.TransactionGate) *TransferHandler {
	return &TransferHandler{transactionGate: transactionGate}
}

type TransferRequest struct {
	FromAddress string          `json:"from_address" binding:"required"`
	ToAddress   string          `json:"to_address" binding:"required"`
	TokenID     string          `json:"token_id" binding:"required"`
	Amount      int64           `json:"amount"`
	Metadata    models.Metadata `json:"metadata"`
}

// Transfer godoc
// @Summary Transfer funds
// @Description Move funds between two wallets
// @Tags provider
// @Accept json
// @Produce json
// @Security OMGServer
// @Param Idempotency-Token header string true "Idempotency token"
// @Param request body TransferRequest true "Transfer"
// @Success 200 {object} Envelope{data=TransferResponse}
// @Failure 401 {object} Envelope{data=ErrorData}
// @Router /transfer [post]
func (h *TransferHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if !bindJSON(c, &req) {
		return
	}

	transfer, err := h.transactionGate.Create(c.Request.Context(), services.TransferRequest{
		IdempotencyToken: c.GetHeader(IdempotencyHeader),
		FromAddress:      req.FromAddress,
		ToAddress:        req.ToAddress,
		TokenID:          req.TokenID,
		Amount:           req.Amount,
		Metadata:         req.Metadata,
	})
	if err != nil {
		if errors.Is(err, services.ErrInsufficientFunds) && transfer != nil {
			respondError(c, "transaction:insufficient_funds",
				"The specified wallet ("+transfer.FromAddress+") does not contain enough funds.")
			return
		}
		handleError(c, err)
		return
	}
	respond(c, serializeTransfer(transfer))
}
