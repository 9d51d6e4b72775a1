package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/ewallet/internal/services"
)

// Envelope wraps every API response.
type Envelope struct {
	Version string `json:"version" example:"1"`
	Success bool   `json:"success"`
	Data    any    `json:"data"`
}

type ErrorData struct {
	Object      string   `json:"object" example:"error"`
	Code        string   `json:"code" example:"client:invalid_parameter"`
	Description string   `json:"description"`
	Messages    []string `json:"messages"`
}

type ListData struct {
	Object string `json:"object" example:"list"`
	Data   any    `json:"data"`
}

func respond(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Version: "1", Success: true, Data: data})
}

func respondList(c *gin.Context, items any) {
	respond(c, ListData{Object: "list", Data: items})
}

func respondError(c *gin.Context, code, description string, messages ...string) {
	c.JSON(http.StatusOK, Envelope{
		Version: "1",
		Success: false,
		Data: ErrorData{
			Object:      "error",
			Code:        code,
			Description: description,
			Messages:    messages,
		},
	})
}

func respondInvalidParameter(c *gin.Context, err error) {
	respondError(c, "client:invalid_parameter", "Invalid parameter provided.", services.FormatValidationErrors(err)...)
}

// handleError maps domain errors to API error codes. Unknown errors become
// server errors with a 500 status.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		respondInvalidParameter(c, err)
	case errors.Is(err, services.ErrUserNotFound):
		respondError(c, "user:provider_user_id_not_found", "There is no user corresponding to the provided provider_user_id.")
	case errors.Is(err, services.ErrProviderUserIDTaken):
		respondError(c, "user:provider_user_id_taken", "The provided provider_user_id has already been taken.")
	case errors.Is(err, services.ErrWalletNotFound):
		respondError(c, "user:wallet_not_found", "There is no wallet corresponding to the provided address.")
	case errors.Is(err, services.ErrTokenNotFound):
		respondError(c, "token:token_not_found", "There is no token matching the provided token_id.")
	case errors.Is(err, services.ErrInsufficientFunds):
		respondError(c, "transaction:insufficient_funds", "The specified wallet does not contain enough funds.")
	case errors.Is(err, services.ErrSameAddress):
		respondError(c, "transaction:same_address", "Found identical addresses in senders and receivers.")
	case errors.Is(err, services.ErrInvalidAmount):
		respondError(c, "client:invalid_parameter", "Invalid parameter provided. `amount` must be positive.")
	case errors.Is(err, services.ErrIdempotencyConflict):
		respondError(c, "client:idempotency_token_conflict", "The provided 'Idempotency-Token' was already used for a different request.")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, "user:invalid_login_credentials", "There is no user corresponding to the provided login credentials.")
	case errors.Is(err, services.ErrIdempotencyTokenRequired):
		respondError(c, "client:no_idempotency_token_provided", "The call you made requires the 'Idempotency-Token' header to prevent duplication.")
	default:
		c.JSON(http.StatusInternalServerError, Envelope{
			Version: "1",
			Success: false,
			Data: ErrorData{
				Object:      "error",
				Code:        "server:internal_server_error",
				Description: err.Error(),
			},
		})
	}
}

func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		respondError(c, "client:invalid_parameter", "Invalid parameter provided. "+err.Error())
		return false
	}
	return true
}
