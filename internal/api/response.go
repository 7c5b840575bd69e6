package api

import (
	"errors"
	"net/http"
	"wallet_backend/internal/ledger"

	"github.com/gin-gonic/gin" // Gin web framework
)

// Response is the uniform envelope of every endpoint. Callers branch on
// Success, not on the HTTP status: handlers emit HTTP 200 (201 on creation
// routes) and carry the effective status inside the envelope.
type Response struct {
	StatusCode int    `json:"statusCode"` // Effective status of the operation
	Success    bool   `json:"success"`    // Whether the operation succeeded
	Message    string `json:"message"`    // Human-readable outcome
	Data       any    `json:"data"`       // Payload or raw error detail
}

// respond writes the envelope with HTTP 200.
func respond(c *gin.Context, resp Response) {
	c.JSON(http.StatusOK, resp)
}

// respondCreated writes the envelope with HTTP 201, the default of creation
// routes regardless of the envelope outcome.
func respondCreated(c *gin.Context, resp Response) {
	c.JSON(http.StatusCreated, resp)
}

// ok builds a success envelope.
func ok(statusCode int, message string, data any) Response {
	return Response{StatusCode: statusCode, Success: true, Message: message, Data: data}
}

// fail builds a failure envelope.
func fail(statusCode int, message string, data any) Response {
	return Response{StatusCode: statusCode, Success: false, Message: message, Data: data}
}

// failFrom maps a ledger error to a failure envelope, preserving the raw
// error text in the data field.
func failFrom(err error, message string) Response {
	switch {
	case errors.Is(err, ledger.ErrWalletNotFound),
		errors.Is(err, ledger.ErrEntryNotFound),
		errors.Is(err, ledger.ErrLogEntryNotFound),
		errors.Is(err, ledger.ErrHoldingNotFound),
		errors.Is(err, ledger.ErrAssetNotFound):
		return fail(http.StatusNotFound, message, err.Error())
	case errors.Is(err, ledger.ErrWalletExists),
		errors.Is(err, ledger.ErrHoldingExists),
		errors.Is(err, ledger.ErrNotPending):
		return fail(http.StatusBadRequest, message, err.Error())
	default:
		return fail(http.StatusInternalServerError, message, "Exception: "+err.Error())
	}
}
