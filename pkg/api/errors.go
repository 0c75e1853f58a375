package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verdictlabs/verdict/pkg/llm"
	"github.com/verdictlabs/verdict/pkg/services"
)

// Error codes returned in the response envelope.
const (
	CodeTokenMissing        = "TOKEN_MISSING"
	CodeTokenInvalid        = "TOKEN_INVALID"
	CodeAccountInactive     = "ACCOUNT_INACTIVE"
	CodeForbidden           = "FORBIDDEN"
	CodeValidationError     = "VALIDATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeShareLinkExpired    = "SHARE_LINK_EXPIRED"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeServerError         = "SERVER_ERROR"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// respondError writes the error envelope.
func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

// respondServiceError maps service-layer errors onto the HTTP surface.
// Unknown errors are logged and masked as SERVER_ERROR.
func respondServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(c, http.StatusUnprocessableEntity, CodeValidationError, ve.Error())
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, "not found")
	case errors.Is(err, services.ErrAlreadyExists):
		respondError(c, http.StatusConflict, CodeConflict, "already exists")
	case errors.Is(err, services.ErrInvalidTransition):
		respondError(c, http.StatusConflict, CodeConflict, "invalid session state transition")
	case errors.Is(err, services.ErrShareExpired):
		respondError(c, http.StatusGone, CodeShareLinkExpired, "share link expired")
	case errors.Is(err, llm.ErrUnavailable):
		respondError(c, http.StatusBadGateway, CodeUpstreamUnavailable, "model provider unavailable")
	default:
		slog.Error("Unhandled error in request", "path", c.FullPath(), "error", err)
		respondError(c, http.StatusInternalServerError, CodeServerError, "internal error")
	}
}
