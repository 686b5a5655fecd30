package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
	"github.com/polkiloo/presto/internal/server/http/dto"
)

// statusFor maps domain failures onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound), errors.Is(err, domainErrors.ErrUnknownPartner):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrEmptyInput),
		errors.Is(err, domainErrors.ErrInvalidTab),
		errors.Is(err, domainErrors.ErrInvalidTheme):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, domainErrors.ErrLedgerBusy),
		errors.Is(err, domainErrors.ErrReplyPending),
		errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrSessionClosed),
		errors.Is(err, domainErrors.ErrPartnerUnspecified):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrResponderUnreachable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: http.StatusText(status)})
		return
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: err.Error()})
}

func respondBadRequest(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
}
