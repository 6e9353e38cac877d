package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/kareem-anwar/finance-ledger/internal/domain/error"
	coreport "github.com/kareem-anwar/finance-ledger/internal/domain/port/core"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error onto the HTTP response. Not-found errors
// become 404, validation errors 400, everything else 500 with the detail
// kept out of the response body.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	switch {
	case domainerr.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	case domainerr.IsInvalidRequestError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	default:
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
	}
}

// errInvalidField names a request field that failed to parse
func errInvalidField(name string) error {
	return fmt.Errorf("Invalid %s format", name)
}

// badRequest writes a 400 response with the given message
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
	})
}
