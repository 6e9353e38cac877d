package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/kareem-anwar/finance-ledger/internal/domain/error"
	coreport "github.com/kareem-anwar/finance-ledger/internal/domain/port/core"
	"github.com/kareem-anwar/finance-ledger/internal/infrastructure/adapter/api/dto"
)

// UserIDKey is the gin context key under which Auth stores the caller's user ID
const UserIDKey = "userID"

// UserIDHeader carries the authenticated user identity, set by the gateway
// in front of this service.
const UserIDHeader = "X-User-ID"

// Auth middleware extracts the caller identity from the X-User-ID header.
// Requests without a valid header are rejected before reaching any handler.
func Auth(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(UserIDHeader)
		if header == "" {
			logger.Warn("Missing user identity header", map[string]any{
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Missing required header: " + UserIDHeader,
			})
			return
		}

		userID, err := strconv.ParseUint(header, 10, 64)
		if err != nil || userID == 0 {
			logger.Warn("Invalid user identity header", map[string]any{
				"path":  c.Request.URL.Path,
				"value": header,
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid " + UserIDHeader + " header",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user ID stored by Auth
func CurrentUserID(c *gin.Context) uint64 {
	return c.GetUint64(UserIDKey)
}
