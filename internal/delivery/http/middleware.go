package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	companyHeader   = "company-id"

	requestIDKey = "requestId"
	companyIDKey = "companyId"
)

// requestID reuses a caller supplied X-Request-ID or generates one, and echoes it back.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requireCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		company := strings.TrimSpace(c.GetHeader(companyHeader))
		if company == "" {
			newErrorResponse(c, http.StatusBadRequest, codeInvalidArgument, "company-id header is required")
			c.Abort()
			return
		}
		c.Set(companyIDKey, company)
		c.Next()
	}
}
