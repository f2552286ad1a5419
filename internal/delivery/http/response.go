package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"aiorder/internal/service"
)

const (
	codeSuccess         = "SUCCESS"
	codeNotFound        = "NOT_FOUND"
	codeInvalidArgument = "INVALID_ARGUMENT"
	codeDatabase        = "DATABASE_ERROR"
	codeInternal        = "INTERNAL_ERROR"
)

type responseStatus struct {
	RequestID string `json:"requestId"`
	IsSuccess bool   `json:"isSuccess"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

type response struct {
	Status responseStatus `json:"status"`
	Data   any            `json:"data"`
}

func newResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, response{
		Status: responseStatus{
			RequestID: c.GetString(requestIDKey),
			IsSuccess: true,
			Code:      codeSuccess,
			Message:   "success",
		},
		Data: data,
	})
}

func newErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, response{
		Status: responseStatus{
			RequestID: c.GetString(requestIDKey),
			Code:      code,
			Message:   message,
		},
	})
}

// errorResponse maps a service error kind onto an HTTP status.
func errorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, codeNotFound, "no data")
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, service.ErrDecode):
		newErrorResponse(c, http.StatusBadRequest, codeInvalidArgument, err.Error())
	case errors.Is(err, service.ErrDatabase):
		logrus.WithError(err).WithField(requestIDKey, c.GetString(requestIDKey)).Error("request failed")
		newErrorResponse(c, http.StatusInternalServerError, codeDatabase, err.Error())
	default:
		logrus.WithError(err).WithField(requestIDKey, c.GetString(requestIDKey)).Error("request failed")
		newErrorResponse(c, http.StatusInternalServerError, codeInternal, err.Error())
	}
}
