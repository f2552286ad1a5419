package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aiorder/internal/service"
)

const basePath = "/ordering-service"

type Handler struct {
	svc     service.Ordering
	metrics http.Handler
}

// NewHandler serves svc. metrics backs GET /metrics and may be nil.
func NewHandler(s service.Ordering, metrics http.Handler) *Handler {
	return &Handler{svc: s, metrics: metrics}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()
	router.Use(requestID())

	api := router.Group(basePath, requireCompany())
	{
		api.GET("/order-group", h.GetOrderGroupList)
		api.GET("/product-type", h.GetProductType)
		api.POST("/save-order", h.SaveOrder)
	}

	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics))
	}

	router.NoRoute(func(c *gin.Context) {
		newErrorResponse(c, http.StatusNotFound, codeNotFound, "route not found")
	})

	return router
}
