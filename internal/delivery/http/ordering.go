package http

import (
	"github.com/gin-gonic/gin"

	"aiorder/internal/models"
	"aiorder/internal/service"
)

type orderGroupParams struct {
	StoreID     string `form:"storeId" binding:"required,numeric"`
	OrderDate   string `form:"orderDate" binding:"required,datetime=2006-01-02"`
	ProductType string `form:"productType" binding:"required,oneof=L S U"`
}

type productTypeParams struct {
	StoreID   string `form:"storeId" binding:"required,numeric"`
	OrderDate string `form:"orderDate" binding:"required,datetime=2006-01-02"`
}

// GetOrderGroupList lists the order groups of a store day for one product type, grouped by vendor.
func (h *Handler) GetOrderGroupList(c *gin.Context) {
	var p orderGroupParams
	if err := c.ShouldBindQuery(&p); err != nil {
		errorResponse(c, &service.Error{Kind: service.ErrInvalidArgument, Err: err})
		return
	}

	list, err := h.svc.GetOrderGroupList(c.Request.Context(), models.OrderGroupQuery{
		CompanyID:   c.GetString(companyIDKey),
		StoreID:     p.StoreID,
		OrderDate:   p.OrderDate,
		ProductType: p.ProductType,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}
	newResponse(c, list)
}

// GetProductType reports the L/S/U completion counters of a store day.
func (h *Handler) GetProductType(c *gin.Context) {
	var p productTypeParams
	if err := c.ShouldBindQuery(&p); err != nil {
		errorResponse(c, &service.Error{Kind: service.ErrInvalidArgument, Err: err})
		return
	}

	summary, err := h.svc.GetProductType(c.Request.Context(), c.GetString(companyIDKey), p.StoreID, p.OrderDate)
	if err != nil {
		errorResponse(c, err)
		return
	}
	newResponse(c, summary)
}

// SaveOrder stores every order group of the body and marks them sent.
func (h *Handler) SaveOrder(c *gin.Context) {
	var req models.SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, &service.Error{Kind: service.ErrDecode, Err: err})
		return
	}

	receipt, err := h.svc.SaveOrder(c.Request.Context(), c.GetString(companyIDKey), req.Orders(c.GetString(companyIDKey)))
	if err != nil {
		errorResponse(c, err)
		return
	}
	newResponse(c, receipt)
}
