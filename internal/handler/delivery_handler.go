package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/S-Matheka/dignifymarketplace/internal/middleware"
	"github.com/S-Matheka/dignifymarketplace/internal/service"
)

// DeliveryHandler serves the transporter board and the seller order list.
type DeliveryHandler struct {
	deliveries service.DeliveryService
	orders     service.OrderService
}

// NewDeliveryHandler creates a new DeliveryHandler
func NewDeliveryHandler(deliveries service.DeliveryService, orders service.OrderService) *DeliveryHandler {
	return &DeliveryHandler{deliveries: deliveries, orders: orders}
}

func (h *DeliveryHandler) Available(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"jobs": h.deliveries.Available()})
}

func (h *DeliveryHandler) Accept(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	job, err := h.deliveries.Accept(c.Param("id"), profile.ID)
	if err != nil {
		h.writeDeliveryError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *DeliveryHandler) Complete(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	job, err := h.deliveries.Complete(c.Param("id"), profile.ID)
	if err != nil {
		h.writeDeliveryError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *DeliveryHandler) History(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"jobs": h.deliveries.History(profile.ID)})
}

func (h *DeliveryHandler) writeDeliveryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrJobNotOpen), errors.Is(err, service.ErrJobNotOwned):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delivery operation failed"})
	}
}

func (h *DeliveryHandler) SellerOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.orders.SellerOrders()})
}

func (h *DeliveryHandler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required,oneof=pending shipped delivered"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	order, err := h.orders.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

// RegisterDeliveryRoutes registers transporter and seller fulfilment routes.
func (h *DeliveryHandler) RegisterDeliveryRoutes(rg *gin.RouterGroup, transporterMW, sellerMW gin.HandlerFunc) {
	transporter := rg.Group("/transporter")
	transporter.Use(transporterMW)
	{
		transporter.GET("/jobs", h.Available)
		transporter.POST("/jobs/:id/accept", h.Accept)
		transporter.POST("/jobs/:id/complete", h.Complete)
		transporter.GET("/history", h.History)
	}

	seller := rg.Group("/seller")
	seller.Use(sellerMW)
	{
		seller.GET("/orders", h.SellerOrders)
		seller.POST("/orders/:id/status", h.UpdateOrderStatus)
	}
}
