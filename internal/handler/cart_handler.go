package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/S-Matheka/dignifymarketplace/internal/middleware"
	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/service"
)

// CartHandler serves the buyer basket and checkout flow.
type CartHandler struct {
	cart    service.CartService
	catalog service.CatalogService
	orders  service.OrderService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cart service.CartService, catalog service.CatalogService, orders service.OrderService) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog, orders: orders}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"screen": "cart",
		"lines":  h.cart.Lines(),
		"total":  h.cart.Total(),
	})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	product, err := h.catalog.Find(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.cart.Add(*product)
	c.JSON(http.StatusOK, gin.H{
		"message": "Added " + product.Name + " to cart!",
		"lines":   h.cart.Lines(),
		"total":   h.cart.Total(),
	})
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req struct {
		// The store does not clamp; the screen's numeric input enforces min 1.
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	h.cart.SetQuantity(c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, gin.H{"lines": h.cart.Lines(), "total": h.cart.Total()})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.cart.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"lines": h.cart.Lines(), "total": h.cart.Total()})
}

func (h *CartHandler) Checkout(c *gin.Context) {
	var req model.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	order, err := h.orders.Checkout(middleware.CurrentUser(c), req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty."})
			return
		}
		log.Printf("Error during checkout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order Placed! Thank you for your order.",
		"order":   order,
	})
}

func (h *CartHandler) OrderHistory(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"screen": "order-history",
		"orders": h.orders.History(profile.ID),
	})
}

// RegisterCartRoutes registers the buyer basket routes.
func (h *CartHandler) RegisterCartRoutes(rg *gin.RouterGroup, buyerMW gin.HandlerFunc) {
	cart := rg.Group("/buyer")
	cart.Use(buyerMW)
	{
		cart.GET("/cart", h.GetCart)
		cart.POST("/cart/items", h.AddItem)
		cart.PUT("/cart/items/:id", h.UpdateQuantity)
		cart.DELETE("/cart/items/:id", h.RemoveItem)
		cart.POST("/checkout", h.Checkout)
		cart.GET("/orders", h.OrderHistory)
	}
}
