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

// CatalogHandler serves the manufacturer product manager.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListOwned(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"products": h.catalog.ListOwned(profile.Name)})
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile := middleware.CurrentUser(c)
	product := h.catalog.CreateProduct(profile.Name, req)
	c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	var req model.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile := middleware.CurrentUser(c)
	product, err := h.catalog.UpdateProduct(profile.Name, c.Param("id"), req)
	if err != nil {
		h.writeCatalogError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	if err := h.catalog.DeleteProduct(profile.Name, c.Param("id")); err != nil {
		h.writeCatalogError(c, err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
}

func (h *CatalogHandler) writeCatalogError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotProductOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// RegisterCatalogRoutes registers the manufacturer product-manager routes.
func (h *CatalogHandler) RegisterCatalogRoutes(rg *gin.RouterGroup, manufacturerMW gin.HandlerFunc) {
	products := rg.Group("/manufacturer/products")
	products.Use(manufacturerMW)
	{
		products.GET("", h.ListOwned)
		products.POST("", h.Create)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}
