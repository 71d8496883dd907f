package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/service"
)

// AdminHandler serves the admin-only panels: product approval, user
// management, and donation tracking.
type AdminHandler struct {
	catalog   service.CatalogService
	directory service.DirectoryService
	donations service.DonationService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(catalog service.CatalogService, directory service.DirectoryService, donations service.DonationService) *AdminHandler {
	return &AdminHandler{catalog: catalog, directory: directory, donations: donations}
}

func (h *AdminHandler) PendingSubmissions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"submissions": h.catalog.PendingSubmissions()})
}

func (h *AdminHandler) ReviewSubmission(c *gin.Context) {
	var req model.ReviewProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	product, err := h.catalog.Review(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error reviewing submission: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review submission"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"users": h.directory.List(c.Query("search"), c.Query("role"), c.Query("status")),
	})
}

func (h *AdminHandler) VerifyUser(c *gin.Context) {
	if err := h.directory.Verify(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User verified"})
}

func (h *AdminHandler) ToggleBan(c *gin.Context) {
	banned, err := h.directory.ToggleBan(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"banned": banned})
}

func (h *AdminHandler) RemoveUser(c *gin.Context) {
	if err := h.directory.Remove(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User removed"})
}

func (h *AdminHandler) TrackDonations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"donations": h.donations.Track()})
}

// RegisterAdminRoutes registers the admin panel routes.
func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	admin := rg.Group("/admin")
	admin.Use(adminMW)
	{
		admin.GET("/approvals", h.PendingSubmissions)
		admin.POST("/approvals/:id/review", h.ReviewSubmission)
		admin.GET("/users", h.ListUsers)
		admin.POST("/users/:id/verify", h.VerifyUser)
		admin.POST("/users/:id/ban", h.ToggleBan)
		admin.DELETE("/users/:id", h.RemoveUser)
		admin.GET("/donations", h.TrackDonations)
	}
}
