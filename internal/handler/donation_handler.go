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

// DonationHandler serves the donor flow and the notifications panel.
type DonationHandler struct {
	donations     service.DonationService
	notifications service.NotificationService
}

// NewDonationHandler creates a new DonationHandler
func NewDonationHandler(donations service.DonationService, notifications service.NotificationService) *DonationHandler {
	return &DonationHandler{donations: donations, notifications: notifications}
}

func (h *DonationHandler) Donate(c *gin.Context) {
	var req model.DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	donation, err := h.donations.Donate(middleware.CurrentUser(c), req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownKit) || errors.Is(err, service.ErrUnknownCurrency) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error recording donation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Thank you for your donation!",
		"donation": donation,
	})
}

func (h *DonationHandler) MyDonations(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"donations": h.donations.ForDonor(profile.Email)})
}

func (h *DonationHandler) Notifications(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"notifications": h.notifications.ForRole(profile.Role),
		"unread":        h.notifications.UnreadCount(profile.Role),
	})
}

func (h *DonationHandler) MarkNotificationRead(c *gin.Context) {
	if err := h.notifications.MarkRead(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

func (h *DonationHandler) MarkAllNotificationsRead(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	h.notifications.MarkAllRead(profile.Role)
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// RegisterDonationRoutes registers donor routes and the shared notifications
// panel.
func (h *DonationHandler) RegisterDonationRoutes(rg *gin.RouterGroup, donorMW, sessionMW gin.HandlerFunc) {
	donor := rg.Group("/donor")
	donor.Use(donorMW)
	{
		donor.POST("/donations", h.Donate)
		donor.GET("/donations", h.MyDonations)
	}

	notifications := rg.Group("/notifications")
	notifications.Use(sessionMW)
	{
		notifications.GET("", h.Notifications)
		notifications.POST("/:id/read", h.MarkNotificationRead)
		notifications.POST("/read-all", h.MarkAllNotificationsRead)
	}
}
