package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/S-Matheka/dignifymarketplace/internal/middleware"
	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/service"
)

// ScreenHandler serves the unscoped screens, the dashboard resolver, and the
// six role dashboards.
type ScreenHandler struct {
	catalog       service.CatalogService
	cart          service.CartService
	orders        service.OrderService
	deliveries    service.DeliveryService
	donations     service.DonationService
	directory     service.DirectoryService
	notifications service.NotificationService
}

// NewScreenHandler creates a new ScreenHandler
func NewScreenHandler(
	catalog service.CatalogService,
	cart service.CartService,
	orders service.OrderService,
	deliveries service.DeliveryService,
	donations service.DonationService,
	directory service.DirectoryService,
	notifications service.NotificationService,
) *ScreenHandler {
	return &ScreenHandler{
		catalog:       catalog,
		cart:          cart,
		orders:        orders,
		deliveries:    deliveries,
		donations:     donations,
		directory:     directory,
		notifications: notifications,
	}
}

// Landing renders unconditionally.
func (h *ScreenHandler) Landing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"screen":  "landing",
		"title":   "Dignify Marketplace",
		"tagline": "Essential products for every community",
	})
}

// Dashboard is the generic resolver: it maps the session's role to its screen
// via the closed role switch. No session or an unrecognized role falls back to
// the landing screen.
func (h *ScreenHandler) Dashboard(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	if profile == nil {
		c.Redirect(http.StatusFound, middleware.LandingPath)
		return
	}
	c.Redirect(http.StatusFound, middleware.RoleScreenPath(profile.Role))
}

// Products is the auth-aware storefront entry. Anonymous visitors get the
// sign-in prompt; the screen itself renders unconditionally.
func (h *ScreenHandler) Products(c *gin.Context) {
	if middleware.CurrentUser(c) == nil {
		c.JSON(http.StatusOK, gin.H{
			"screen":  "product-browse-prompt",
			"message": "To browse and purchase products, you need to create an account or sign in.",
			"actions": []string{"/onboarding"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"screen":     "product-browse",
		"categories": service.Categories,
		"products":   h.catalog.Browse(c.Query("category"), c.Query("search")),
	})
}

func (h *ScreenHandler) Unauthorized(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"screen":  "unauthorized",
		"message": "You do not have access to this page.",
	})
}

func (h *ScreenHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"screen":  "not-found",
		"message": "Page not found",
	})
}

func (h *ScreenHandler) ManufacturerDashboard(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"screen":   "manufacturer-dashboard",
		"user":     profile,
		"products": h.catalog.ListOwned(profile.Name),
		"unread":   h.notifications.UnreadCount(model.RoleManufacturer),
	})
}

func (h *ScreenHandler) SellerDashboard(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"screen": "seller-dashboard",
		"user":   profile,
		"orders": h.orders.SellerOrders(),
		"unread": h.notifications.UnreadCount(model.RoleSeller),
	})
}

func (h *ScreenHandler) BuyerDashboard(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"screen":     "buyer-dashboard",
		"user":       profile,
		"categories": service.Categories,
		"products":   h.catalog.Browse(c.Query("category"), c.Query("search")),
		"cart_size":  len(h.cart.Lines()),
		"cart_total": h.cart.Total(),
		"unread":     h.notifications.UnreadCount(model.RoleBuyer),
	})
}

func (h *ScreenHandler) TransporterDashboard(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"screen":    "transporter-dashboard",
		"user":      profile,
		"available": h.deliveries.Available(),
		"history":   h.deliveries.History(profile.ID),
		"unread":    h.notifications.UnreadCount(model.RoleTransporter),
	})
}

func (h *ScreenHandler) DonorDashboard(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"screen":     "donor-dashboard",
		"user":       profile,
		"kits":       model.DonationKits,
		"currencies": model.DonationCurrencies,
		"donations":  h.donations.ForDonor(profile.Email),
		"unread":     h.notifications.UnreadCount(model.RoleDonor),
	})
}

func (h *ScreenHandler) AdminDashboard(c *gin.Context) {
	profile := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"screen":              "admin-dashboard",
		"user":                profile,
		"pending_submissions": h.catalog.PendingSubmissions(),
		"users":               h.directory.List("", "", ""),
		"donations":           h.donations.Track(),
		"unread":              h.notifications.UnreadCount(model.RoleAdmin),
	})
}

// RegisterScreenRoutes registers the route surface of the app: unscoped
// screens plus the six role-gated dashboards.
func (h *ScreenHandler) RegisterScreenRoutes(r *gin.Engine) {
	r.GET("/", h.Landing)
	r.GET("/products", h.Products)
	r.GET("/dashboard", h.Dashboard)
	r.GET("/unauthorized", h.Unauthorized)
	r.NoRoute(h.NotFound)

	r.GET("/manufacturer", middleware.RequireRole(model.RoleManufacturer), h.ManufacturerDashboard)
	r.GET("/seller", middleware.RequireRole(model.RoleSeller), h.SellerDashboard)
	r.GET("/buyer", middleware.RequireRole(model.RoleBuyer), h.BuyerDashboard)
	r.GET("/transporter", middleware.RequireRole(model.RoleTransporter), h.TransporterDashboard)
	r.GET("/donor", middleware.RequireRole(model.RoleDonor), h.DonorDashboard)
	r.GET("/admin", middleware.RequireRole(model.RoleAdmin), h.AdminDashboard)
}
