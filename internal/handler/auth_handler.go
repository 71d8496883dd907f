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

// AuthHandler serves the admin-login screen, the onboarding wizard, logout,
// and the profile screen.
type AuthHandler struct {
	auth     service.AuthService
	session  service.SessionService
	location service.LocationService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth service.AuthService, session service.SessionService, location service.LocationService) *AuthHandler {
	return &AuthHandler{auth: auth, session: session, location: location}
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req model.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, token, err := h.auth.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials. Please try again."})
			return
		}
		log.Printf("Error during admin login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"user":     profile,
		"token":    token,
		"redirect": middleware.RoleScreenPath(profile.Role),
	})
}

// OnboardingScreen describes the wizard. A logged-in visitor is sent straight
// to their dashboard instead.
func (h *AuthHandler) OnboardingScreen(c *gin.Context) {
	if profile := middleware.CurrentUser(c); profile != nil {
		c.Redirect(http.StatusFound, middleware.RoleScreenPath(profile.Role))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"screen":          "onboarding",
		"roles":           model.AllRoles,
		"payment_methods": model.PaymentMethodIDs,
		"steps":           []string{"Choose Role", "Personal Info", "Location", "Payment"},
	})
}

func (h *AuthHandler) CompleteOnboarding(c *gin.Context) {
	var req model.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, token, err := h.auth.CompleteOnboarding(c.Request.Context(), req)
	if err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
			return
		}
		log.Printf("Error completing onboarding: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete onboarding"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Welcome to Dignify",
		"user":     profile,
		"token":    token,
		"redirect": middleware.RoleScreenPath(profile.Role),
	})
}

// Locate resolves the device position for the location step. Failure is not an
// error response: the wizard shows the message and falls back to manual entry.
func (h *AuthHandler) Locate(c *gin.Context) {
	loc, err := h.location.Locate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"located": false,
			"message": "Unable to get your location. Please enter your address manually.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"located": true, "location": loc})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.session.Logout(); err != nil {
		log.Printf("Error clearing session on logout: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out", "redirect": middleware.LandingPath})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"screen": "profile", "user": middleware.CurrentUser(c)})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req model.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, err := h.session.Update(req)
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": profile})
}

// RegisterAuthRoutes registers auth, onboarding, and profile routes.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, sessionMW gin.HandlerFunc) {
	rg.POST("/admin-login", h.AdminLogin)

	onboarding := rg.Group("/onboarding")
	{
		onboarding.GET("", h.OnboardingScreen)
		onboarding.POST("", h.CompleteOnboarding)
		onboarding.POST("/locate", h.Locate)
	}

	rg.POST("/logout", h.Logout)

	profile := rg.Group("/profile")
	profile.Use(sessionMW)
	{
		profile.GET("", h.Profile)
		profile.PUT("", h.UpdateProfile)
	}
}
