package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/S-Matheka/dignifymarketplace/internal/config"
	"github.com/S-Matheka/dignifymarketplace/internal/handler"
	"github.com/S-Matheka/dignifymarketplace/internal/middleware"
	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/repository"
	"github.com/S-Matheka/dignifymarketplace/internal/service"
	"github.com/S-Matheka/dignifymarketplace/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Session snapshot stored at: %s", cfg.SessionFile)

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)

	// --- Initialize Repositories ---
	sessionRepo := repository.NewFileSessionRepository(cfg.SessionFile)
	catalogRepo := repository.NewCatalogRepository()
	orderRepo := repository.NewOrderRepository()
	deliveryRepo := repository.NewDeliveryRepository()
	donationRepo := repository.NewDonationRepository()
	directoryRepo := repository.NewDirectoryRepository()
	notificationRepo := repository.NewNotificationRepository()

	// --- Initialize Services ---
	sessionService := service.NewSessionService(sessionRepo)
	cartService := service.NewCartService()
	authService, err := service.NewAuthService(sessionService, jwtUtil, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	locationService := service.NewLocationService(
		service.FixedResolver{Coords: model.Coordinates{Lat: -1.2921, Lng: 36.8219}},
		5*time.Second,
	)
	catalogService := service.NewCatalogService(catalogRepo)
	orderService := service.NewOrderService(cartService, orderRepo)
	deliveryService := service.NewDeliveryService(deliveryRepo)
	donationService := service.NewDonationService(donationRepo)
	directoryService := service.NewDirectoryService(directoryRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	// Whether the basket survives logout is a config switch, not a hardcoded
	// rule.
	if cfg.ClearCartOnLogout {
		sessionService.Subscribe(func(p *model.UserProfile) {
			if p == nil {
				cartService.Clear()
			}
		})
	}

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, sessionService, locationService)
	screenHandler := handler.NewScreenHandler(catalogService, cartService, orderService, deliveryService, donationService, directoryService, notificationService)
	cartHandler := handler.NewCartHandler(cartService, catalogService, orderService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	adminHandler := handler.NewAdminHandler(catalogService, directoryService, donationService)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService, orderService)
	donationHandler := handler.NewDonationHandler(donationService, notificationService)

	// --- Setup Gin Router ---
	router := gin.Default()

	// Simple CORS middleware (allow all for development)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Resolve the session once for every request; gates redirect per screen.
	router.Use(middleware.ResolveSession(jwtUtil, sessionService))

	sessionMW := middleware.RequireSession()
	buyerMW := middleware.RequireRole(model.RoleBuyer)
	sellerMW := middleware.RequireRole(model.RoleSeller)
	manufacturerMW := middleware.RequireRole(model.RoleManufacturer)
	transporterMW := middleware.RequireRole(model.RoleTransporter)
	donorMW := middleware.RequireRole(model.RoleDonor)
	adminMW := middleware.RequireRole(model.RoleAdmin)

	// --- Register Routes ---
	screenHandler.RegisterScreenRoutes(router)

	root := router.Group("")
	authHandler.RegisterAuthRoutes(root, sessionMW)
	cartHandler.RegisterCartRoutes(root, buyerMW)
	catalogHandler.RegisterCatalogRoutes(root, manufacturerMW)
	adminHandler.RegisterAdminRoutes(root, adminMW)
	deliveryHandler.RegisterDeliveryRoutes(root, transporterMW, sellerMW)
	donationHandler.RegisterDonationRoutes(root, donorMW, sessionMW)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
