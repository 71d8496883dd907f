package config

import (
	"fmt"
	"os"
	"strconv"
)

// AppConfig holds the runtime settings of the prototype. Everything except the
// JWT secret has a development default so the service starts from a bare
// environment.
type AppConfig struct {
	ServerPort string

	JWTSecret          string
	JWTExpirationHours int64

	// SessionFile is the durable snapshot of the logged-in profile. It is the
	// only state that survives a restart; all domain data is seeded in memory.
	SessionFile string

	// ClearCartOnLogout controls whether the cart is emptied when the session
	// ends. Off by default: the cart store is independent of the session.
	ClearCartOnLogout bool

	// Admin credentials for the admin-login screen. The password is bcrypt
	// hashed at startup; only the hash is kept in memory.
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from environment variables.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		JWTSecret:          os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours: 24,
		SessionFile:        getEnv("SESSION_FILE", "data/session.json"),
		AdminEmail:         getEnv("ADMIN_EMAIL", "admin@dignify.com"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "admin123"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		hours, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS %q: %w", v, err)
		}
		cfg.JWTExpirationHours = hours
	}

	if v := os.Getenv("CLEAR_CART_ON_LOGOUT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CLEAR_CART_ON_LOGOUT %q: %w", v, err)
		}
		cfg.ClearCartOnLogout = b
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
