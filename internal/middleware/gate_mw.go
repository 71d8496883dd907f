package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
)

const (
	LandingPath   = "/"
	DashboardPath = "/dashboard"
)

// RequireSession gates screens that need a logged-in profile. Anonymous
// requests are redirected to the public landing screen, never rejected with an
// error.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusFound, LandingPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole gates a role-scoped screen. Anonymous requests go to the landing
// screen; a session with the wrong role goes to the dashboard resolver, which
// lands it on its own screen.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := CurrentUser(c)
		if profile == nil {
			c.Redirect(http.StatusFound, LandingPath)
			c.Abort()
			return
		}
		if profile.Role != role {
			c.Redirect(http.StatusFound, DashboardPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RoleScreenPath maps a role to its dashboard screen. The switch is exhaustive
// over the closed role set; anything else falls back to the landing screen.
func RoleScreenPath(role string) string {
	switch role {
	case model.RoleManufacturer:
		return "/manufacturer"
	case model.RoleSeller:
		return "/seller"
	case model.RoleBuyer:
		return "/buyer"
	case model.RoleTransporter:
		return "/transporter"
	case model.RoleDonor:
		return "/donor"
	case model.RoleAdmin:
		return "/admin"
	default:
		return LandingPath
	}
}
