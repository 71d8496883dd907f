package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/service"
	"github.com/S-Matheka/dignifymarketplace/internal/utils"
)

const CurrentUserKey = "currentUser"

// ResolveSession attaches the logged-in profile to the request context when a
// valid bearer token matches the session store. It never aborts; the gate
// middlewares decide what an anonymous request may see.
func ResolveSession(jwtUtil *utils.JWTUtil, session service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.Next()
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			c.Next()
			return
		}

		// The token only names a profile; the session store is the source of
		// truth. A stale token for a logged-out or replaced session resolves
		// to anonymous.
		profile := session.Current()
		if profile == nil || profile.ID != claims.UserID {
			c.Next()
			return
		}

		c.Set(CurrentUserKey, profile)
		c.Next()
	}
}

// CurrentUser returns the profile resolved for this request, or nil.
func CurrentUser(c *gin.Context) *model.UserProfile {
	v, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	profile, ok := v.(*model.UserProfile)
	if !ok {
		return nil
	}
	return profile
}
