package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/repository"
	"github.com/S-Matheka/dignifymarketplace/internal/service"
	"github.com/S-Matheka/dignifymarketplace/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newGateRouter wires the session resolver and the role-gated screens the way
// the server does, with a dashboard route that forwards to the role's screen.
func newGateRouter(t *testing.T) (*gin.Engine, service.SessionService, *utils.JWTUtil) {
	t.Helper()

	repo := repository.NewFileSessionRepository(filepath.Join(t.TempDir(), "session.json"))
	session := service.NewSessionService(repo)
	jwtUtil := utils.NewJWTUtil("test-secret-key", 24)

	r := gin.New()
	r.Use(ResolveSession(jwtUtil, session))

	r.GET(DashboardPath, func(c *gin.Context) {
		profile := CurrentUser(c)
		if profile == nil {
			c.Redirect(http.StatusFound, LandingPath)
			return
		}
		c.Redirect(http.StatusFound, RoleScreenPath(profile.Role))
	})

	for _, role := range model.AllRoles {
		r.GET(RoleScreenPath(role), RequireRole(role), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"screen": c.FullPath()})
		})
	}
	r.GET("/profile", RequireSession(), func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentUser(c))
	})

	return r, session, jwtUtil
}

func loginAs(t *testing.T, session service.SessionService, jwtUtil *utils.JWTUtil, role string) string {
	t.Helper()
	profile := &model.UserProfile{ID: "u-" + role, Name: "Test " + role, Role: role}
	require.NoError(t, session.Set(profile))
	token, err := jwtUtil.GenerateToken(profile.ID, role)
	require.NoError(t, err)
	return token
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGate_AnonymousRedirectsToLanding(t *testing.T) {
	r, _, _ := newGateRouter(t)

	for _, path := range []string{"/profile", "/seller", "/admin", DashboardPath} {
		w := get(r, path, "")
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, LandingPath, w.Header().Get("Location"), path)
	}
}

func TestGate_WrongRoleBouncesThroughDashboard(t *testing.T) {
	r, session, jwtUtil := newGateRouter(t)
	token := loginAs(t, session, jwtUtil, model.RoleSeller)

	// A seller asking for the manufacturer screen lands on the dashboard
	// resolver, which in turn forwards to the seller screen.
	w := get(r, "/manufacturer", token)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, DashboardPath, w.Header().Get("Location"))

	w = get(r, DashboardPath, token)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/seller", w.Header().Get("Location"))
}

func TestGate_MatchingRolePasses(t *testing.T) {
	r, session, jwtUtil := newGateRouter(t)
	token := loginAs(t, session, jwtUtil, model.RoleTransporter)

	w := get(r, "/transporter", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGate_StaleTokenResolvesAnonymous(t *testing.T) {
	r, session, jwtUtil := newGateRouter(t)
	token := loginAs(t, session, jwtUtil, model.RoleBuyer)

	// The session has been replaced; the old bearer token no longer matches.
	require.NoError(t, session.Set(&model.UserProfile{ID: "u-other", Role: model.RoleDonor}))

	w := get(r, "/buyer", token)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LandingPath, w.Header().Get("Location"))
}

func TestGate_LogoutInvalidatesToken(t *testing.T) {
	r, session, jwtUtil := newGateRouter(t)
	token := loginAs(t, session, jwtUtil, model.RoleAdmin)
	require.NoError(t, session.Logout())

	w := get(r, "/admin", token)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LandingPath, w.Header().Get("Location"))
}

func TestGate_MalformedAuthorizationHeaderIgnored(t *testing.T) {
	r, session, jwtUtil := newGateRouter(t)
	loginAs(t, session, jwtUtil, model.RoleBuyer)

	req := httptest.NewRequest(http.MethodGet, "/buyer", nil)
	req.Header.Set("Authorization", "not-a-bearer-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LandingPath, w.Header().Get("Location"))
}

func TestRoleScreenPath(t *testing.T) {
	tests := []struct {
		role string
		path string
	}{
		{model.RoleManufacturer, "/manufacturer"},
		{model.RoleSeller, "/seller"},
		{model.RoleBuyer, "/buyer"},
		{model.RoleTransporter, "/transporter"},
		{model.RoleDonor, "/donor"},
		{model.RoleAdmin, "/admin"},
		{"superuser", LandingPath},
		{"", LandingPath},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.path, RoleScreenPath(tt.role), tt.role)
	}
}
