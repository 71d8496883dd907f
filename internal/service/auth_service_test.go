package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/repository"
	"github.com/S-Matheka/dignifymarketplace/internal/utils"
)

func newAuthFixture(t *testing.T) (AuthService, SessionService) {
	t.Helper()
	repo := repository.NewFileSessionRepository(filepath.Join(t.TempDir(), "session.json"))
	session := NewSessionService(repo)
	jwtUtil := utils.NewJWTUtil("test-secret-key", 24)
	auth, err := NewAuthService(session, jwtUtil, "admin@dignify.com", "admin123")
	require.NoError(t, err)
	return auth, session
}

func validOnboarding() model.OnboardingRequest {
	return model.OnboardingRequest{
		Role:            model.RoleBuyer,
		Name:            "Grace Wanjiku",
		Email:           "grace@example.com",
		Phone:           "+254711223344",
		Password:        "secret99",
		ConfirmPassword: "secret99",
		Location:        model.Location{Address: "Kisumu, Kenya"},
		PaymentMethods:  []string{"mpesa", "card"},
	}
}

func TestAuthService_AdminLoginSuccess(t *testing.T) {
	auth, session := newAuthFixture(t)

	profile, token, err := auth.AdminLogin(context.Background(), "admin@dignify.com", "admin123")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, model.RoleAdmin, profile.Role)
	assert.NotEmpty(t, token)

	current := session.Current()
	require.NotNil(t, current)
	assert.Equal(t, profile.ID, current.ID)
}

func TestAuthService_AdminLoginEmailCaseInsensitive(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, _, err := auth.AdminLogin(context.Background(), "ADMIN@Dignify.com", "admin123")
	assert.NoError(t, err)
}

func TestAuthService_AdminLoginWrongPassword(t *testing.T) {
	auth, session := newAuthFixture(t)

	profile, token, err := auth.AdminLogin(context.Background(), "admin@dignify.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, profile)
	assert.Empty(t, token)
	assert.Nil(t, session.Current())
}

func TestAuthService_AdminLoginUnknownEmail(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, _, err := auth.AdminLogin(context.Background(), "someone@else.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_OnboardingCreatesSession(t *testing.T) {
	auth, session := newAuthFixture(t)

	profile, token, err := auth.CompleteOnboarding(context.Background(), validOnboarding())
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.NotEmpty(t, profile.ID)
	assert.NotEmpty(t, token)
	assert.Equal(t, model.RoleBuyer, profile.Role)
	assert.False(t, profile.IsVerified)
	assert.Equal(t, []string{"mpesa", "card"}, profile.PaymentMethods)

	current := session.Current()
	require.NotNil(t, current)
	assert.Equal(t, profile.ID, current.ID)
}

func TestAuthService_OnboardingDropsPaymentMethodsForNonBuyers(t *testing.T) {
	auth, _ := newAuthFixture(t)

	req := validOnboarding()
	req.Role = model.RoleSeller
	profile, _, err := auth.CompleteOnboarding(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, profile.PaymentMethods)
}

func TestAuthService_OnboardingValidation(t *testing.T) {
	auth, session := newAuthFixture(t)

	tests := []struct {
		name    string
		mutate  func(*model.OnboardingRequest)
		field   string
		message string
	}{
		{"missing name", func(r *model.OnboardingRequest) { r.Name = "  " }, "name", "Name is required"},
		{"missing email", func(r *model.OnboardingRequest) { r.Email = "" }, "email", "Email is required"},
		{"invalid email", func(r *model.OnboardingRequest) { r.Email = "not-an-email" }, "email", "Email is invalid"},
		{"missing phone", func(r *model.OnboardingRequest) { r.Phone = "" }, "phone", "Phone number is required"},
		{"missing password", func(r *model.OnboardingRequest) { r.Password = "" }, "password", "Password is required"},
		{"short password", func(r *model.OnboardingRequest) {
			r.Password = "abc"
			r.ConfirmPassword = "abc"
		}, "password", "Password must be at least 6 characters"},
		{"mismatched passwords", func(r *model.OnboardingRequest) { r.ConfirmPassword = "different" }, "confirm_password", "Passwords do not match"},
		{"invalid role", func(r *model.OnboardingRequest) { r.Role = "superuser" }, "role", "Please choose a role"},
		{"missing address", func(r *model.OnboardingRequest) { r.Location.Address = "" }, "address", "Location is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOnboarding()
			tt.mutate(&req)

			_, _, err := auth.CompleteOnboarding(context.Background(), req)
			var fieldErrs FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, tt.message, fieldErrs[tt.field])
		})
	}

	// None of the failed attempts should have installed a session.
	assert.Nil(t, session.Current())
}

func TestFieldErrors_ErrorListsFieldsSorted(t *testing.T) {
	errs := FieldErrors{"phone": "x", "email": "y"}
	assert.Equal(t, "invalid fields: email, phone", errs.Error())
}
