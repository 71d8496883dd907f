package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials. Please try again")
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// FieldErrors maps a form field to its inline validation message. It is
// surfaced next to the offending field, never thrown.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

// AuthService handles the two login paths: the admin login screen and the
// onboarding wizard. Both install the resulting profile into the session store
// and issue a signed token for subsequent requests.
type AuthService interface {
	AdminLogin(ctx context.Context, email, password string) (*model.UserProfile, string, error)
	CompleteOnboarding(ctx context.Context, req model.OnboardingRequest) (*model.UserProfile, string, error)
}

type authService struct {
	session           SessionService
	jwtUtil           *utils.JWTUtil
	adminEmail        string
	adminPasswordHash string
}

// NewAuthService creates an AuthService. The admin password is bcrypt hashed
// once here; the plain text is not retained.
func NewAuthService(session SessionService, jwtUtil *utils.JWTUtil, adminEmail, adminPassword string) (AuthService, error) {
	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authService{
		session:           session,
		jwtUtil:           jwtUtil,
		adminEmail:        adminEmail,
		adminPasswordHash: hash,
	}, nil
}

// AdminLogin checks the fixed admin credentials and, on success, installs the
// platform administrator profile as the session.
func (s *authService) AdminLogin(ctx context.Context, email, password string) (*model.UserProfile, string, error) {
	if !strings.EqualFold(email, s.adminEmail) || !utils.CheckPasswordHash(password, s.adminPasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	profile := &model.UserProfile{
		ID:         "admin-1",
		Name:       "Platform Administrator",
		Email:      s.adminEmail,
		Phone:      "+254700000000",
		Role:       model.RoleAdmin,
		Location:   model.Location{Address: "Nairobi, Kenya"},
		IsVerified: true,
		CreatedAt:  time.Now(),
	}

	if err := s.session.Set(profile); err != nil {
		return nil, "", fmt.Errorf("failed to store admin session: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(profile.ID, profile.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return profile, token, nil
}

// CompleteOnboarding validates the wizard state, creates a new unverified
// profile, and installs it as the session. Validation failures come back as
// FieldErrors keyed by form field.
func (s *authService) CompleteOnboarding(ctx context.Context, req model.OnboardingRequest) (*model.UserProfile, string, error) {
	if errs := validateOnboarding(req); len(errs) > 0 {
		return nil, "", errs
	}

	// Payment methods are collected only on the buyer path.
	methods := req.PaymentMethods
	if req.Role != model.RoleBuyer {
		methods = nil
	}

	profile := &model.UserProfile{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		Role:           req.Role,
		Location:       req.Location,
		PaymentMethods: methods,
		IsVerified:     false,
		CreatedAt:      time.Now(),
	}

	if err := s.session.Set(profile); err != nil {
		return nil, "", fmt.Errorf("failed to store session: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(profile.ID, profile.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return profile, token, nil
}

func validateOnboarding(req model.OnboardingRequest) FieldErrors {
	errs := FieldErrors{}

	if !model.ValidRole(req.Role) {
		errs["role"] = "Please choose a role"
	}
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		errs["email"] = "Email is invalid"
	}
	if strings.TrimSpace(req.Phone) == "" {
		errs["phone"] = "Phone number is required"
	}
	if req.Password == "" {
		errs["password"] = "Password is required"
	} else if len(req.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if req.Password != req.ConfirmPassword {
		errs["confirm_password"] = "Passwords do not match"
	}
	if strings.TrimSpace(req.Location.Address) == "" {
		errs["address"] = "Location is required"
	}
	return errs
}
