package model

// OnboardingRequest carries the collected wizard state: role selection,
// registration form, location step, and (for buyers) payment methods.
type OnboardingRequest struct {
	Role            string   `json:"role"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirm_password"`
	Location        Location `json:"location"`
	PaymentMethods  []string `json:"payment_methods"`
}

// AdminLoginRequest is the admin-login form.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Payment method identifiers offered during onboarding.
var PaymentMethodIDs = []string{"mpesa", "card", "lipa-pole-pole"}
