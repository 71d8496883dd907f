package model

import "time"

const (
	RoleManufacturer = "manufacturer"
	RoleSeller       = "seller"
	RoleBuyer        = "buyer"
	RoleTransporter  = "transporter"
	RoleDonor        = "donor"
	RoleAdmin        = "admin"
)

// AllRoles is the closed set of participant kinds. Role is immutable after a
// profile is created; there is no role-change flow.
var AllRoles = []string{
	RoleManufacturer,
	RoleSeller,
	RoleBuyer,
	RoleTransporter,
	RoleDonor,
	RoleAdmin,
}

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Coordinates is an optional lat/lng pair captured during onboarding.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a free-text address plus optional coordinates.
type Location struct {
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// UserProfile represents the authenticated participant. A profile is created at
// the end of onboarding or by admin login, mutated only via explicit profile
// edits, and cleared on logout.
type UserProfile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Role           string    `json:"role"`
	Location       Location  `json:"location"`
	PaymentMethods []string  `json:"payment_methods"`
	IsVerified     bool      `json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
}

// ProfileUpdate carries a shallow partial update of editable profile fields.
// Nil fields are left untouched; Role is intentionally absent.
type ProfileUpdate struct {
	Name           *string   `json:"name,omitempty"`
	Email          *string   `json:"email,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Location       *Location `json:"location,omitempty"`
	PaymentMethods *[]string `json:"payment_methods,omitempty"`
}

// DirectoryUser is a row in the admin user-management table.
type DirectoryUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	IsBanned   bool   `json:"is_banned"`
	JoinDate   string `json:"join_date"`
}
