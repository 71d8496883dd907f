package repository

import (
	"strings"
	"sync"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
)

// DirectoryRepository holds the admin user-management table.
type DirectoryRepository interface {
	List(search, role, status string) []model.DirectoryUser
	Verify(id string) bool
	ToggleBan(id string) (banned bool, ok bool)
	Remove(id string) bool
}

type directoryRepository struct {
	mu    sync.RWMutex
	users []model.DirectoryUser
}

// NewDirectoryRepository creates a DirectoryRepository with the seeded users.
func NewDirectoryRepository() DirectoryRepository {
	return &directoryRepository{users: []model.DirectoryUser{
		{ID: "1", Name: "Alice Johnson", Email: "alice@email.com", Role: model.RoleBuyer, IsVerified: true, JoinDate: "2024-01-15"},
		{ID: "2", Name: "Bob Smith", Email: "bob@email.com", Role: model.RoleSeller, JoinDate: "2024-02-03"},
		{ID: "3", Name: "Carol Davis", Email: "carol@email.com", Role: model.RoleDonor, IsVerified: true, IsBanned: true, JoinDate: "2024-01-28"},
		{ID: "4", Name: "Dave Wilson", Email: "dave@email.com", Role: model.RoleManufacturer, JoinDate: "2024-02-10"},
		{ID: "5", Name: "Emma Brown", Email: "emma@email.com", Role: model.RoleTransporter, IsVerified: true, JoinDate: "2024-01-20"},
		{ID: "6", Name: "Frank Miller", Email: "frank@email.com", Role: model.RoleBuyer, JoinDate: "2024-02-15"},
	}}
}

// List filters by free-text search over name/email, role, and verification or
// ban status ("verified", "unverified", "banned", "" or "all" for everyone).
func (r *directoryRepository) List(search, role, status string) []model.DirectoryUser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search = strings.ToLower(strings.TrimSpace(search))
	var out []model.DirectoryUser
	for _, u := range r.users {
		if search != "" && !strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		if role != "" && role != "all" && u.Role != role {
			continue
		}
		switch status {
		case "verified":
			if !u.IsVerified {
				continue
			}
		case "unverified":
			if u.IsVerified {
				continue
			}
		case "banned":
			if !u.IsBanned {
				continue
			}
		}
		out = append(out, u)
	}
	return out
}

func (r *directoryRepository) Verify(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].IsVerified = true
			return true
		}
	}
	return false
}

func (r *directoryRepository) ToggleBan(id string) (bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].IsBanned = !r.users[i].IsBanned
			return r.users[i].IsBanned, true
		}
	}
	return false, false
}

func (r *directoryRepository) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true
		}
	}
	return false
}
