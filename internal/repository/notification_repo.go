package repository

import (
	"sync"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
)

// NotificationRepository holds the role-scoped notification panel rows.
type NotificationRepository interface {
	ListByRole(role string) []model.Notification
	MarkRead(id string) bool
	MarkAllRead(role string)
}

type notificationRepository struct {
	mu            sync.RWMutex
	notifications []model.Notification
}

// NewNotificationRepository creates a NotificationRepository with the seeded
// per-role notifications.
func NewNotificationRepository() NotificationRepository {
	return &notificationRepository{notifications: []model.Notification{
		{ID: "a1", Role: model.RoleAdmin, Title: "New Product Submission", Message: "Water Filter System by CleanWater Co. requires approval", Timestamp: "2 minutes ago", Type: model.NotificationInfo},
		{ID: "a2", Role: model.RoleAdmin, Title: "User Verification Required", Message: "5 new users need verification", Timestamp: "1 hour ago", Type: model.NotificationWarning},
		{ID: "a3", Role: model.RoleAdmin, Title: "Donation Received", Message: "KES 15,000 donation from Michael Chen for School WASH Pack", Timestamp: "3 hours ago", IsRead: true, Type: model.NotificationSuccess},
		{ID: "b1", Role: model.RoleBuyer, Title: "Order Shipped", Message: "Your order of Solar Lamp is on its way", Timestamp: "30 minutes ago", Type: model.NotificationInfo},
		{ID: "b2", Role: model.RoleBuyer, Title: "New Products Available", Message: "Handwashing Station is now in stock", Timestamp: "2 hours ago", IsRead: true, Type: model.NotificationInfo},
		{ID: "s1", Role: model.RoleSeller, Title: "New Order", Message: "Alice ordered 2x Water Filter System", Timestamp: "1 hour ago", Type: model.NotificationInfo},
		{ID: "t1", Role: model.RoleTransporter, Title: "Delivery Job Posted", Message: "Pickup at Warehouse A, dropoff at Community Center", Timestamp: "20 minutes ago", Type: model.NotificationInfo},
		{ID: "d1", Role: model.RoleDonor, Title: "Impact Update", Message: "Your Hygiene Kit donation reached 10 families", Timestamp: "1 day ago", Type: model.NotificationSuccess},
		{ID: "m1", Role: model.RoleManufacturer, Title: "Submission Reviewed", Message: "Solar Lamp has admin comments awaiting your response", Timestamp: "4 hours ago", Type: model.NotificationWarning},
	}}
}

func (r *notificationRepository) ListByRole(role string) []model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Notification
	for _, n := range r.notifications {
		if n.Role == role {
			out = append(out, n)
		}
	}
	return out
}

func (r *notificationRepository) MarkRead(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].IsRead = true
			return true
		}
	}
	return false
}

func (r *notificationRepository) MarkAllRead(role string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].Role == role {
			r.notifications[i].IsRead = true
		}
	}
}
