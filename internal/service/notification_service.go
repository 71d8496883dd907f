package service

import (
	"errors"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/repository"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService serves the role-scoped notification panel.
type NotificationService interface {
	ForRole(role string) []model.Notification
	UnreadCount(role string) int
	MarkRead(id string) error
	MarkAllRead(role string)
}

type notificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) ForRole(role string) []model.Notification {
	return s.repo.ListByRole(role)
}

func (s *notificationService) UnreadCount(role string) int {
	count := 0
	for _, n := range s.repo.ListByRole(role) {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func (s *notificationService) MarkRead(id string) error {
	if !s.repo.MarkRead(id) {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) MarkAllRead(role string) {
	s.repo.MarkAllRead(role)
}
