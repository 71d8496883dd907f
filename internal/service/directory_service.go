package service

import (
	"errors"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/repository"
)

var ErrDirectoryUserNotFound = errors.New("user not found")

// DirectoryService backs the admin user-management table.
type DirectoryService interface {
	List(search, role, status string) []model.DirectoryUser
	Verify(id string) error
	ToggleBan(id string) (bool, error)
	Remove(id string) error
}

type directoryService struct {
	repo repository.DirectoryRepository
}

// NewDirectoryService creates a DirectoryService.
func NewDirectoryService(repo repository.DirectoryRepository) DirectoryService {
	return &directoryService{repo: repo}
}

func (s *directoryService) List(search, role, status string) []model.DirectoryUser {
	return s.repo.List(search, role, status)
}

func (s *directoryService) Verify(id string) error {
	if !s.repo.Verify(id) {
		return ErrDirectoryUserNotFound
	}
	return nil
}

func (s *directoryService) ToggleBan(id string) (bool, error) {
	banned, ok := s.repo.ToggleBan(id)
	if !ok {
		return false, ErrDirectoryUserNotFound
	}
	return banned, nil
}

func (s *directoryService) Remove(id string) error {
	if !s.repo.Remove(id) {
		return ErrDirectoryUserNotFound
	}
	return nil
}
