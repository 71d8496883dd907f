package service

import (
	"errors"
	"time"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/repository"
)

var (
	ErrJobNotFound = errors.New("delivery job not found")
	ErrJobNotOpen  = errors.New("delivery job is no longer available")
	ErrJobNotOwned = errors.New("delivery job was accepted by another transporter")
)

// DeliveryService serves the transporter board: open jobs, accepting a job,
// and the completed-delivery history.
type DeliveryService interface {
	Available() []model.DeliveryJob
	Accept(jobID, transporterID string) (*model.DeliveryJob, error)
	Complete(jobID, transporterID string) (*model.DeliveryJob, error)
	History(transporterID string) []model.DeliveryJob
}

type deliveryService struct {
	repo repository.DeliveryRepository
}

// NewDeliveryService creates a DeliveryService.
func NewDeliveryService(repo repository.DeliveryRepository) DeliveryService {
	return &deliveryService{repo: repo}
}

func (s *deliveryService) Available() []model.DeliveryJob {
	return s.repo.ListByStatus(model.JobStatusAvailable)
}

func (s *deliveryService) Accept(jobID, transporterID string) (*model.DeliveryJob, error) {
	job := s.repo.Find(jobID)
	if job == nil {
		return nil, ErrJobNotFound
	}
	if job.Status != model.JobStatusAvailable {
		return nil, ErrJobNotOpen
	}
	job.Status = model.JobStatusAccepted
	job.AcceptedBy = transporterID
	s.repo.Update(*job)
	return job, nil
}

func (s *deliveryService) Complete(jobID, transporterID string) (*model.DeliveryJob, error) {
	job := s.repo.Find(jobID)
	if job == nil {
		return nil, ErrJobNotFound
	}
	if job.AcceptedBy != transporterID {
		return nil, ErrJobNotOwned
	}
	job.Status = model.JobStatusDelivered
	job.CompletedOn = time.Now().Format("2006-01-02")
	s.repo.Update(*job)
	return job, nil
}

func (s *deliveryService) History(transporterID string) []model.DeliveryJob {
	return s.repo.ListByTransporter(transporterID)
}
