package repository

import (
	"sync"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
)

// DeliveryRepository holds transporter jobs, seeded with the demo board.
type DeliveryRepository interface {
	ListByStatus(status string) []model.DeliveryJob
	ListByTransporter(transporterID string) []model.DeliveryJob
	Find(id string) *model.DeliveryJob
	Update(job model.DeliveryJob) bool
}

type deliveryRepository struct {
	mu   sync.RWMutex
	jobs []model.DeliveryJob
}

// NewDeliveryRepository creates a DeliveryRepository with the seeded jobs.
func NewDeliveryRepository() DeliveryRepository {
	return &deliveryRepository{jobs: []model.DeliveryJob{
		{ID: "j1", Pickup: "Warehouse A", Dropoff: "Community Center", Status: model.JobStatusAvailable},
		{ID: "j2", Pickup: "Supplier B", Dropoff: "School", Status: model.JobStatusAvailable},
		{ID: "j3", Pickup: "Warehouse A", Dropoff: "Health Clinic", Status: model.JobStatusDelivered, CompletedOn: "2024-02-10"},
	}}
}

func (r *deliveryRepository) ListByStatus(status string) []model.DeliveryJob {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.DeliveryJob
	for _, j := range r.jobs {
		if j.Status == status {
			out = append(out, j)
		}
	}
	return out
}

func (r *deliveryRepository) ListByTransporter(transporterID string) []model.DeliveryJob {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.DeliveryJob
	for _, j := range r.jobs {
		if j.AcceptedBy == transporterID {
			out = append(out, j)
		}
	}
	return out
}

func (r *deliveryRepository) Find(id string) *model.DeliveryJob {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			j := r.jobs[i]
			return &j
		}
	}
	return nil
}

func (r *deliveryRepository) Update(job model.DeliveryJob) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == job.ID {
			r.jobs[i] = job
			return true
		}
	}
	return false
}
