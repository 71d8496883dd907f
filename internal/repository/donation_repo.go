package repository

import (
	"sync"
	"time"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
)

// DonationRepository holds recorded donations for the tracking table.
type DonationRepository interface {
	Insert(d model.Donation)
	List() []model.Donation
	ListByDonorEmail(email string) []model.Donation
}

type donationRepository struct {
	mu        sync.RWMutex
	donations []model.Donation
}

// NewDonationRepository creates a DonationRepository with the seeded history.
func NewDonationRepository() DonationRepository {
	return &donationRepository{donations: []model.Donation{
		{
			ID: "d1", DonorName: "Sarah Johnson", DonorEmail: "sarah@email.com",
			Amount: 5000, Currency: "KES", KitType: "Hygiene Kit",
			Status: model.DonationStatusCompleted, Impact: "10 families received hygiene supplies",
			CreatedAt: time.Now().Add(-72 * time.Hour),
		},
		{
			ID: "d2", DonorName: "Anonymous", DonorEmail: "anonymous@email.com",
			Amount: 2500, Currency: "USD", KitType: "Water Kit",
			Status: model.DonationStatusCompleted, Impact: "5 water filters installed",
			Anonymous: true, CreatedAt: time.Now().Add(-96 * time.Hour),
		},
	}}
}

func (r *donationRepository) Insert(d model.Donation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.donations = append(r.donations, d)
}

func (r *donationRepository) List() []model.Donation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Donation, len(r.donations))
	copy(out, r.donations)
	return out
}

func (r *donationRepository) ListByDonorEmail(email string) []model.Donation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Donation
	for _, d := range r.donations {
		if d.DonorEmail == email {
			out = append(out, d)
		}
	}
	return out
}
