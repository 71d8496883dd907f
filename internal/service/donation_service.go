package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/repository"
)

var (
	ErrUnknownKit      = errors.New("unknown kit type")
	ErrUnknownCurrency = errors.New("unsupported currency")
)

// DonationService records donor contributions and serves the admin donation
// tracking table.
type DonationService interface {
	Donate(donor *model.UserProfile, req model.DonateRequest) (*model.Donation, error)
	Track() []model.Donation
	ForDonor(email string) []model.Donation
}

type donationService struct {
	repo repository.DonationRepository
}

// NewDonationService creates a DonationService.
func NewDonationService(repo repository.DonationRepository) DonationService {
	return &donationService{repo: repo}
}

// Donate validates the form against the fixed kit and currency sets and
// records the contribution as completed, as the mock flow does.
func (s *donationService) Donate(donor *model.UserProfile, req model.DonateRequest) (*model.Donation, error) {
	if !contains(model.DonationKits, req.KitType) {
		return nil, ErrUnknownKit
	}
	if !contains(model.DonationCurrencies, req.Currency) {
		return nil, ErrUnknownCurrency
	}

	name := donor.Name
	if req.Anonymous {
		name = "Anonymous"
	}

	d := &model.Donation{
		ID:         uuid.NewString(),
		DonorName:  name,
		DonorEmail: donor.Email,
		Amount:     req.Amount,
		Currency:   req.Currency,
		KitType:    req.KitType,
		Status:     model.DonationStatusCompleted,
		Anonymous:  req.Anonymous,
		CreatedAt:  time.Now(),
	}
	s.repo.Insert(*d)
	return d, nil
}

func (s *donationService) Track() []model.Donation {
	return s.repo.List()
}

func (s *donationService) ForDonor(email string) []model.Donation {
	return s.repo.ListByDonorEmail(email)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
