package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/repository"
)

func donorProfile() *model.UserProfile {
	return &model.UserProfile{ID: "donor-1", Name: "Sarah Johnson", Email: "sarah@example.com", Role: model.RoleDonor}
}

func TestDonationService_Donate(t *testing.T) {
	svc := NewDonationService(repository.NewDonationRepository())

	d, err := svc.Donate(donorProfile(), model.DonateRequest{
		KitType:  "Water Kit",
		Amount:   3000,
		Currency: "KES",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", d.DonorName)
	assert.Equal(t, model.DonationStatusCompleted, d.Status)

	mine := svc.ForDonor("sarah@example.com")
	found := false
	for _, rec := range mine {
		if rec.ID == d.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDonationService_AnonymousDonationMasksName(t *testing.T) {
	svc := NewDonationService(repository.NewDonationRepository())

	d, err := svc.Donate(donorProfile(), model.DonateRequest{
		KitType:   "Hygiene Kit",
		Amount:    1500,
		Currency:  "USD",
		Anonymous: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", d.DonorName)
	assert.True(t, d.Anonymous)
}

func TestDonationService_RejectsUnknownKitAndCurrency(t *testing.T) {
	svc := NewDonationService(repository.NewDonationRepository())

	_, err := svc.Donate(donorProfile(), model.DonateRequest{KitType: "Mystery Kit", Amount: 100, Currency: "KES"})
	assert.ErrorIs(t, err, ErrUnknownKit)

	_, err = svc.Donate(donorProfile(), model.DonateRequest{KitType: "Water Kit", Amount: 100, Currency: "ZZZ"})
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestDonationService_TrackIncludesSeeded(t *testing.T) {
	svc := NewDonationService(repository.NewDonationRepository())

	assert.NotEmpty(t, svc.Track())
}
