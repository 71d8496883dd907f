package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/repository"
)

func TestCatalogService_BrowseHidesSubmissions(t *testing.T) {
	svc := NewCatalogService(repository.NewCatalogRepository())

	for _, p := range svc.Browse("", "") {
		assert.Equal(t, model.ApprovalApproved, p.Status, p.Name)
	}
}

func TestCatalogService_BrowseFilters(t *testing.T) {
	svc := NewCatalogService(repository.NewCatalogRepository())

	byCategory := svc.Browse("Energy", "")
	require.NotEmpty(t, byCategory)
	for _, p := range byCategory {
		assert.Equal(t, "Energy", p.Category)
	}

	bySearch := svc.Browse("", "soap")
	require.NotEmpty(t, bySearch)

	assert.Empty(t, svc.Browse("", "no such product"))
}

func TestCatalogService_SubmissionLifecycle(t *testing.T) {
	svc := NewCatalogService(repository.NewCatalogRepository())

	created := svc.CreateProduct("Dave Wilson", model.CreateProductRequest{
		Name:     "Ceramic Pot Filter",
		Price:    1800,
		Stock:    40,
		Category: "Water",
	})
	assert.Equal(t, model.ApprovalPending, created.Status)
	assert.NotEmpty(t, created.ID)

	// Pending submissions stay off the storefront.
	for _, p := range svc.Browse("", "") {
		assert.NotEqual(t, created.ID, p.ID)
	}

	reviewed, err := svc.Review(created.ID, model.ReviewProductRequest{Approve: true, Comments: "Looks solid"})
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalApproved, reviewed.Status)
	assert.Equal(t, "Looks solid", reviewed.AdminComments)

	found := false
	for _, p := range svc.Browse("", "") {
		if p.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCatalogService_ReviewRejection(t *testing.T) {
	svc := NewCatalogService(repository.NewCatalogRepository())

	created := svc.CreateProduct("Dave Wilson", model.CreateProductRequest{Name: "Test Kit", Price: 900, Stock: 5})
	reviewed, err := svc.Review(created.ID, model.ReviewProductRequest{Approve: false, Comments: "Missing certification"})
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalRejected, reviewed.Status)

	// Rejections drop out of the approval queue.
	for _, p := range svc.PendingSubmissions() {
		assert.NotEqual(t, created.ID, p.ID)
	}
}

func TestCatalogService_OwnershipEnforced(t *testing.T) {
	svc := NewCatalogService(repository.NewCatalogRepository())

	created := svc.CreateProduct("Dave Wilson", model.CreateProductRequest{Name: "Bio Filter", Price: 2000, Stock: 10})

	newName := "Bio Filter v2"
	_, err := svc.UpdateProduct("Emma Thompson", created.ID, model.UpdateProductRequest{Name: &newName})
	assert.ErrorIs(t, err, ErrNotProductOwner)

	updated, err := svc.UpdateProduct("Dave Wilson", created.ID, model.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)

	assert.ErrorIs(t, svc.DeleteProduct("Emma Thompson", created.ID), ErrNotProductOwner)
	require.NoError(t, svc.DeleteProduct("Dave Wilson", created.ID))
	_, err = svc.Find(created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_FindUnknown(t *testing.T) {
	svc := NewCatalogService(repository.NewCatalogRepository())

	_, err := svc.Find("no-such-id")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
