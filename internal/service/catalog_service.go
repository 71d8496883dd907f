package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/repository"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotProductOwner = errors.New("product is not managed by this account")
)

// Categories shown on the storefront filter.
var Categories = []string{"Water", "Sanitation", "Hygiene", "Energy"}

// CatalogService covers the three product surfaces: the buyer storefront, the
// manufacturer product manager, and the admin approval queue.
type CatalogService interface {
	Browse(category, search string) []model.Product
	Find(productID string) (*model.Product, error)

	// Manufacturer product manager.
	ListOwned(ownerName string) []model.Product
	CreateProduct(ownerName string, req model.CreateProductRequest) model.Product
	UpdateProduct(ownerName, productID string, req model.UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ownerName, productID string) error

	// Admin approval queue.
	PendingSubmissions() []model.Product
	Review(productID string, req model.ReviewProductRequest) (*model.Product, error)
}

type catalogService struct {
	repo repository.CatalogRepository
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

// Browse lists approved products matching the filters; pending and rejected
// submissions never reach the storefront.
func (s *catalogService) Browse(category, search string) []model.Product {
	var out []model.Product
	for _, p := range s.repo.List(category, search) {
		if p.Status == model.ApprovalApproved {
			out = append(out, p)
		}
	}
	return out
}

func (s *catalogService) Find(productID string) (*model.Product, error) {
	p := s.repo.FindByID(productID)
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *catalogService) ListOwned(ownerName string) []model.Product {
	var out []model.Product
	for _, p := range s.repo.List("", "") {
		if p.SubmittedBy == ownerName {
			out = append(out, p)
		}
	}
	return out
}

// CreateProduct registers a new submission; it enters the approval queue as
// pending and stays off the storefront until reviewed.
func (s *catalogService) CreateProduct(ownerName string, req model.CreateProductRequest) model.Product {
	p := model.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		SubmittedBy: ownerName,
		Status:      model.ApprovalPending,
	}
	s.repo.Insert(p)
	return p
}

func (s *catalogService) UpdateProduct(ownerName, productID string, req model.UpdateProductRequest) (*model.Product, error) {
	p := s.repo.FindByID(productID)
	if p == nil {
		return nil, ErrProductNotFound
	}
	if p.SubmittedBy != ownerName {
		return nil, ErrNotProductOwner
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	s.repo.Update(*p)
	return p, nil
}

func (s *catalogService) DeleteProduct(ownerName, productID string) error {
	p := s.repo.FindByID(productID)
	if p == nil {
		return ErrProductNotFound
	}
	if p.SubmittedBy != ownerName {
		return ErrNotProductOwner
	}
	s.repo.Delete(productID)
	return nil
}

func (s *catalogService) PendingSubmissions() []model.Product {
	return s.repo.ListByStatus(model.ApprovalPending)
}

// Review records the admin decision and comments on a submission.
func (s *catalogService) Review(productID string, req model.ReviewProductRequest) (*model.Product, error) {
	p := s.repo.FindByID(productID)
	if p == nil {
		return nil, ErrProductNotFound
	}
	if req.Approve {
		p.Status = model.ApprovalApproved
	} else {
		p.Status = model.ApprovalRejected
	}
	p.AdminComments = req.Comments
	s.repo.Update(*p)
	return p, nil
}
