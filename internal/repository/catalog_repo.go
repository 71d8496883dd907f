package repository

import (
	"strings"
	"sync"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
)

// CatalogRepository holds the product catalog and approval submissions. The
// data is seeded in memory and resets on restart.
type CatalogRepository interface {
	List(category, search string) []model.Product
	FindByID(id string) *model.Product
	Insert(p model.Product)
	Update(p model.Product) bool
	Delete(id string) bool
	ListByStatus(status string) []model.Product
}

type catalogRepository struct {
	mu       sync.RWMutex
	products []model.Product
}

// NewCatalogRepository creates a CatalogRepository seeded with the demo
// catalog. Kits are listed first, matching the storefront ordering.
func NewCatalogRepository() CatalogRepository {
	return &catalogRepository{products: seedProducts()}
}

func seedProducts() []model.Product {
	return []model.Product{
		{ID: "kit1", Name: "Family Hygiene Kit", Description: "Complete hygiene kit for a family of 5", Price: 2200, Category: "Hygiene", Stock: 10, Status: model.ApprovalApproved},
		{ID: "kit2", Name: "School WASH Package", Description: "WASH essentials for schools, supporting up to 50 students.", Price: 8500, Category: "Sanitation", Stock: 5, Status: model.ApprovalApproved},
		{ID: "p1", Name: "Water Filter System", Description: "High-quality water filtration for clean drinking water", Price: 2500, Category: "Water", Stock: 15, Manufacturer: "CleanWater Co.", SubmittedBy: "Dave Wilson", Status: model.ApprovalPending},
		{ID: "p2", Name: "Solar Lamp", Description: "Portable solar-powered LED lamp for lighting", Price: 1500, Category: "Energy", Stock: 25, Manufacturer: "SolarTech Ltd.", SubmittedBy: "Bob Smith", Status: model.ApprovalPending, AdminComments: "Price seems high for target market. Consider reducing to KES 1200."},
		{ID: "p3", Name: "Sanitary Pads (Pack)", Description: "Pack of 10 sanitary pads for menstrual hygiene", Price: 300, Category: "Hygiene", Stock: 50, Status: model.ApprovalApproved},
		{ID: "p4", Name: "Soap Bar", Description: "Natural soap bar for personal hygiene", Price: 100, Category: "Hygiene", Stock: 100, Status: model.ApprovalApproved},
		{ID: "p5", Name: "First Aid Kit", Description: "Basic first aid supplies for emergencies", Price: 800, Category: "Sanitation", Stock: 20, Status: model.ApprovalApproved},
		{ID: "p6", Name: "Water Storage Container", Description: "20L water storage container with tap", Price: 1200, Category: "Water", Stock: 30, Status: model.ApprovalApproved},
		{ID: "p7", Name: "Handwashing Station", Description: "Portable handwashing station for schools and clinics", Price: 3500, Category: "Sanitation", Stock: 8, Status: model.ApprovalApproved},
		{ID: "p8", Name: "Rechargeable Torch", Description: "Long-lasting rechargeable torch for home use", Price: 900, Category: "Energy", Stock: 40, Status: model.ApprovalApproved},
	}
}

// List returns products matching the category and search filters. Empty or
// "all" category matches everything.
func (r *catalogRepository) List(category, search string) []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search = strings.ToLower(strings.TrimSpace(search))
	var out []model.Product
	for _, p := range r.products {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *catalogRepository) FindByID(id string) *model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p
		}
	}
	return nil
}

func (r *catalogRepository) Insert(p model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, p)
}

// Update replaces the product with the same ID. Returns false when absent.
func (r *catalogRepository) Update(p model.Product) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = p
			return true
		}
	}
	return false
}

func (r *catalogRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true
		}
	}
	return false
}

func (r *catalogRepository) ListByStatus(status string) []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Product
	for _, p := range r.products {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}
