package repository

import (
	"sync"
	"time"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
)

// OrderRepository holds placed orders, seeded with the demo seller order list.
type OrderRepository interface {
	Insert(o model.Order)
	ListByBuyer(buyerID string) []model.Order
	ListAll() []model.Order
	UpdateStatus(id, status string) bool
}

type orderRepository struct {
	mu     sync.RWMutex
	orders []model.Order
}

// NewOrderRepository creates an OrderRepository with the seeded demo orders.
func NewOrderRepository() OrderRepository {
	return &orderRepository{orders: []model.Order{
		{
			ID: "o1", BuyerID: "seed-alice", BuyerName: "Alice",
			Lines:  []model.CartLine{{ProductID: "p1", Name: "Water Filter System", Price: 2500, Quantity: 2}},
			Total:  5000,
			Status: model.OrderStatusPending, CreatedAt: time.Now().Add(-48 * time.Hour),
		},
		{
			ID: "o2", BuyerID: "seed-bob", BuyerName: "Bob",
			Lines:  []model.CartLine{{ProductID: "p2", Name: "Solar Lamp", Price: 1500, Quantity: 1}},
			Total:  1500,
			Status: model.OrderStatusShipped, CreatedAt: time.Now().Add(-24 * time.Hour),
		},
	}}
}

func (r *orderRepository) Insert(o model.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
}

func (r *orderRepository) ListByBuyer(buyerID string) []model.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Order
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	return out
}

func (r *orderRepository) ListAll() []model.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *orderRepository) UpdateStatus(id, status string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return true
		}
	}
	return false
}
