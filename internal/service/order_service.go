package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/repository"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

// OrderService turns the cart into orders at checkout and serves the buyer
// history and seller order list.
type OrderService interface {
	Checkout(buyer *model.UserProfile, req model.CheckoutRequest) (*model.Order, error)
	History(buyerID string) []model.Order
	SellerOrders() []model.Order
	UpdateStatus(orderID, status string) (*model.Order, error)
}

type orderService struct {
	cart   CartService
	orders repository.OrderRepository
}

// NewOrderService creates an OrderService over the shared cart store.
func NewOrderService(cart CartService, orders repository.OrderRepository) OrderService {
	return &orderService{cart: cart, orders: orders}
}

// Checkout snapshots the current cart into an order and clears the cart. An
// empty cart cannot be checked out.
func (s *orderService) Checkout(buyer *model.UserProfile, req model.CheckoutRequest) (*model.Order, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	order := &model.Order{
		ID:             uuid.NewString(),
		BuyerID:        buyer.ID,
		BuyerName:      buyer.Name,
		Lines:          lines,
		Total:          s.cart.Total(),
		DeliveryOption: req.DeliveryOption,
		PaymentMethod:  req.PaymentMethod,
		Status:         model.OrderStatusPending,
		CreatedAt:      time.Now(),
	}
	s.orders.Insert(*order)
	s.cart.Clear()
	return order, nil
}

func (s *orderService) History(buyerID string) []model.Order {
	return s.orders.ListByBuyer(buyerID)
}

func (s *orderService) SellerOrders() []model.Order {
	return s.orders.ListAll()
}

func (s *orderService) UpdateStatus(orderID, status string) (*model.Order, error) {
	if !s.orders.UpdateStatus(orderID, status) {
		return nil, ErrOrderNotFound
	}
	for _, o := range s.orders.ListAll() {
		if o.ID == orderID {
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}
