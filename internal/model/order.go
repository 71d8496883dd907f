package model

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

const (
	DeliveryOptionPickup   = "pickup"
	DeliveryOptionDelivery = "delivery"
)

// Order is the snapshot of a cart at checkout time.
type Order struct {
	ID             string     `json:"id"`
	BuyerID        string     `json:"buyer_id"`
	BuyerName      string     `json:"buyer_name"`
	Lines          []CartLine `json:"lines"`
	Total          int64      `json:"total"`
	DeliveryOption string     `json:"delivery_option"`
	PaymentMethod  string     `json:"payment_method"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

// CheckoutRequest selects delivery and payment for the current cart.
type CheckoutRequest struct {
	DeliveryOption string `json:"delivery_option" binding:"required,oneof=pickup delivery"`
	PaymentMethod  string `json:"payment_method" binding:"required"`
}

const (
	JobStatusAvailable = "available"
	JobStatusAccepted  = "accepted"
	JobStatusDelivered = "delivered"
)

// DeliveryJob is a transporter work item.
type DeliveryJob struct {
	ID          string `json:"id"`
	Pickup      string `json:"pickup"`
	Dropoff     string `json:"dropoff"`
	Status      string `json:"status"`
	AcceptedBy  string `json:"accepted_by,omitempty"`
	CompletedOn string `json:"completed_on,omitempty"`
}
