package model

import "time"

const (
	DonationStatusCompleted = "completed"
	DonationStatusPending   = "pending"
)

// Kit types offered on the donation form.
var DonationKits = []string{"Hygiene Kit", "Water Kit", "Menstrual Kit", "School WASH Pack"}

// Currencies accepted on the donation form.
var DonationCurrencies = []string{"KES", "USD", "EUR", "GBP"}

// Donation is a recorded contribution toward a kit type.
type Donation struct {
	ID         string    `json:"id"`
	DonorName  string    `json:"donor_name"`
	DonorEmail string    `json:"donor_email"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	KitType    string    `json:"kit_type"`
	Status     string    `json:"status"`
	Impact     string    `json:"impact,omitempty"`
	Anonymous  bool      `json:"anonymous"`
	CreatedAt  time.Time `json:"created_at"`
}

// DonateRequest is the donation form payload.
type DonateRequest struct {
	KitType   string `json:"kit_type" binding:"required"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Currency  string `json:"currency" binding:"required"`
	Anonymous bool   `json:"anonymous"`
}
