package model

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Product is a catalog entry. Prices are whole currency units (KES), no minor
// units anywhere in the prototype.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	Category     string `json:"category"`
	Stock        int    `json:"stock"`
	Manufacturer string `json:"manufacturer,omitempty"`
	SubmittedBy  string `json:"submitted_by,omitempty"`

	// Approval workflow fields, meaningful only on submissions.
	Status        string `json:"status,omitempty"`
	AdminComments string `json:"admin_comments,omitempty"`
}

// CartLine is one product-quantity pair in the buyer's basket. ProductID is
// unique within a cart; quantity validation is the caller's responsibility.
type CartLine struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
}

// Subtotal is the line contribution to the cart total.
func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// CreateProductRequest is the manufacturer product-manager form.
type CreateProductRequest struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"required,gt=0"`
	Stock    int    `json:"stock" binding:"required,gte=0"`
	Category string `json:"category"`
}

// UpdateProductRequest allows partial edits of an owned product.
type UpdateProductRequest struct {
	Name  *string `json:"name,omitempty"`
	Price *int64  `json:"price,omitempty" binding:"omitempty,gt=0"`
	Stock *int    `json:"stock,omitempty" binding:"omitempty,gte=0"`
}

// ReviewProductRequest is the admin approval decision.
type ReviewProductRequest struct {
	Approve  bool   `json:"approve"`
	Comments string `json:"comments"`
}
