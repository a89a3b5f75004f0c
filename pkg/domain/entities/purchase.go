package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseStatus represents the approval/delivery state of a purchase
type PurchaseStatus int

const (
	PurchasePending PurchaseStatus = iota
	PurchaseApproved
	PurchaseDelivered
)

// String method for PurchaseStatus enum
func (s PurchaseStatus) String() string {
	switch s {
	case PurchasePending:
		return "pending"
	case PurchaseApproved:
		return "approved"
	case PurchaseDelivered:
		return "delivered"
	default:
		return "unknown"
	}
}

// ParsePurchaseStatus converts a status string to its enum value
func ParsePurchaseStatus(s string) (PurchaseStatus, error) {
	switch s {
	case "pending":
		return PurchasePending, nil
	case "approved":
		return PurchaseApproved, nil
	case "delivered":
		return PurchaseDelivered, nil
	default:
		return 0, fmt.Errorf("invalid purchase status: %s", s)
	}
}

// PurchaseItem represents one line of a purchase, owned exclusively by it
type PurchaseItem struct {
	ID         string
	PurchaseID string
	MaterialID string
	Quantity   Quantity
	UnitPrice  decimal.Decimal
	LineTotal  decimal.Decimal
}

// NewPurchaseItem creates a validated PurchaseItem with its line total
// computed from quantity and unit price
func NewPurchaseItem(id, purchaseID, materialID string, quantity Quantity, unitPrice decimal.Decimal) (PurchaseItem, error) {
	if id == "" {
		return PurchaseItem{}, fmt.Errorf("purchase item id cannot be empty")
	}
	if materialID == "" {
		return PurchaseItem{}, fmt.Errorf("purchase item material id cannot be empty")
	}
	if quantity <= 0 {
		return PurchaseItem{}, fmt.Errorf("purchase item quantity must be positive, got %d", quantity)
	}
	if unitPrice.IsNegative() {
		return PurchaseItem{}, fmt.Errorf("purchase item unit price cannot be negative, got %s", unitPrice)
	}

	return PurchaseItem{
		ID:         id,
		PurchaseID: purchaseID,
		MaterialID: materialID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		LineTotal:  unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Purchase represents an order of materials from a supplier, composed of
// line items, progressing through pending/approved/delivered states
type Purchase struct {
	ID            string
	ProjectID     string
	Supplier      string
	PurchaseDate  time.Time
	TotalCost     decimal.Decimal
	InvoiceNumber string
	Status        PurchaseStatus
	Items         []PurchaseItem
	DeliveredAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewPurchase creates a validated Purchase. The total cost is the sum of
// the item line totals; it is fixed at creation and not re-validated later.
func NewPurchase(id, projectID, supplier string, purchaseDate time.Time, invoiceNumber string, status PurchaseStatus, items []PurchaseItem) (*Purchase, error) {
	if id == "" {
		return nil, fmt.Errorf("purchase id cannot be empty")
	}
	if projectID == "" {
		return nil, fmt.Errorf("purchase project id cannot be empty")
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal)
	}

	now := time.Now()
	return &Purchase{
		ID:            id,
		ProjectID:     projectID,
		Supplier:      supplier,
		PurchaseDate:  purchaseDate,
		TotalCost:     total,
		InvoiceNumber: invoiceNumber,
		Status:        status,
		Items:         items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// PurchaseUpdate carries the fields of a partial purchase update.
// Nil fields are left unchanged; a nil Items slice keeps the current items.
type PurchaseUpdate struct {
	Supplier      *string
	PurchaseDate  *time.Time
	TotalCost     *decimal.Decimal
	InvoiceNumber *string
	Status        *PurchaseStatus
	Items         []PurchaseItem
}
