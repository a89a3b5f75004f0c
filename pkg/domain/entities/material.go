package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Quantity represents an integer quantity of a tracked material
type Quantity int64

// Material represents a catalog item with unit price and tracked stock level
type Material struct {
	ID        string
	Name      string
	Unit      string
	Supplier  string
	UnitPrice decimal.Decimal
	Category  string
	Stock     Quantity
	MinStock  Quantity
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMaterial creates a validated Material
func NewMaterial(id, name, unit, supplier string, unitPrice decimal.Decimal, category string, stock, minStock Quantity) (*Material, error) {
	if id == "" {
		return nil, fmt.Errorf("material id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("material name cannot be empty")
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("material unit price cannot be negative, got %s", unitPrice)
	}
	if stock < 0 {
		return nil, fmt.Errorf("material stock cannot be negative, got %d", stock)
	}
	if minStock < 0 {
		return nil, fmt.Errorf("material minimum stock cannot be negative, got %d", minStock)
	}

	now := time.Now()
	return &Material{
		ID:        id,
		Name:      name,
		Unit:      unit,
		Supplier:  supplier,
		UnitPrice: unitPrice,
		Category:  category,
		Stock:     stock,
		MinStock:  minStock,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// LowStock reports whether the current stock is at or below the minimum.
// The <= comparison is the single low-stock rule used everywhere.
func (m *Material) LowStock() bool {
	return m.Stock <= m.MinStock
}

// MaterialUpdate carries the fields of a partial material update.
// Nil fields are left unchanged.
type MaterialUpdate struct {
	Name      *string
	Unit      *string
	Supplier  *string
	UnitPrice *decimal.Decimal
	Category  *string
	Stock     *Quantity
	MinStock  *Quantity
}
