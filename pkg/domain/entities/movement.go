package entities

import (
	"fmt"
	"time"
)

// MovementKind represents the direction of a stock movement
type MovementKind int

const (
	MovementIn MovementKind = iota
	MovementOut
)

// String method for MovementKind enum
func (k MovementKind) String() string {
	switch k {
	case MovementIn:
		return "in"
	case MovementOut:
		return "out"
	default:
		return "unknown"
	}
}

// ParseMovementKind converts a kind string to its enum value
func ParseMovementKind(s string) (MovementKind, error) {
	switch s {
	case "in":
		return MovementIn, nil
	case "out":
		return MovementOut, nil
	default:
		return 0, fmt.Errorf("invalid movement kind: %s", s)
	}
}

// StockMovement represents a recorded increment or decrement of a
// material's stock, tied to a project and optionally a phase
type StockMovement struct {
	ID          string
	MaterialID  string
	ProjectID   string
	PhaseID     string
	Kind        MovementKind
	Quantity    Quantity
	Reason      string
	Date        time.Time
	PerformedBy string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewStockMovement creates a validated StockMovement
func NewStockMovement(id, materialID, projectID, phaseID string, kind MovementKind, quantity Quantity, reason string, date time.Time, performedBy string) (*StockMovement, error) {
	if id == "" {
		return nil, fmt.Errorf("movement id cannot be empty")
	}
	if materialID == "" {
		return nil, fmt.Errorf("movement material id cannot be empty")
	}
	if projectID == "" {
		return nil, fmt.Errorf("movement project id cannot be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("movement quantity must be positive, got %d", quantity)
	}

	now := time.Now()
	return &StockMovement{
		ID:          id,
		MaterialID:  materialID,
		ProjectID:   projectID,
		PhaseID:     phaseID,
		Kind:        kind,
		Quantity:    quantity,
		Reason:      reason,
		Date:        date,
		PerformedBy: performedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// MovementUpdate carries the fields of a partial stock movement update.
// Nil fields are left unchanged.
type MovementUpdate struct {
	PhaseID     *string
	Kind        *MovementKind
	Quantity    *Quantity
	Reason      *string
	Date        *time.Time
	PerformedBy *string
}
