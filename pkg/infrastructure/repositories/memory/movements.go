package memory

import (
	"fmt"

	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
)

// AddMovement appends a stock movement to the log
func (s *Store) AddMovement(movement *entities.StockMovement) {
	s.movements = append(s.movements, movement)
}

// GetMovement returns the movement with the given id
func (s *Store) GetMovement(id string) (*entities.StockMovement, error) {
	for _, movement := range s.movements {
		if movement.ID == id {
			return movement, nil
		}
	}
	return nil, fmt.Errorf("movement %s: %w", id, ErrNotFound)
}

// Movements returns all stock movements in insertion order
func (s *Store) Movements() []*entities.StockMovement {
	return append([]*entities.StockMovement(nil), s.movements...)
}

// MovementsByMaterial returns the movements referencing a material,
// preserving insertion order
func (s *Store) MovementsByMaterial(materialID string) []*entities.StockMovement {
	var movements []*entities.StockMovement
	for _, movement := range s.movements {
		if movement.MaterialID == materialID {
			movements = append(movements, movement)
		}
	}
	return movements
}

// LoadMovements loads stock movements into the store
func (s *Store) LoadMovements(movements []*entities.StockMovement) error {
	for _, movement := range movements {
		s.AddMovement(movement)
	}
	return nil
}

// UpdateMovement merges the given fields into the matching movement and
// refreshes its UpdatedAt timestamp
func (s *Store) UpdateMovement(id string, update entities.MovementUpdate) error {
	movement, err := s.GetMovement(id)
	if err != nil {
		return err
	}

	if update.Quantity != nil {
		if *update.Quantity <= 0 {
			return fmt.Errorf("movement quantity must be positive, got %d", *update.Quantity)
		}
		movement.Quantity = *update.Quantity
	}
	if update.PhaseID != nil {
		movement.PhaseID = *update.PhaseID
	}
	if update.Kind != nil {
		movement.Kind = *update.Kind
	}
	if update.Reason != nil {
		movement.Reason = *update.Reason
	}
	if update.Date != nil {
		movement.Date = *update.Date
	}
	if update.PerformedBy != nil {
		movement.PerformedBy = *update.PerformedBy
	}
	movement.UpdatedAt = s.now()

	return nil
}

// DeleteMovement removes the movement. Movements never cascade to other
// entities.
func (s *Store) DeleteMovement(id string) error {
	if _, err := s.GetMovement(id); err != nil {
		return err
	}

	var movements []*entities.StockMovement
	for _, movement := range s.movements {
		if movement.ID != id {
			movements = append(movements, movement)
		}
	}
	s.movements = movements

	return nil
}
