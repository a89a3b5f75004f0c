package memory

import (
	"fmt"

	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
)

// AddMaterial appends a material to the catalog
func (s *Store) AddMaterial(material *entities.Material) {
	s.materials = append(s.materials, material)
}

// GetMaterial returns the material with the given id
func (s *Store) GetMaterial(id string) (*entities.Material, error) {
	for _, material := range s.materials {
		if material.ID == id {
			return material, nil
		}
	}
	return nil, fmt.Errorf("material %s: %w", id, ErrNotFound)
}

// Materials returns all materials in insertion order
func (s *Store) Materials() []*entities.Material {
	return append([]*entities.Material(nil), s.materials...)
}

// LoadMaterials loads materials into the store
func (s *Store) LoadMaterials(materials []*entities.Material) error {
	for _, material := range materials {
		s.AddMaterial(material)
	}
	return nil
}

// UpdateMaterial merges the given fields into the matching material and
// refreshes its UpdatedAt timestamp
func (s *Store) UpdateMaterial(id string, update entities.MaterialUpdate) error {
	material, err := s.GetMaterial(id)
	if err != nil {
		return err
	}

	if update.Name != nil {
		material.Name = *update.Name
	}
	if update.Unit != nil {
		material.Unit = *update.Unit
	}
	if update.Supplier != nil {
		material.Supplier = *update.Supplier
	}
	if update.UnitPrice != nil {
		material.UnitPrice = *update.UnitPrice
	}
	if update.Category != nil {
		material.Category = *update.Category
	}
	if update.Stock != nil {
		material.Stock = *update.Stock
	}
	if update.MinStock != nil {
		material.MinStock = *update.MinStock
	}
	material.UpdatedAt = s.now()

	return nil
}

// DeleteMaterial removes the material and cascades to the stock
// movements referencing it
func (s *Store) DeleteMaterial(id string) error {
	if _, err := s.GetMaterial(id); err != nil {
		return err
	}

	var materials []*entities.Material
	for _, material := range s.materials {
		if material.ID != id {
			materials = append(materials, material)
		}
	}
	s.materials = materials

	var movements []*entities.StockMovement
	for _, movement := range s.movements {
		if movement.MaterialID != id {
			movements = append(movements, movement)
		}
	}
	s.movements = movements

	return nil
}

// LowStockMaterials returns the materials at or below their minimum
// stock level, in catalog order
func (s *Store) LowStockMaterials() []*entities.Material {
	var low []*entities.Material
	for _, material := range s.materials {
		if material.LowStock() {
			low = append(low, material)
		}
	}
	return low
}
