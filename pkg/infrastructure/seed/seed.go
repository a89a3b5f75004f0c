// Package seed provides the fixed development dataset the dashboard
// starts from. The store resets to this data on every process start;
// there is no persistence layer behind it.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
	"github.com/aneliseestevam/structa-web/pkg/infrastructure/repositories/memory"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

// Populate loads the canonical dataset into the store: three projects in
// the three lifecycle states, a partially built first project, a small
// material catalog with one low-stock item, and one already-delivered
// purchase whose movements are part of the data. Loading never triggers
// delivery reconciliation.
func Populate(store *memory.Store) error {
	projects, err := projects()
	if err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	if err := store.LoadProjects(projects); err != nil {
		return err
	}

	phases, err := phases()
	if err != nil {
		return fmt.Errorf("seed phases: %w", err)
	}
	if err := store.LoadPhases(phases); err != nil {
		return err
	}

	materials, err := materials()
	if err != nil {
		return fmt.Errorf("seed materials: %w", err)
	}
	if err := store.LoadMaterials(materials); err != nil {
		return err
	}

	movements, err := movements()
	if err != nil {
		return fmt.Errorf("seed movements: %w", err)
	}
	if err := store.LoadMovements(movements); err != nil {
		return err
	}

	purchases, err := purchases()
	if err != nil {
		return fmt.Errorf("seed purchases: %w", err)
	}
	return store.LoadPurchases(purchases)
}

func projects() ([]*entities.Project, error) {
	alpha, err := entities.NewProject("1", "Residencial Alpha", "Bairro Centro, Cidade A",
		date(2024, 1, 15), date(2024, 12, 15), "Joao Silva", entities.ProjectInProgress, decimal.NewFromInt(2500000))
	if err != nil {
		return nil, err
	}
	alpha.TotalCost = decimal.NewFromInt(1800000)

	beta, err := entities.NewProject("2", "Comercial Beta", "Zona Industrial, Cidade B",
		date(2024, 3, 1), date(2025, 1, 30), "Maria Santos", entities.ProjectPlanned, decimal.NewFromInt(3200000))
	if err != nil {
		return nil, err
	}

	gamma, err := entities.NewProject("3", "Residencial Gamma", "Bairro Jardim, Cidade A",
		date(2023, 8, 15), date(2024, 6, 15), "Carlos Oliveira", entities.ProjectCompleted, decimal.NewFromInt(1800000))
	if err != nil {
		return nil, err
	}
	gamma.ActualEnd = ptr(date(2024, 6, 30))
	gamma.TotalCost = decimal.NewFromInt(1750000)

	return []*entities.Project{alpha, beta, gamma}, nil
}

func phases() ([]*entities.Phase, error) {
	type row struct {
		id, name, description, projectID string
		progress                         int
		start, end                       *time.Time
		notes                            string
	}
	rows := []row{
		{"1", "Foundation", "Excavation and foundation works", "1", 100, ptr(date(2024, 1, 15)), ptr(date(2024, 2, 28)), "Completed without incidents"},
		{"2", "Structure", "Reinforced concrete structure", "1", 75, ptr(date(2024, 3, 1)), nil, "On schedule"},
		{"3", "Masonry", "Masonry walls", "1", 30, ptr(date(2024, 4, 15)), nil, ""},
		{"4", "Foundation", "Excavation and foundation works", "2", 0, nil, nil, "Waiting for works to start"},
	}

	phases := make([]*entities.Phase, 0, len(rows))
	for _, r := range rows {
		phase, err := entities.NewPhase(r.id, r.name, r.description, r.projectID, r.progress)
		if err != nil {
			return nil, err
		}
		phase.StartDate = r.start
		phase.EndDate = r.end
		phase.Notes = r.notes
		phases = append(phases, phase)
	}
	return phases, nil
}

func materials() ([]*entities.Material, error) {
	type row struct {
		id, name, unit, supplier string
		price                    float64
		category                 string
		stock, minStock          entities.Quantity
	}
	rows := []row{
		{"1", "Cimento CP-II-Z-32", "sc", "Votorantim Cimentos", 28.50, "Cement and Mortar", 150, 50},
		{"2", "Aco CA-50 8mm", "kg", "Gerdau", 7.80, "Steel Structure", 2500, 1000},
		{"3", "Areia Media", "m3", "Mineracao Sao Joao", 95.00, "Cement and Mortar", 25, 10},
		{"4", "Brita 1", "m3", "Mineracao Sao Joao", 85.00, "Cement and Mortar", 8, 15},
	}

	materials := make([]*entities.Material, 0, len(rows))
	for _, r := range rows {
		material, err := entities.NewMaterial(r.id, r.name, r.unit, r.supplier, decimal.NewFromFloat(r.price), r.category, r.stock, r.minStock)
		if err != nil {
			return nil, err
		}
		materials = append(materials, material)
	}
	return materials, nil
}

func movements() ([]*entities.StockMovement, error) {
	in, err := entities.NewStockMovement("1", "1", "1", "1", entities.MovementIn, 100,
		"Purchase for project", date(2024, 1, 10), "Joao Silva")
	if err != nil {
		return nil, err
	}
	out, err := entities.NewStockMovement("2", "1", "1", "1", entities.MovementOut, 50,
		"Used in foundation", date(2024, 1, 15), "Maria Santos")
	if err != nil {
		return nil, err
	}
	return []*entities.StockMovement{in, out}, nil
}

func purchases() ([]*entities.Purchase, error) {
	item, err := entities.NewPurchaseItem("1", "1", "1", 100, decimal.NewFromFloat(28.50))
	if err != nil {
		return nil, err
	}
	purchase, err := entities.NewPurchase("1", "1", "Votorantim Cimentos",
		date(2024, 1, 15), "NF-001234", entities.PurchaseDelivered, []entities.PurchaseItem{item})
	if err != nil {
		return nil, err
	}
	purchase.DeliveredAt = ptr(date(2024, 1, 20))
	return []*entities.Purchase{purchase}, nil
}
