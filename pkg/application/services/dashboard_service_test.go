package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aneliseestevam/structa-web/pkg/application/dto"
	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
	"github.com/aneliseestevam/structa-web/pkg/domain/repositories"
)

func TestDashboardService_KPIs(t *testing.T) {
	snapshot := seededSnapshot(t)

	kpis := NewDashboardService(nil).KPIs(snapshot, dto.Filter{})

	if kpis.TotalProjects != 3 || kpis.ActiveProjects != 1 || kpis.CompletedProjects != 1 {
		t.Errorf("Expected 3/1/1 projects, got %d/%d/%d",
			kpis.TotalProjects, kpis.ActiveProjects, kpis.CompletedProjects)
	}
	if expected := decimal.NewFromFloat(2850.00); !kpis.TotalSpent.Equal(expected) {
		t.Errorf("Expected total spent %s, got %s", expected, kpis.TotalSpent)
	}
	// Only Brita 1 (8 <= 15) is low, Areia (25 > 10) is not
	if kpis.LowStockMaterials != 1 {
		t.Errorf("Expected 1 low stock material, got %d", kpis.LowStockMaterials)
	}
	if kpis.CompletedPhases != 1 || kpis.TotalPhases != 4 {
		t.Errorf("Expected 1 of 4 phases completed, got %d of %d", kpis.CompletedPhases, kpis.TotalPhases)
	}
	// mean(100, 75, 30, 0) = 51.25 rounds to 51
	if kpis.AverageProgress != 51 {
		t.Errorf("Expected average progress 51, got %d", kpis.AverageProgress)
	}
}

func TestDashboardService_KPIsScopedToProject(t *testing.T) {
	snapshot := seededSnapshot(t)

	kpis := NewDashboardService(nil).KPIs(snapshot, dto.Filter{ProjectID: "2"})

	if kpis.TotalProjects != 1 {
		t.Errorf("Expected 1 project, got %d", kpis.TotalProjects)
	}
	if kpis.TotalPhases != 1 || kpis.CompletedPhases != 0 {
		t.Errorf("Expected 0 of 1 phases completed, got %d of %d", kpis.CompletedPhases, kpis.TotalPhases)
	}
	if !kpis.TotalSpent.IsZero() {
		t.Errorf("Expected no spending on project 2, got %s", kpis.TotalSpent)
	}
	// Stock is shared between projects
	if kpis.LowStockMaterials != 1 {
		t.Errorf("Expected low stock count to ignore project scope, got %d", kpis.LowStockMaterials)
	}
}

func TestDashboardService_CostByCategory(t *testing.T) {
	snapshot := seededSnapshot(t)

	rows := NewDashboardService(nil).CostByCategory(snapshot, dto.Filter{})
	if len(rows) != 1 {
		t.Fatalf("Expected 1 category row, got %d", len(rows))
	}
	if rows[0].Category != "Cement and Mortar" {
		t.Errorf("Expected category Cement and Mortar, got %s", rows[0].Category)
	}
	if expected := decimal.NewFromFloat(2850.00); !rows[0].Total.Equal(expected) {
		t.Errorf("Expected total %s, got %s", expected, rows[0].Total)
	}
}

func TestDashboardService_CostByCategoryFallsBackToOthers(t *testing.T) {
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	item, err := entities.NewPurchaseItem("item-1", "compra-1", "unknown-material", 2, decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("Expected valid purchase item creation to succeed: %v", err)
	}
	withItem, err := entities.NewPurchase("compra-1", "obra-1", "Gerdau", date, "", entities.PurchaseApproved, []entities.PurchaseItem{item})
	if err != nil {
		t.Fatalf("Expected valid purchase creation to succeed: %v", err)
	}

	itemless, err := entities.NewPurchase("compra-2", "obra-1", "Gerdau", date, "", entities.PurchasePending, nil)
	if err != nil {
		t.Fatalf("Expected valid purchase creation to succeed: %v", err)
	}
	itemless.TotalCost = decimal.NewFromInt(300)

	snapshot := repositories.Snapshot{Purchases: []*entities.Purchase{withItem, itemless}}

	rows := NewDashboardService(nil).CostByCategory(snapshot, dto.Filter{})
	if len(rows) != 1 {
		t.Fatalf("Expected a single Others row, got %d rows", len(rows))
	}
	if rows[0].Category != OtherCategory {
		t.Errorf("Expected category %s, got %s", OtherCategory, rows[0].Category)
	}
	// 2*500 from the unknown material plus 300 from the itemless purchase
	if expected := decimal.NewFromInt(1300); !rows[0].Total.Equal(expected) {
		t.Errorf("Expected total %s, got %s", expected, rows[0].Total)
	}
}

func TestDashboardService_CostByPhase(t *testing.T) {
	snapshot := seededSnapshot(t)

	rows := NewDashboardService(nil).CostByPhase(snapshot, "1")
	if len(rows) != 3 {
		t.Fatalf("Expected 3 phase rows, got %d", len(rows))
	}

	byName := make(map[string]decimal.Decimal)
	for _, row := range rows {
		byName[row.PhaseName] = row.Total
	}

	// 50 sc of cement at 28.50
	if expected := decimal.NewFromFloat(1425.00); !byName["Foundation"].Equal(expected) {
		t.Errorf("Expected Foundation cost %s, got %s", expected, byName["Foundation"])
	}
	if !byName["Structure"].IsZero() || !byName["Masonry"].IsZero() {
		t.Errorf("Expected no consumption for Structure and Masonry, got %s and %s",
			byName["Structure"], byName["Masonry"])
	}
}

func TestDashboardService_TopConsumedMaterials(t *testing.T) {
	snapshot := seededSnapshot(t)

	rows := NewDashboardService(nil).TopConsumedMaterials(snapshot, dto.Filter{}, 5)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 consumption row, got %d", len(rows))
	}

	row := rows[0]
	if row.MaterialID != "1" {
		t.Errorf("Expected cement to be the top material, got %s", row.MaterialID)
	}
	if row.Quantity != 50 {
		t.Errorf("Expected 50 consumed units, got %d", row.Quantity)
	}
	if expected := decimal.NewFromFloat(1425.00); !row.Value.Equal(expected) {
		t.Errorf("Expected consumed value %s, got %s", expected, row.Value)
	}
}

func TestDashboardService_TopConsumedMaterialsOrderAndLimit(t *testing.T) {
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	var materials []*entities.Material
	for _, id := range []string{"a", "b", "c"} {
		material, err := entities.NewMaterial(id, "Material "+id, "un", "Supplier", decimal.NewFromInt(10), "Cement and Mortar", 1000, 10)
		if err != nil {
			t.Fatalf("Expected valid material creation to succeed: %v", err)
		}
		materials = append(materials, material)
	}

	type mov struct {
		id, materialID string
		quantity       entities.Quantity
	}
	var movements []*entities.StockMovement
	for _, m := range []mov{{"1", "a", 5}, {"2", "b", 20}, {"3", "c", 20}, {"4", "a", 3}} {
		movement, err := entities.NewStockMovement(m.id, m.materialID, "obra-1", "", entities.MovementOut, m.quantity, "Consumed", date, "Joao Silva")
		if err != nil {
			t.Fatalf("Expected valid movement creation to succeed: %v", err)
		}
		movements = append(movements, movement)
	}

	snapshot := repositories.Snapshot{Materials: materials, Movements: movements}
	rows := NewDashboardService(nil).TopConsumedMaterials(snapshot, dto.Filter{}, 2)

	if len(rows) != 2 {
		t.Fatalf("Expected limit to cap rows at 2, got %d", len(rows))
	}
	// b and c tie at 20, names break the tie
	if rows[0].MaterialID != "b" || rows[1].MaterialID != "c" {
		t.Errorf("Expected order b, c, got %s, %s", rows[0].MaterialID, rows[1].MaterialID)
	}
}

func TestDashboardService_FilterMatchesReportScoping(t *testing.T) {
	snapshot := seededSnapshot(t)
	filter := dto.Filter{ProjectID: "1"}

	kpis := NewDashboardService(nil).KPIs(snapshot, filter)
	rows := NewReportService(nil).ProgressAnalysis(snapshot, filter)

	if len(rows) != kpis.TotalProjects {
		t.Errorf("Expected both surfaces to see %d projects, got %d progress rows", kpis.TotalProjects, len(rows))
	}
	if rows[0].TotalPhases != kpis.TotalPhases || rows[0].CompletedPhases != kpis.CompletedPhases {
		t.Errorf("Expected matching phase counts, got %d/%d and %d/%d",
			rows[0].CompletedPhases, rows[0].TotalPhases, kpis.CompletedPhases, kpis.TotalPhases)
	}
}
