package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
)

func testProject(t *testing.T, id, name string) *entities.Project {
	t.Helper()
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	project, err := entities.NewProject(id, name, "Bairro Centro", start, end, "Joao Silva", entities.ProjectInProgress, decimal.NewFromInt(2500000))
	if err != nil {
		t.Fatalf("Expected valid project creation to succeed: %v", err)
	}
	return project
}

func testPhase(t *testing.T, id, projectID string, progress int) *entities.Phase {
	t.Helper()
	phase, err := entities.NewPhase(id, "Phase "+id, "", projectID, progress)
	if err != nil {
		t.Fatalf("Expected valid phase creation to succeed: %v", err)
	}
	return phase
}

func testMovement(t *testing.T, id, materialID, projectID, phaseID string) *entities.StockMovement {
	t.Helper()
	movement, err := entities.NewStockMovement(id, materialID, projectID, phaseID, entities.MovementOut, 10, "usage", time.Now(), "Maria Santos")
	if err != nil {
		t.Fatalf("Expected valid movement creation to succeed: %v", err)
	}
	return movement
}

func TestStore_ProjectProgress(t *testing.T) {
	store := NewStore()
	store.AddProject(testProject(t, "obra-1", "Residencial Alpha"))

	if got := store.ProjectProgress("obra-1"); got != 0 {
		t.Errorf("Expected progress 0 for project without phases, got %d", got)
	}

	store.AddPhase(testPhase(t, "etapa-1", "obra-1", 100))
	store.AddPhase(testPhase(t, "etapa-2", "obra-1", 75))
	store.AddPhase(testPhase(t, "etapa-3", "obra-1", 30))

	// mean(100, 75, 30) = 68.33 rounds half-up to 68
	if got := store.ProjectProgress("obra-1"); got != 68 {
		t.Errorf("Expected progress 68, got %d", got)
	}

	if got := store.CompletedPhaseCount("obra-1"); got != 1 {
		t.Errorf("Expected 1 completed phase, got %d", got)
	}
	if got := store.TotalPhaseCount("obra-1"); got != 3 {
		t.Errorf("Expected 3 phases total, got %d", got)
	}
}

func TestStore_ProjectProgressRoundsHalfUp(t *testing.T) {
	store := NewStore()
	store.AddPhase(testPhase(t, "etapa-1", "obra-1", 50))
	store.AddPhase(testPhase(t, "etapa-2", "obra-1", 51))

	// mean(50, 51) = 50.5 rounds half-up to 51
	if got := store.ProjectProgress("obra-1"); got != 51 {
		t.Errorf("Expected progress 51, got %d", got)
	}
}

func TestStore_NextPhase(t *testing.T) {
	store := NewStore()

	if store.NextPhase("obra-1") != nil {
		t.Error("Expected no next phase for project without phases")
	}

	later := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	done := testPhase(t, "etapa-1", "obra-1", 100)
	undated := testPhase(t, "etapa-2", "obra-1", 20)
	third := testPhase(t, "etapa-3", "obra-1", 30)
	third.StartDate = &later
	fourth := testPhase(t, "etapa-4", "obra-1", 10)
	fourth.StartDate = &earlier

	store.AddPhase(done)
	store.AddPhase(undated)
	store.AddPhase(third)
	store.AddPhase(fourth)

	next := store.NextPhase("obra-1")
	if next == nil {
		t.Fatal("Expected a next phase, got nil")
	}
	// etapa-2 has no start date and keeps its insertion position ahead
	// of the dated phases
	if next.ID != "etapa-2" {
		t.Errorf("Expected next phase etapa-2, got %s", next.ID)
	}

	if err := store.DeletePhase("etapa-2"); err != nil {
		t.Fatalf("Expected phase deletion to succeed: %v", err)
	}
	next = store.NextPhase("obra-1")
	if next == nil || next.ID != "etapa-4" {
		t.Errorf("Expected next phase etapa-4 (earliest start date), got %v", next)
	}

	for _, id := range []string{"etapa-3", "etapa-4"} {
		progress := 100
		if err := store.UpdatePhase(id, entities.PhaseUpdate{Progress: &progress}); err != nil {
			t.Fatalf("Expected phase update to succeed: %v", err)
		}
	}
	if store.NextPhase("obra-1") != nil {
		t.Error("Expected no next phase when every phase is complete")
	}
}

func TestStore_CreateDefaultPhases(t *testing.T) {
	store := NewStore()

	created := store.CreateDefaultPhases("obra-1")
	if len(created) != 4 {
		t.Fatalf("Expected 4 template phases, got %d", len(created))
	}

	expectedNames := []string{"Foundation", "Structure", "Masonry", "Finishing"}
	phases := store.PhasesByProject("obra-1")
	if len(phases) != 4 {
		t.Fatalf("Expected 4 phases in store, got %d", len(phases))
	}
	for i, phase := range phases {
		if phase.Name != expectedNames[i] {
			t.Errorf("Expected phase %d to be %s, got %s", i, expectedNames[i], phase.Name)
		}
		if phase.Progress != 0 {
			t.Errorf("Expected phase %s at progress 0, got %d", phase.Name, phase.Progress)
		}
		if phase.ID == "" {
			t.Errorf("Expected phase %s to have a generated id", phase.Name)
		}
	}
}

func TestStore_DeleteProjectCascades(t *testing.T) {
	store := NewStore()
	store.AddProject(testProject(t, "obra-1", "Residencial Alpha"))
	store.AddProject(testProject(t, "obra-2", "Comercial Beta"))

	store.AddPhase(testPhase(t, "etapa-1", "obra-1", 50))
	store.AddPhase(testPhase(t, "etapa-2", "obra-2", 10))
	store.AddMovement(testMovement(t, "mov-1", "mat-1", "obra-1", "etapa-1"))
	store.AddMovement(testMovement(t, "mov-2", "mat-1", "obra-2", "etapa-2"))

	item, err := entities.NewPurchaseItem("item-1", "compra-1", "mat-1", 10, decimal.NewFromInt(5))
	if err != nil {
		t.Fatalf("Expected valid purchase item creation to succeed: %v", err)
	}
	purchase, err := entities.NewPurchase("compra-1", "obra-1", "Gerdau", time.Now(), "", entities.PurchasePending, []entities.PurchaseItem{item})
	if err != nil {
		t.Fatalf("Expected valid purchase creation to succeed: %v", err)
	}
	store.AddPurchase(purchase)

	if err := store.DeleteProject("obra-1"); err != nil {
		t.Fatalf("Expected project deletion to succeed: %v", err)
	}

	if _, err := store.GetProject("obra-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected deleted project to be not found, got %v", err)
	}
	if len(store.PhasesByProject("obra-1")) != 0 {
		t.Error("Expected orphaned phases to be removed")
	}
	if len(store.Purchases()) != 0 {
		t.Error("Expected orphaned purchases to be removed")
	}
	for _, movement := range store.Movements() {
		if movement.ProjectID == "obra-1" {
			t.Errorf("Expected movements of obra-1 to be removed, found %s", movement.ID)
		}
	}

	// Sibling project untouched
	if _, err := store.GetProject("obra-2"); err != nil {
		t.Errorf("Expected obra-2 to survive, got %v", err)
	}
	if len(store.PhasesByProject("obra-2")) != 1 {
		t.Error("Expected obra-2 phases to survive")
	}
	if len(store.Movements()) != 1 {
		t.Errorf("Expected 1 surviving movement, got %d", len(store.Movements()))
	}
}

func TestStore_DeletePhaseCascadesToMovements(t *testing.T) {
	store := NewStore()
	store.AddPhase(testPhase(t, "etapa-1", "obra-1", 50))
	store.AddPhase(testPhase(t, "etapa-2", "obra-1", 20))
	store.AddMovement(testMovement(t, "mov-1", "mat-1", "obra-1", "etapa-1"))
	store.AddMovement(testMovement(t, "mov-2", "mat-1", "obra-1", "etapa-2"))
	store.AddMovement(testMovement(t, "mov-3", "mat-1", "obra-1", ""))

	if err := store.DeletePhase("etapa-1"); err != nil {
		t.Fatalf("Expected phase deletion to succeed: %v", err)
	}

	movements := store.Movements()
	if len(movements) != 2 {
		t.Fatalf("Expected 2 surviving movements, got %d", len(movements))
	}
	for _, movement := range movements {
		if movement.PhaseID == "etapa-1" {
			t.Errorf("Expected movements of etapa-1 to be removed, found %s", movement.ID)
		}
	}
}

func TestStore_DeleteMaterialCascadesToMovements(t *testing.T) {
	store := NewStore()
	material, err := entities.NewMaterial("mat-1", "Areia Media", "m3", "Mineracao Sao Joao", decimal.NewFromFloat(95.00), "Cement and Mortar", 25, 10)
	if err != nil {
		t.Fatalf("Expected valid material creation to succeed: %v", err)
	}
	store.AddMaterial(material)
	store.AddMovement(testMovement(t, "mov-1", "mat-1", "obra-1", ""))
	store.AddMovement(testMovement(t, "mov-2", "mat-2", "obra-1", ""))

	if err := store.DeleteMaterial("mat-1"); err != nil {
		t.Fatalf("Expected material deletion to succeed: %v", err)
	}

	if len(store.Materials()) != 0 {
		t.Error("Expected material to be removed")
	}
	movements := store.Movements()
	if len(movements) != 1 || movements[0].ID != "mov-2" {
		t.Errorf("Expected only mov-2 to survive, got %d movements", len(movements))
	}
}

func TestStore_UpdateNotFound(t *testing.T) {
	store := NewStore()

	name := "renamed"
	progress := 10

	testCases := []struct {
		name string
		call func() error
	}{
		{"project", func() error { return store.UpdateProject("missing", entities.ProjectUpdate{Name: &name}) }},
		{"phase", func() error { return store.UpdatePhase("missing", entities.PhaseUpdate{Progress: &progress}) }},
		{"material", func() error { return store.UpdateMaterial("missing", entities.MaterialUpdate{Name: &name}) }},
		{"movement", func() error { return store.UpdateMovement("missing", entities.MovementUpdate{Reason: &name}) }},
		{"purchase", func() error { return store.UpdatePurchase("missing", entities.PurchaseUpdate{Supplier: &name}) }},
		{"delete project", func() error { return store.DeleteProject("missing") }},
		{"delete phase", func() error { return store.DeletePhase("missing") }},
		{"delete material", func() error { return store.DeleteMaterial("missing") }},
		{"delete movement", func() error { return store.DeleteMovement("missing") }},
		{"delete purchase", func() error { return store.DeletePurchase("missing") }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, ErrNotFound) {
				t.Errorf("Expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestStore_UpdateRefreshesTimestamp(t *testing.T) {
	store := NewStore()
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	project := testProject(t, "obra-1", "Residencial Alpha")
	store.AddProject(project)

	name := "Residencial Alpha II"
	if err := store.UpdateProject("obra-1", entities.ProjectUpdate{Name: &name}); err != nil {
		t.Fatalf("Expected project update to succeed: %v", err)
	}

	if project.Name != "Residencial Alpha II" {
		t.Errorf("Expected name to be updated, got %s", project.Name)
	}
	if !project.UpdatedAt.Equal(fixed) {
		t.Errorf("Expected UpdatedAt %v, got %v", fixed, project.UpdatedAt)
	}
	// Untouched fields keep their values
	if project.Owner != "Joao Silva" {
		t.Errorf("Expected owner to be unchanged, got %s", project.Owner)
	}
}

func TestStore_LowStockMaterials(t *testing.T) {
	store := NewStore()

	low, err := entities.NewMaterial("mat-1", "Brita 1", "m3", "Mineracao Sao Joao", decimal.NewFromFloat(85.00), "Cement and Mortar", 8, 15)
	if err != nil {
		t.Fatalf("Expected valid material creation to succeed: %v", err)
	}
	ok, err := entities.NewMaterial("mat-2", "Cimento CP-II", "sc", "Votorantim Cimentos", decimal.NewFromFloat(28.50), "Cement and Mortar", 150, 50)
	if err != nil {
		t.Fatalf("Expected valid material creation to succeed: %v", err)
	}
	store.AddMaterial(low)
	store.AddMaterial(ok)

	lowStock := store.LowStockMaterials()
	if len(lowStock) != 1 || lowStock[0].ID != "mat-1" {
		t.Fatalf("Expected only mat-1 to be low on stock, got %d materials", len(lowStock))
	}
}
