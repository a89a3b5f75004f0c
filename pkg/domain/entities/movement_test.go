package entities

import (
	"testing"
	"time"
)

func TestStockMovement_Validation(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	validMovement, err := NewStockMovement("mov-1", "mat-1", "obra-1", "etapa-1", MovementOut, 50, "Used in foundation", date, "Maria Santos")
	if err != nil {
		t.Fatalf("Expected valid movement creation to succeed: %v", err)
	}
	if validMovement.Kind != MovementOut {
		t.Errorf("Expected kind out, got %s", validMovement.Kind)
	}

	testCases := []struct {
		name        string
		id          string
		materialID  string
		projectID   string
		quantity    Quantity
		expectError string
	}{
		{"empty id", "", "mat-1", "obra-1", 10, "movement id cannot be empty"},
		{"empty material id", "mov-1", "", "obra-1", 10, "movement material id cannot be empty"},
		{"empty project id", "mov-1", "mat-1", "", 10, "movement project id cannot be empty"},
		{"zero quantity", "mov-1", "mat-1", "obra-1", 0, "movement quantity must be positive, got 0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewStockMovement(tc.id, tc.materialID, tc.projectID, "", MovementIn, tc.quantity, "", date, "")
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestParseMovementKind(t *testing.T) {
	for _, valid := range []string{"in", "out"} {
		kind, err := ParseMovementKind(valid)
		if err != nil {
			t.Fatalf("Expected %q to parse: %v", valid, err)
		}
		if kind.String() != valid {
			t.Errorf("Expected round-trip %q, got %q", valid, kind.String())
		}
	}

	if _, err := ParseMovementKind("transfer"); err == nil {
		t.Error("Expected error for invalid kind, but got none")
	}
}
