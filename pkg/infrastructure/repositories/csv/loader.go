package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
	"github.com/aneliseestevam/structa-web/pkg/domain/repositories"
)

// File names expected by LoadDataset inside the data directory.
const (
	ProjectsFile      = "projects.csv"
	PhasesFile        = "phases.csv"
	MaterialsFile     = "materials.csv"
	MovementsFile     = "movements.csv"
	PurchasesFile     = "purchases.csv"
	PurchaseItemsFile = "purchase_items.csv"
)

// Loader handles loading construction data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadDataset loads every collection from dir. The phases, movements,
// purchases and purchase items files are optional; projects and
// materials are required.
func (l *Loader) LoadDataset(dir string) (repositories.Snapshot, error) {
	var snapshot repositories.Snapshot
	var err error

	snapshot.Projects, err = l.LoadProjects(filepath.Join(dir, ProjectsFile))
	if err != nil {
		return repositories.Snapshot{}, err
	}
	snapshot.Materials, err = l.LoadMaterials(filepath.Join(dir, MaterialsFile))
	if err != nil {
		return repositories.Snapshot{}, err
	}

	if path := filepath.Join(dir, PhasesFile); fileExists(path) {
		snapshot.Phases, err = l.LoadPhases(path)
		if err != nil {
			return repositories.Snapshot{}, err
		}
	}
	if path := filepath.Join(dir, MovementsFile); fileExists(path) {
		snapshot.Movements, err = l.LoadMovements(path)
		if err != nil {
			return repositories.Snapshot{}, err
		}
	}
	if path := filepath.Join(dir, PurchasesFile); fileExists(path) {
		snapshot.Purchases, err = l.LoadPurchases(path, filepath.Join(dir, PurchaseItemsFile))
		if err != nil {
			return repositories.Snapshot{}, err
		}
	}

	return snapshot, nil
}

// LoadProjects loads projects from a CSV file
func (l *Loader) LoadProjects(filename string) ([]*entities.Project, error) {
	records, err := readRecords(filename, "projects")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"id", "name", "location", "start_date", "expected_end", "actual_end", "owner", "status", "budget", "total_cost"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("projects CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var projects []*entities.Project
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("projects CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		project, err := parseProject(record)
		if err != nil {
			return nil, fmt.Errorf("projects CSV row %d: %w", i+2, err)
		}

		projects = append(projects, project)
	}

	return projects, nil
}

// LoadPhases loads phases from a CSV file
func (l *Loader) LoadPhases(filename string) ([]*entities.Phase, error) {
	records, err := readRecords(filename, "phases")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"id", "name", "description", "project_id", "progress", "start_date", "end_date", "notes"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("phases CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var phases []*entities.Phase
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("phases CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		phase, err := parsePhase(record)
		if err != nil {
			return nil, fmt.Errorf("phases CSV row %d: %w", i+2, err)
		}

		phases = append(phases, phase)
	}

	return phases, nil
}

// LoadMaterials loads the material catalog from a CSV file
func (l *Loader) LoadMaterials(filename string) ([]*entities.Material, error) {
	records, err := readRecords(filename, "materials")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"id", "name", "unit", "supplier", "unit_price", "category", "stock", "min_stock"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("materials CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var materials []*entities.Material
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("materials CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		material, err := parseMaterial(record)
		if err != nil {
			return nil, fmt.Errorf("materials CSV row %d: %w", i+2, err)
		}

		materials = append(materials, material)
	}

	return materials, nil
}

// LoadMovements loads stock movements from a CSV file
func (l *Loader) LoadMovements(filename string) ([]*entities.StockMovement, error) {
	records, err := readRecords(filename, "movements")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"id", "material_id", "project_id", "phase_id", "type", "quantity", "reason", "date", "performed_by"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("movements CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var movements []*entities.StockMovement
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("movements CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		movement, err := parseMovement(record)
		if err != nil {
			return nil, fmt.Errorf("movements CSV row %d: %w", i+2, err)
		}

		movements = append(movements, movement)
	}

	return movements, nil
}

// LoadPurchases loads purchases and their items from a pair of CSV
// files. Line and purchase totals are recomputed from the items, not
// read from the file.
func (l *Loader) LoadPurchases(purchasesFile, itemsFile string) ([]*entities.Purchase, error) {
	items := make(map[string][]entities.PurchaseItem)
	if fileExists(itemsFile) {
		loaded, err := l.loadPurchaseItems(itemsFile)
		if err != nil {
			return nil, err
		}
		for _, item := range loaded {
			items[item.PurchaseID] = append(items[item.PurchaseID], item)
		}
	}

	records, err := readRecords(purchasesFile, "purchases")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"id", "project_id", "supplier", "purchase_date", "invoice_number", "status", "delivered_at"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("purchases CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var purchases []*entities.Purchase
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("purchases CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		purchase, err := parsePurchase(record, items[record[0]])
		if err != nil {
			return nil, fmt.Errorf("purchases CSV row %d: %w", i+2, err)
		}

		purchases = append(purchases, purchase)
	}

	return purchases, nil
}

func (l *Loader) loadPurchaseItems(filename string) ([]entities.PurchaseItem, error) {
	records, err := readRecords(filename, "purchase items")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"id", "purchase_id", "material_id", "quantity", "unit_price"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("purchase items CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var items []entities.PurchaseItem
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("purchase items CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		quantity, err := strconv.ParseInt(record[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("purchase items CSV row %d: invalid quantity: %s", i+2, record[3])
		}
		unitPrice, err := decimal.NewFromString(record[4])
		if err != nil {
			return nil, fmt.Errorf("purchase items CSV row %d: invalid unit_price: %s", i+2, record[4])
		}

		item, err := entities.NewPurchaseItem(record[0], record[1], record[2], entities.Quantity(quantity), unitPrice)
		if err != nil {
			return nil, fmt.Errorf("purchase items CSV row %d: %w", i+2, err)
		}

		items = append(items, item)
	}

	return items, nil
}

// Helper functions for parsing CSV records

func readRecords(filename, kind string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", kind)
	}

	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %s (expected YYYY-MM-DD)", s)
	}
	return date, nil
}

// parseOptionalDate treats an empty column as absent.
func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	date, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func parseProject(record []string) (*entities.Project, error) {
	startDate, err := parseDate(record[3])
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", err)
	}
	expectedEnd, err := parseDate(record[4])
	if err != nil {
		return nil, fmt.Errorf("invalid expected_end: %w", err)
	}
	actualEnd, err := parseOptionalDate(record[5])
	if err != nil {
		return nil, fmt.Errorf("invalid actual_end: %w", err)
	}

	status, err := entities.ParseProjectStatus(record[7])
	if err != nil {
		return nil, err
	}

	budget, err := decimal.NewFromString(record[8])
	if err != nil {
		return nil, fmt.Errorf("invalid budget: %s", record[8])
	}
	totalCost, err := decimal.NewFromString(record[9])
	if err != nil {
		return nil, fmt.Errorf("invalid total_cost: %s", record[9])
	}

	project, err := entities.NewProject(record[0], record[1], record[2], startDate, expectedEnd, record[6], status, budget)
	if err != nil {
		return nil, err
	}
	project.ActualEnd = actualEnd
	project.TotalCost = totalCost
	return project, nil
}

func parsePhase(record []string) (*entities.Phase, error) {
	progress, err := strconv.Atoi(record[4])
	if err != nil {
		return nil, fmt.Errorf("invalid progress: %s", record[4])
	}

	startDate, err := parseOptionalDate(record[5])
	if err != nil {
		return nil, fmt.Errorf("invalid start_date: %w", err)
	}
	endDate, err := parseOptionalDate(record[6])
	if err != nil {
		return nil, fmt.Errorf("invalid end_date: %w", err)
	}

	phase, err := entities.NewPhase(record[0], record[1], record[2], record[3], progress)
	if err != nil {
		return nil, err
	}
	phase.StartDate = startDate
	phase.EndDate = endDate
	phase.Notes = record[7]
	return phase, nil
}

func parseMaterial(record []string) (*entities.Material, error) {
	unitPrice, err := decimal.NewFromString(record[4])
	if err != nil {
		return nil, fmt.Errorf("invalid unit_price: %s", record[4])
	}

	stock, err := strconv.ParseInt(record[6], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stock: %s", record[6])
	}
	minStock, err := strconv.ParseInt(record[7], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid min_stock: %s", record[7])
	}

	return entities.NewMaterial(record[0], record[1], record[2], record[3], unitPrice, record[5], entities.Quantity(stock), entities.Quantity(minStock))
}

func parseMovement(record []string) (*entities.StockMovement, error) {
	kind, err := entities.ParseMovementKind(record[4])
	if err != nil {
		return nil, err
	}

	quantity, err := strconv.ParseInt(record[5], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity: %s", record[5])
	}

	date, err := parseDate(record[7])
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	return entities.NewStockMovement(record[0], record[1], record[2], record[3], kind, entities.Quantity(quantity), record[6], date, record[8])
}

func parsePurchase(record []string, items []entities.PurchaseItem) (*entities.Purchase, error) {
	purchaseDate, err := parseDate(record[3])
	if err != nil {
		return nil, fmt.Errorf("invalid purchase_date: %w", err)
	}
	deliveredAt, err := parseOptionalDate(record[6])
	if err != nil {
		return nil, fmt.Errorf("invalid delivered_at: %w", err)
	}

	status, err := entities.ParsePurchaseStatus(record[5])
	if err != nil {
		return nil, err
	}

	purchase, err := entities.NewPurchase(record[0], record[1], record[2], purchaseDate, record[4], status, items)
	if err != nil {
		return nil, err
	}
	purchase.DeliveredAt = deliveredAt
	return purchase, nil
}
