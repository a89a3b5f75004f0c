package repositories

import "github.com/aneliseestevam/structa-web/pkg/domain/entities"

// ProjectStore provides access to the project collection
type ProjectStore interface {
	AddProject(project *entities.Project)
	GetProject(id string) (*entities.Project, error)
	Projects() []*entities.Project
	UpdateProject(id string, update entities.ProjectUpdate) error
	DeleteProject(id string) error
	LoadProjects(projects []*entities.Project) error
}

// PhaseStore provides access to the phase collection and the
// per-project progress rollups derived from it
type PhaseStore interface {
	AddPhase(phase *entities.Phase)
	GetPhase(id string) (*entities.Phase, error)
	Phases() []*entities.Phase
	PhasesByProject(projectID string) []*entities.Phase
	UpdatePhase(id string, update entities.PhaseUpdate) error
	DeletePhase(id string) error
	LoadPhases(phases []*entities.Phase) error

	ProjectProgress(projectID string) int
	CompletedPhaseCount(projectID string) int
	TotalPhaseCount(projectID string) int
	NextPhase(projectID string) *entities.Phase
	CreateDefaultPhases(projectID string) []*entities.Phase
}

// MaterialStore provides access to the material catalog
type MaterialStore interface {
	AddMaterial(material *entities.Material)
	GetMaterial(id string) (*entities.Material, error)
	Materials() []*entities.Material
	UpdateMaterial(id string, update entities.MaterialUpdate) error
	DeleteMaterial(id string) error
	LoadMaterials(materials []*entities.Material) error

	LowStockMaterials() []*entities.Material
}

// MovementStore provides access to the stock movement log
type MovementStore interface {
	AddMovement(movement *entities.StockMovement)
	GetMovement(id string) (*entities.StockMovement, error)
	Movements() []*entities.StockMovement
	MovementsByMaterial(materialID string) []*entities.StockMovement
	UpdateMovement(id string, update entities.MovementUpdate) error
	DeleteMovement(id string) error
	LoadMovements(movements []*entities.StockMovement) error
}

// PurchaseStore provides access to the purchase collection. Updating a
// purchase to delivered triggers stock reconciliation exactly once.
type PurchaseStore interface {
	AddPurchase(purchase *entities.Purchase)
	GetPurchase(id string) (*entities.Purchase, error)
	Purchases() []*entities.Purchase
	PurchasesByProject(projectID string) []*entities.Purchase
	UpdatePurchase(id string, update entities.PurchaseUpdate) error
	DeletePurchase(id string) error
	LoadPurchases(purchases []*entities.Purchase) error
}

// Snapshot is a point-in-time copy of the five collections, consumed by
// the pure aggregation services
type Snapshot struct {
	Projects  []*entities.Project
	Phases    []*entities.Phase
	Materials []*entities.Material
	Movements []*entities.StockMovement
	Purchases []*entities.Purchase
}

// Store is the aggregate store over the five collections
type Store interface {
	ProjectStore
	PhaseStore
	MaterialStore
	MovementStore
	PurchaseStore

	Snapshot() Snapshot
}
