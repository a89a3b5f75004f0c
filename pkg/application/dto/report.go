package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
)

// GeneralSummary aggregates the whole dataset into headline counts
type GeneralSummary struct {
	TotalProjects     int             `json:"totalProjects"`
	PlannedProjects   int             `json:"plannedProjects"`
	ActiveProjects    int             `json:"activeProjects"`
	CompletedProjects int             `json:"completedProjects"`
	TotalPhases       int             `json:"totalPhases"`
	TotalMaterials    int             `json:"totalMaterials"`
	TotalPurchaseCost decimal.Decimal `json:"totalPurchaseCost"`
}

// CostRow compares a project's budget against its accumulated purchases
type CostRow struct {
	ProjectID   string          `json:"projectId"`
	ProjectName string          `json:"projectName"`
	Budget      decimal.Decimal `json:"budget"`
	ActualCost  decimal.Decimal `json:"actualCost"`
	Variance    decimal.Decimal `json:"variance"`
	PercentUsed string          `json:"percentUsed"`
}

// ProgressRow summarizes a project's phase completion
type ProgressRow struct {
	ProjectID       string `json:"projectId"`
	ProjectName     string `json:"projectName"`
	TotalPhases     int    `json:"totalPhases"`
	CompletedPhases int    `json:"completedPhases"`
	AverageProgress int    `json:"averageProgress"`
}

// ProductivityRow reports completed phases per month of elapsed time
type ProductivityRow struct {
	ProjectID        string `json:"projectId"`
	ProjectName      string `json:"projectName"`
	ElapsedDays      int    `json:"elapsedDays"`
	CompletedPhases  int    `json:"completedPhases"`
	ProductivityRate string `json:"productivityRate"`
}

// MaterialUsageRow totals a material's purchased quantity and value
type MaterialUsageRow struct {
	MaterialID        string            `json:"materialId"`
	MaterialName      string            `json:"materialName"`
	Unit              string            `json:"unit"`
	QuantityPurchased entities.Quantity `json:"quantityPurchased"`
	TotalValue        decimal.Decimal   `json:"totalValue"`
	CurrentStock      entities.Quantity `json:"currentStock"`
}

// StockStatusRow reports a material's stock level against its minimum
type StockStatusRow struct {
	MaterialID   string            `json:"materialId"`
	MaterialName string            `json:"materialName"`
	CurrentStock entities.Quantity `json:"currentStock"`
	MinStock     entities.Quantity `json:"minStock"`
	Status       string            `json:"status"`
	LastMovement *time.Time        `json:"lastMovement,omitempty"`
}

// DashboardKPIs is the headline card set of the dashboard screen
type DashboardKPIs struct {
	TotalProjects     int             `json:"totalProjects"`
	ActiveProjects    int             `json:"activeProjects"`
	CompletedProjects int             `json:"completedProjects"`
	TotalSpent        decimal.Decimal `json:"totalSpent"`
	LowStockMaterials int             `json:"lowStockMaterials"`
	CompletedPhases   int             `json:"completedPhases"`
	TotalPhases       int             `json:"totalPhases"`
	AverageProgress   int             `json:"averageProgress"`
}

// CategoryCostRow totals purchase spending per material category
type CategoryCostRow struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// PhaseCostRow totals consumption spending per phase of one project
type PhaseCostRow struct {
	PhaseID   string          `json:"phaseId"`
	PhaseName string          `json:"phaseName"`
	Total     decimal.Decimal `json:"total"`
}

// MaterialConsumptionRow ranks a material by outgoing stock quantity
type MaterialConsumptionRow struct {
	MaterialID   string            `json:"materialId"`
	MaterialName string            `json:"materialName"`
	Quantity     entities.Quantity `json:"quantity"`
	Value        decimal.Decimal   `json:"value"`
}
