package services

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/aneliseestevam/structa-web/pkg/application/dto"
	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
	"github.com/aneliseestevam/structa-web/pkg/domain/repositories"
)

// OtherCategory buckets purchase spending that cannot be attributed to
// a cataloged material category
const OtherCategory = "Others"

// DashboardService computes the live dashboard aggregates. It shares
// dto.Filter with ReportService, so scoping a dashboard to a project
// yields the same result set as the equivalent report filter.
type DashboardService struct {
	logger *zap.Logger
}

// NewDashboardService creates a dashboard service. A nil logger disables
// logging.
func NewDashboardService(logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{logger: logger}
}

// KPIs reduces the filtered snapshot into the dashboard headline cards
func (s *DashboardService) KPIs(snapshot repositories.Snapshot, filter dto.Filter) dto.DashboardKPIs {
	data := filter.Apply(snapshot)

	kpis := dto.DashboardKPIs{
		TotalProjects: len(data.Projects),
		TotalPhases:   len(data.Phases),
		TotalSpent:    decimal.Zero,
	}
	for _, project := range data.Projects {
		switch project.Status {
		case entities.ProjectInProgress:
			kpis.ActiveProjects++
		case entities.ProjectCompleted:
			kpis.CompletedProjects++
		}
	}
	for _, purchase := range data.Purchases {
		kpis.TotalSpent = kpis.TotalSpent.Add(purchase.TotalCost)
	}
	for _, material := range data.Materials {
		if material.LowStock() {
			kpis.LowStockMaterials++
		}
	}

	var sum int
	for _, phase := range data.Phases {
		sum += phase.Progress
		if phase.Completed() {
			kpis.CompletedPhases++
		}
	}
	if kpis.TotalPhases > 0 {
		kpis.AverageProgress = int(math.Floor(float64(sum)/float64(kpis.TotalPhases) + 0.5))
	}

	s.logger.Debug("dashboard KPIs computed",
		zap.Int("projects", kpis.TotalProjects),
		zap.Int("low_stock", kpis.LowStockMaterials))
	return kpis
}

// CostByCategory totals purchase spending per material category. Items
// whose material is unknown, and purchases without items, fall into the
// Others bucket. Rows are ordered by descending total, then category.
func (s *DashboardService) CostByCategory(snapshot repositories.Snapshot, filter dto.Filter) []dto.CategoryCostRow {
	data := filter.Apply(snapshot)

	categories := make(map[string]string, len(data.Materials))
	for _, material := range data.Materials {
		categories[material.ID] = material.Category
	}

	totals := make(map[string]decimal.Decimal)
	for _, purchase := range data.Purchases {
		if len(purchase.Items) == 0 {
			totals[OtherCategory] = totals[OtherCategory].Add(purchase.TotalCost)
			continue
		}
		for _, item := range purchase.Items {
			category, ok := categories[item.MaterialID]
			if !ok || category == "" {
				category = OtherCategory
			}
			totals[category] = totals[category].Add(item.LineTotal)
		}
	}

	rows := make([]dto.CategoryCostRow, 0, len(totals))
	for category, total := range totals {
		rows = append(rows, dto.CategoryCostRow{Category: category, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// CostByPhase totals consumption spending per phase of one project:
// outgoing movements priced at the material's current unit price
func (s *DashboardService) CostByPhase(snapshot repositories.Snapshot, projectID string) []dto.PhaseCostRow {
	data := dto.Filter{ProjectID: projectID}.Apply(snapshot)

	prices := make(map[string]decimal.Decimal, len(data.Materials))
	for _, material := range data.Materials {
		prices[material.ID] = material.UnitPrice
	}

	rows := make([]dto.PhaseCostRow, 0, len(data.Phases))
	for _, phase := range data.Phases {
		total := decimal.Zero
		for _, movement := range data.Movements {
			if movement.PhaseID != phase.ID || movement.Kind != entities.MovementOut {
				continue
			}
			if price, ok := prices[movement.MaterialID]; ok {
				total = total.Add(price.Mul(decimal.NewFromInt(int64(movement.Quantity))))
			}
		}
		rows = append(rows, dto.PhaseCostRow{PhaseID: phase.ID, PhaseName: phase.Name, Total: total})
	}
	return rows
}

// TopConsumedMaterials ranks materials by outgoing movement quantity and
// returns at most limit rows, most consumed first
func (s *DashboardService) TopConsumedMaterials(snapshot repositories.Snapshot, filter dto.Filter, limit int) []dto.MaterialConsumptionRow {
	data := filter.Apply(snapshot)

	consumed := make(map[string]entities.Quantity)
	for _, movement := range data.Movements {
		if movement.Kind == entities.MovementOut {
			consumed[movement.MaterialID] += movement.Quantity
		}
	}

	var rows []dto.MaterialConsumptionRow
	for _, material := range data.Materials {
		quantity, ok := consumed[material.ID]
		if !ok {
			continue
		}
		rows = append(rows, dto.MaterialConsumptionRow{
			MaterialID:   material.ID,
			MaterialName: material.Name,
			Quantity:     quantity,
			Value:        material.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Quantity != rows[j].Quantity {
			return rows[i].Quantity > rows[j].Quantity
		}
		return rows[i].MaterialName < rows[j].MaterialName
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
