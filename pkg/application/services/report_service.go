package services

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/aneliseestevam/structa-web/pkg/application/dto"
	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
	"github.com/aneliseestevam/structa-web/pkg/domain/repositories"
)

var hundred = decimal.NewFromInt(100)

// ReportService reduces a store snapshot into report-ready rows. Every
// method is a pure read over the snapshot it receives; the rendering of
// the rows into a document format belongs to an external collaborator.
type ReportService struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewReportService creates a report service. A nil logger disables logging.
func NewReportService(logger *zap.Logger) *ReportService {
	return NewReportServiceWithClock(logger, time.Now)
}

// NewReportServiceWithClock creates a report service with a custom clock,
// used by the time-dependent productivity figures
func NewReportServiceWithClock(logger *zap.Logger, now func() time.Time) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{logger: logger, now: now}
}

// GeneralSummary reduces the filtered snapshot into headline counts
func (s *ReportService) GeneralSummary(snapshot repositories.Snapshot, filter dto.Filter) dto.GeneralSummary {
	data := filter.Apply(snapshot)

	summary := dto.GeneralSummary{
		TotalProjects:     len(data.Projects),
		TotalPhases:       len(data.Phases),
		TotalMaterials:    len(data.Materials),
		TotalPurchaseCost: decimal.Zero,
	}
	for _, project := range data.Projects {
		switch project.Status {
		case entities.ProjectPlanned:
			summary.PlannedProjects++
		case entities.ProjectInProgress:
			summary.ActiveProjects++
		case entities.ProjectCompleted:
			summary.CompletedProjects++
		}
	}
	for _, purchase := range data.Purchases {
		summary.TotalPurchaseCost = summary.TotalPurchaseCost.Add(purchase.TotalCost)
	}

	s.logger.Debug("general summary generated",
		zap.Int("projects", summary.TotalProjects),
		zap.String("total_cost", summary.TotalPurchaseCost.String()))
	return summary
}

// CostAnalysis compares each project's budget against the sum of its
// purchases. Variance is budget minus actual cost.
func (s *ReportService) CostAnalysis(snapshot repositories.Snapshot, filter dto.Filter) []dto.CostRow {
	data := filter.Apply(snapshot)

	rows := make([]dto.CostRow, 0, len(data.Projects))
	for _, project := range data.Projects {
		actual := decimal.Zero
		for _, purchase := range data.Purchases {
			if purchase.ProjectID == project.ID {
				actual = actual.Add(purchase.TotalCost)
			}
		}

		percentUsed := "0.00%"
		if project.Budget.IsPositive() {
			percentUsed = actual.Div(project.Budget).Mul(hundred).StringFixed(2) + "%"
		}

		rows = append(rows, dto.CostRow{
			ProjectID:   project.ID,
			ProjectName: project.Name,
			Budget:      project.Budget,
			ActualCost:  actual,
			Variance:    project.Budget.Sub(actual),
			PercentUsed: percentUsed,
		})
	}
	return rows
}

// ProgressAnalysis summarizes each project's phase completion. The
// average progress is the rounded mean of its phases, 0 without phases.
func (s *ReportService) ProgressAnalysis(snapshot repositories.Snapshot, filter dto.Filter) []dto.ProgressRow {
	data := filter.Apply(snapshot)

	rows := make([]dto.ProgressRow, 0, len(data.Projects))
	for _, project := range data.Projects {
		var total, completed, sum int
		for _, phase := range data.Phases {
			if phase.ProjectID != project.ID {
				continue
			}
			total++
			sum += phase.Progress
			if phase.Completed() {
				completed++
			}
		}

		average := 0
		if total > 0 {
			average = int(math.Floor(float64(sum)/float64(total) + 0.5))
		}

		rows = append(rows, dto.ProgressRow{
			ProjectID:       project.ID,
			ProjectName:     project.Name,
			TotalPhases:     total,
			CompletedPhases: completed,
			AverageProgress: average,
		})
	}
	return rows
}

// ProductivityAnalysis reports completed phases per month: completed
// divided by whole elapsed days since project start, times 30. Projects
// with no elapsed time rate 0.00.
func (s *ReportService) ProductivityAnalysis(snapshot repositories.Snapshot, filter dto.Filter) []dto.ProductivityRow {
	data := filter.Apply(snapshot)
	now := s.now()

	rows := make([]dto.ProductivityRow, 0, len(data.Projects))
	for _, project := range data.Projects {
		var completed int
		for _, phase := range data.Phases {
			if phase.ProjectID == project.ID && phase.Completed() {
				completed++
			}
		}

		elapsedDays := int(math.Floor(now.Sub(project.StartDate).Hours() / 24))

		rate := "0.00"
		if elapsedDays > 0 {
			rate = decimal.NewFromInt(int64(completed)).
				Div(decimal.NewFromInt(int64(elapsedDays))).
				Mul(decimal.NewFromInt(30)).
				StringFixed(2)
		}

		rows = append(rows, dto.ProductivityRow{
			ProjectID:        project.ID,
			ProjectName:      project.Name,
			ElapsedDays:      elapsedDays,
			CompletedPhases:  completed,
			ProductivityRate: rate,
		})
	}
	return rows
}

// MaterialUsage totals each material's purchased quantity and value
// across every purchase item referencing it
func (s *ReportService) MaterialUsage(snapshot repositories.Snapshot, filter dto.Filter) []dto.MaterialUsageRow {
	data := filter.Apply(snapshot)

	rows := make([]dto.MaterialUsageRow, 0, len(data.Materials))
	for _, material := range data.Materials {
		var quantity entities.Quantity
		value := decimal.Zero
		for _, purchase := range data.Purchases {
			for _, item := range purchase.Items {
				if item.MaterialID == material.ID {
					quantity += item.Quantity
					value = value.Add(item.LineTotal)
				}
			}
		}

		rows = append(rows, dto.MaterialUsageRow{
			MaterialID:        material.ID,
			MaterialName:      material.Name,
			Unit:              material.Unit,
			QuantityPurchased: quantity,
			TotalValue:        value,
			CurrentStock:      material.Stock,
		})
	}
	return rows
}

// StockStatus reports each material's stock level against its minimum
// and the date of its most recent movement
func (s *ReportService) StockStatus(snapshot repositories.Snapshot, filter dto.Filter) []dto.StockStatusRow {
	data := filter.Apply(snapshot)

	rows := make([]dto.StockStatusRow, 0, len(data.Materials))
	for _, material := range data.Materials {
		var last *time.Time
		for _, movement := range data.Movements {
			if movement.MaterialID != material.ID {
				continue
			}
			if last == nil || movement.Date.After(*last) {
				date := movement.Date
				last = &date
			}
		}

		status := "Normal"
		if material.LowStock() {
			status = "Low"
		}

		rows = append(rows, dto.StockStatusRow{
			MaterialID:   material.ID,
			MaterialName: material.Name,
			CurrentStock: material.Stock,
			MinStock:     material.MinStock,
			Status:       status,
			LastMovement: last,
		})
	}
	return rows
}
