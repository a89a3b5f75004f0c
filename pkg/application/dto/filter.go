package dto

import (
	"time"

	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
	"github.com/aneliseestevam/structa-web/pkg/domain/repositories"
)

// Filter scopes a snapshot before aggregation. Zero-value fields are
// inactive. The same filter serves the report and dashboard paths so
// both produce identical result sets for identical criteria.
//
// Date rules: a project passes the lower bound by its start date and the
// upper bound by its actual end date, falling back to the expected end;
// phases pass by their own start/end dates when set and always pass
// otherwise; purchases and movements pass by purchase date and movement
// date. Materials are a global catalog and are never scoped.
type Filter struct {
	From      time.Time
	To        time.Time
	ProjectID string
	Status    *entities.ProjectStatus
}

// Apply returns the filtered view of the snapshot
func (f Filter) Apply(snapshot repositories.Snapshot) repositories.Snapshot {
	filtered := repositories.Snapshot{Materials: snapshot.Materials}

	for _, project := range snapshot.Projects {
		if f.matchesProject(project) {
			filtered.Projects = append(filtered.Projects, project)
		}
	}
	for _, phase := range snapshot.Phases {
		if f.matchesPhase(phase) {
			filtered.Phases = append(filtered.Phases, phase)
		}
	}
	for _, purchase := range snapshot.Purchases {
		if f.matchesPurchase(purchase) {
			filtered.Purchases = append(filtered.Purchases, purchase)
		}
	}
	for _, movement := range snapshot.Movements {
		if f.matchesMovement(movement) {
			filtered.Movements = append(filtered.Movements, movement)
		}
	}

	return filtered
}

func (f Filter) matchesProject(project *entities.Project) bool {
	if f.ProjectID != "" && project.ID != f.ProjectID {
		return false
	}
	if f.Status != nil && project.Status != *f.Status {
		return false
	}
	if !f.From.IsZero() && project.StartDate.Before(f.From) {
		return false
	}
	if !f.To.IsZero() {
		end := project.ExpectedEnd
		if project.ActualEnd != nil {
			end = *project.ActualEnd
		}
		if end.After(f.To) {
			return false
		}
	}
	return true
}

func (f Filter) matchesPhase(phase *entities.Phase) bool {
	if f.ProjectID != "" && phase.ProjectID != f.ProjectID {
		return false
	}
	if !f.From.IsZero() && phase.StartDate != nil && phase.StartDate.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && phase.EndDate != nil && phase.EndDate.After(f.To) {
		return false
	}
	return true
}

func (f Filter) matchesPurchase(purchase *entities.Purchase) bool {
	if f.ProjectID != "" && purchase.ProjectID != f.ProjectID {
		return false
	}
	if !f.From.IsZero() && purchase.PurchaseDate.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && purchase.PurchaseDate.After(f.To) {
		return false
	}
	return true
}

func (f Filter) matchesMovement(movement *entities.StockMovement) bool {
	if f.ProjectID != "" && movement.ProjectID != f.ProjectID {
		return false
	}
	if !f.From.IsZero() && movement.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && movement.Date.After(f.To) {
		return false
	}
	return true
}
