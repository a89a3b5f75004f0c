package memory

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
)

// defaultPhaseTemplate is the canonical phase breakdown inserted for a
// new project, in this fixed order
var defaultPhaseTemplate = []struct {
	Name        string
	Description string
}{
	{"Foundation", "Excavation and foundation works"},
	{"Structure", "Reinforced concrete structure"},
	{"Masonry", "Masonry walls"},
	{"Finishing", "Painting and final finishes"},
}

// AddPhase appends a phase to the collection
func (s *Store) AddPhase(phase *entities.Phase) {
	s.phases = append(s.phases, phase)
}

// GetPhase returns the phase with the given id
func (s *Store) GetPhase(id string) (*entities.Phase, error) {
	for _, phase := range s.phases {
		if phase.ID == id {
			return phase, nil
		}
	}
	return nil, fmt.Errorf("phase %s: %w", id, ErrNotFound)
}

// Phases returns all phases in insertion order
func (s *Store) Phases() []*entities.Phase {
	return append([]*entities.Phase(nil), s.phases...)
}

// PhasesByProject returns the phases of a project, preserving insertion order
func (s *Store) PhasesByProject(projectID string) []*entities.Phase {
	var phases []*entities.Phase
	for _, phase := range s.phases {
		if phase.ProjectID == projectID {
			phases = append(phases, phase)
		}
	}
	return phases
}

// LoadPhases loads phases into the store
func (s *Store) LoadPhases(phases []*entities.Phase) error {
	for _, phase := range phases {
		s.AddPhase(phase)
	}
	return nil
}

// UpdatePhase merges the given fields into the matching phase and
// refreshes its UpdatedAt timestamp
func (s *Store) UpdatePhase(id string, update entities.PhaseUpdate) error {
	phase, err := s.GetPhase(id)
	if err != nil {
		return err
	}

	if update.Progress != nil {
		if *update.Progress < 0 || *update.Progress > 100 {
			return fmt.Errorf("phase progress must be between 0 and 100, got %d", *update.Progress)
		}
		phase.Progress = *update.Progress
	}
	if update.Name != nil {
		phase.Name = *update.Name
	}
	if update.Description != nil {
		phase.Description = *update.Description
	}
	if update.StartDate != nil {
		phase.StartDate = update.StartDate
	}
	if update.EndDate != nil {
		phase.EndDate = update.EndDate
	}
	if update.Photos != nil {
		phase.Photos = update.Photos
	}
	if update.Notes != nil {
		phase.Notes = *update.Notes
	}
	phase.UpdatedAt = s.now()

	return nil
}

// DeletePhase removes the phase and cascades to the stock movements
// referencing it. Other phases and projects are unaffected.
func (s *Store) DeletePhase(id string) error {
	if _, err := s.GetPhase(id); err != nil {
		return err
	}

	var phases []*entities.Phase
	for _, phase := range s.phases {
		if phase.ID != id {
			phases = append(phases, phase)
		}
	}
	s.phases = phases

	var movements []*entities.StockMovement
	for _, movement := range s.movements {
		if movement.PhaseID != id {
			movements = append(movements, movement)
		}
	}
	s.movements = movements

	return nil
}

// ProjectProgress returns the rounded mean of the project's phase
// progress values, or 0 when the project has no phases. Rounding is
// half-up to the nearest integer.
func (s *Store) ProjectProgress(projectID string) int {
	var sum, count int
	for _, phase := range s.phases {
		if phase.ProjectID == projectID {
			sum += phase.Progress
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Floor(float64(sum)/float64(count) + 0.5))
}

// CompletedPhaseCount returns the number of the project's phases at
// progress 100
func (s *Store) CompletedPhaseCount(projectID string) int {
	var count int
	for _, phase := range s.phases {
		if phase.ProjectID == projectID && phase.Completed() {
			count++
		}
	}
	return count
}

// TotalPhaseCount returns the number of phases attached to the project
func (s *Store) TotalPhaseCount(projectID string) int {
	var count int
	for _, phase := range s.phases {
		if phase.ProjectID == projectID {
			count++
		}
	}
	return count
}

// NextPhase returns the incomplete phase with the earliest start date.
// Phases without a start date are not ordered relative to the others;
// ties keep insertion order. Returns nil when every phase is complete or
// the project has none.
func (s *Store) NextPhase(projectID string) *entities.Phase {
	var pending []*entities.Phase
	for _, phase := range s.phases {
		if phase.ProjectID == projectID && !phase.Completed() {
			pending = append(pending, phase)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].StartDate == nil || pending[j].StartDate == nil {
			return false
		}
		return pending[i].StartDate.Before(*pending[j].StartDate)
	})

	return pending[0]
}

// CreateDefaultPhases inserts the four canonical phases for a project,
// each at progress 0, and returns them in template order
func (s *Store) CreateDefaultPhases(projectID string) []*entities.Phase {
	now := s.now()

	created := make([]*entities.Phase, 0, len(defaultPhaseTemplate))
	for _, tpl := range defaultPhaseTemplate {
		phase := &entities.Phase{
			ID:          uuid.NewString(),
			Name:        tpl.Name,
			Description: tpl.Description,
			ProjectID:   projectID,
			Progress:    0,
			Photos:      []string{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		s.AddPhase(phase)
		created = append(created, phase)
	}
	return created
}
