package memory

import (
	"fmt"

	"github.com/aneliseestevam/structa-web/pkg/domain/entities"
)

// AddProject appends a project to the collection. The caller guarantees
// id uniqueness; no duplicate check is performed.
func (s *Store) AddProject(project *entities.Project) {
	s.projects = append(s.projects, project)
}

// GetProject returns the project with the given id
func (s *Store) GetProject(id string) (*entities.Project, error) {
	for _, project := range s.projects {
		if project.ID == id {
			return project, nil
		}
	}
	return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
}

// Projects returns all projects in insertion order
func (s *Store) Projects() []*entities.Project {
	return append([]*entities.Project(nil), s.projects...)
}

// LoadProjects loads projects into the store
func (s *Store) LoadProjects(projects []*entities.Project) error {
	for _, project := range projects {
		s.AddProject(project)
	}
	return nil
}

// UpdateProject merges the given fields into the matching project and
// refreshes its UpdatedAt timestamp
func (s *Store) UpdateProject(id string, update entities.ProjectUpdate) error {
	project, err := s.GetProject(id)
	if err != nil {
		return err
	}

	if update.Name != nil {
		project.Name = *update.Name
	}
	if update.Location != nil {
		project.Location = *update.Location
	}
	if update.StartDate != nil {
		project.StartDate = *update.StartDate
	}
	if update.ExpectedEnd != nil {
		project.ExpectedEnd = *update.ExpectedEnd
	}
	if update.ActualEnd != nil {
		project.ActualEnd = update.ActualEnd
	}
	if update.Owner != nil {
		project.Owner = *update.Owner
	}
	if update.Status != nil {
		project.Status = *update.Status
	}
	if update.Budget != nil {
		project.Budget = *update.Budget
	}
	if update.TotalCost != nil {
		project.TotalCost = *update.TotalCost
	}
	project.UpdatedAt = s.now()

	return nil
}

// DeleteProject removes the project and cascades to its phases, stock
// movements and purchases. The cascade completes within this call; no
// partial state is observable afterwards.
func (s *Store) DeleteProject(id string) error {
	if _, err := s.GetProject(id); err != nil {
		return err
	}

	var projects []*entities.Project
	for _, project := range s.projects {
		if project.ID != id {
			projects = append(projects, project)
		}
	}
	s.projects = projects

	var phases []*entities.Phase
	for _, phase := range s.phases {
		if phase.ProjectID != id {
			phases = append(phases, phase)
		}
	}
	s.phases = phases

	var movements []*entities.StockMovement
	for _, movement := range s.movements {
		if movement.ProjectID != id {
			movements = append(movements, movement)
		}
	}
	s.movements = movements

	var purchases []*entities.Purchase
	for _, purchase := range s.purchases {
		if purchase.ProjectID != id {
			purchases = append(purchases, purchase)
		}
	}
	s.purchases = purchases

	return nil
}
