package entities

import (
	"fmt"
	"time"
)

// Phase represents a tracked unit of work within a project, with a
// 0-100 progress value
type Phase struct {
	ID          string
	Name        string
	Description string
	ProjectID   string
	Progress    int
	StartDate   *time.Time
	EndDate     *time.Time
	Photos      []string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPhase creates a validated Phase
func NewPhase(id, name, description, projectID string, progress int) (*Phase, error) {
	if id == "" {
		return nil, fmt.Errorf("phase id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("phase name cannot be empty")
	}
	if projectID == "" {
		return nil, fmt.Errorf("phase project id cannot be empty")
	}
	if progress < 0 || progress > 100 {
		return nil, fmt.Errorf("phase progress must be between 0 and 100, got %d", progress)
	}

	now := time.Now()
	return &Phase{
		ID:          id,
		Name:        name,
		Description: description,
		ProjectID:   projectID,
		Progress:    progress,
		Photos:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Completed reports whether the phase has reached full progress
func (p *Phase) Completed() bool {
	return p.Progress == 100
}

// PhaseUpdate carries the fields of a partial phase update.
// Nil fields are left unchanged; a nil Photos slice keeps the current photos.
type PhaseUpdate struct {
	Name        *string
	Description *string
	Progress    *int
	StartDate   *time.Time
	EndDate     *time.Time
	Photos      []string
	Notes       *string
}
