package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus int

const (
	ProjectPlanned ProjectStatus = iota
	ProjectInProgress
	ProjectCompleted
)

// String method for ProjectStatus enum
func (s ProjectStatus) String() string {
	switch s {
	case ProjectPlanned:
		return "planned"
	case ProjectInProgress:
		return "in-progress"
	case ProjectCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ParseProjectStatus converts a status string to its enum value
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch s {
	case "planned":
		return ProjectPlanned, nil
	case "in-progress":
		return ProjectInProgress, nil
	case "completed":
		return ProjectCompleted, nil
	default:
		return 0, fmt.Errorf("invalid project status: %s", s)
	}
}

// Project represents a construction job tracked through phases,
// purchases and budget
type Project struct {
	ID          string
	Name        string
	Location    string
	StartDate   time.Time
	ExpectedEnd time.Time
	ActualEnd   *time.Time
	Owner       string
	Status      ProjectStatus
	Budget      decimal.Decimal
	TotalCost   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProject creates a validated Project
func NewProject(id, name, location string, start, expectedEnd time.Time, owner string, status ProjectStatus, budget decimal.Decimal) (*Project, error) {
	if id == "" {
		return nil, fmt.Errorf("project id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("project name cannot be empty")
	}
	if budget.IsNegative() {
		return nil, fmt.Errorf("project budget cannot be negative, got %s", budget)
	}

	now := time.Now()
	return &Project{
		ID:          id,
		Name:        name,
		Location:    location,
		StartDate:   start,
		ExpectedEnd: expectedEnd,
		Owner:       owner,
		Status:      status,
		Budget:      budget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ProjectUpdate carries the fields of a partial project update.
// Nil fields are left unchanged.
type ProjectUpdate struct {
	Name        *string
	Location    *string
	StartDate   *time.Time
	ExpectedEnd *time.Time
	ActualEnd   *time.Time
	Owner       *string
	Status      *ProjectStatus
	Budget      *decimal.Decimal
	TotalCost   *decimal.Decimal
}
