package workledger

import (
	"fmt"
	"slices"

	"github.com/etnz/workledger/date"
	"github.com/shopspring/decimal"
)

// ProjectStatus is the lifecycle stage of a project.
type ProjectStatus string

const (
	StatusActive    ProjectStatus = "active"
	StatusCompleted ProjectStatus = "completed"
	StatusOnHold    ProjectStatus = "on-hold"
	StatusPlanning  ProjectStatus = "planning"
)

// ProjectStatuses lists every project status in display order.
var ProjectStatuses = []ProjectStatus{StatusActive, StatusCompleted, StatusOnHold, StatusPlanning}

// ParseProjectStatus parses a string into a ProjectStatus.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	if st := ProjectStatus(s); slices.Contains(ProjectStatuses, st) {
		return st, nil
	}
	return "", fmt.Errorf("unknown project status %q, want one of %v", s, ProjectStatuses)
}

// Milestone is a dated step in a project's timeline.
type Milestone struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	DueDate   date.Date `json:"dueDate"`
	Completed bool      `json:"completed"`
}

// Project is a unit of work staffed by workers.
//
// Milestones is nil until the project's timeline is first edited, in which
// case the timeline shows a default set derived from the project itself. An
// empty, non nil list is a timeline that was emptied on purpose.
type Project struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Status          ProjectStatus    `json:"status"`
	Technologies    []string         `json:"technologies"`
	AssignedWorkers []string         `json:"assignedWorkers"`
	CreatedAt       date.Date        `json:"createdAt"`
	UpdatedAt       date.Date        `json:"updatedAt"`
	Budget          *decimal.Decimal `json:"budget,omitempty"`
	Deadline        date.Date        `json:"deadline,omitzero"`
	Milestones      []Milestone      `json:"milestones"`
}

// clone returns a deep copy of p, preserving nil lists.
func (p Project) clone() Project {
	p.Technologies = slices.Clone(p.Technologies)
	p.AssignedWorkers = slices.Clone(p.AssignedWorkers)
	p.Milestones = slices.Clone(p.Milestones)
	return p
}

// HasWorker reports whether the worker id is assigned to p.
func (p Project) HasWorker(id string) bool { return slices.Contains(p.AssignedWorkers, id) }

// ProjectDraft holds the user provided fields of a new project.
type ProjectDraft struct {
	Name            string           `json:"name" validate:"required"`
	Description     string           `json:"description"`
	Status          ProjectStatus    `json:"status" validate:"required,oneof=active completed on-hold planning"`
	Technologies    []string         `json:"technologies" validate:"dive,required"`
	AssignedWorkers []string         `json:"assignedWorkers" validate:"dive,required"`
	Budget          *decimal.Decimal `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Deadline        date.Date        `json:"deadline,omitzero"`
	Milestones      []Milestone      `json:"milestones"`
}

// ProjectUpdate holds the fields to change on a project. Nil fields are left
// unchanged; to clear a list set it to an empty slice.
type ProjectUpdate struct {
	Name            *string
	Description     *string
	Status          *ProjectStatus
	Technologies    []string
	AssignedWorkers []string
	Budget          *decimal.Decimal
	Deadline        *date.Date
	Milestones      []Milestone
}

// apply merges u into p.
func (u ProjectUpdate) apply(p *Project) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Technologies != nil {
		p.Technologies = slices.Clone(u.Technologies)
	}
	if u.AssignedWorkers != nil {
		p.AssignedWorkers = slices.Clone(u.AssignedWorkers)
	}
	if u.Budget != nil {
		b := *u.Budget
		p.Budget = &b
	}
	if u.Deadline != nil {
		p.Deadline = *u.Deadline
	}
	if u.Milestones != nil {
		p.Milestones = slices.Clone(u.Milestones)
	}
}

// Draft returns the user provided fields of p, e.g. to validate an update.
func (p Project) Draft() ProjectDraft {
	p = p.clone()
	return ProjectDraft{
		Name:            p.Name,
		Description:     p.Description,
		Status:          p.Status,
		Technologies:    p.Technologies,
		AssignedWorkers: p.AssignedWorkers,
		Budget:          p.Budget,
		Deadline:        p.Deadline,
		Milestones:      p.Milestones,
	}
}
