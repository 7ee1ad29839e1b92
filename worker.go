package workledger

import (
	"fmt"
	"slices"

	"github.com/etnz/workledger/date"
	"github.com/shopspring/decimal"
)

// WorkerStatus is the employment status of a worker.
type WorkerStatus string

const (
	WorkerActive   WorkerStatus = "active"
	WorkerOnLeave  WorkerStatus = "on-leave"
	WorkerInactive WorkerStatus = "inactive"
)

// WorkerStatuses lists every worker status in display order.
var WorkerStatuses = []WorkerStatus{WorkerActive, WorkerOnLeave, WorkerInactive}

// ParseWorkerStatus parses a string into a WorkerStatus.
func ParseWorkerStatus(s string) (WorkerStatus, error) {
	if st := WorkerStatus(s); slices.Contains(WorkerStatuses, st) {
		return st, nil
	}
	return "", fmt.Errorf("unknown worker status %q, want one of %v", s, WorkerStatuses)
}

// Worker is a salaried member of the team.
type Worker struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Role             string          `json:"role"`
	Skills           []string        `json:"skills"`
	MonthlySalary    decimal.Decimal `json:"monthlySalary"`
	AssignedProjects []string        `json:"assignedProjects"`
	Avatar           string          `json:"avatar,omitempty"`
	JoinedAt         date.Date       `json:"joinedAt"`
	Status           WorkerStatus    `json:"status"`
}

func (w Worker) clone() Worker {
	w.Skills = slices.Clone(w.Skills)
	w.AssignedProjects = slices.Clone(w.AssignedProjects)
	return w
}

// HasProject reports whether the project id is assigned to w.
func (w Worker) HasProject(id string) bool { return slices.Contains(w.AssignedProjects, id) }

// WorkerDraft holds the user provided fields of a new worker.
type WorkerDraft struct {
	Name             string          `json:"name" validate:"required"`
	Email            string          `json:"email" validate:"required,email"`
	Role             string          `json:"role" validate:"required"`
	Skills           []string        `json:"skills" validate:"dive,required"`
	MonthlySalary    decimal.Decimal `json:"monthlySalary" validate:"gte=0"`
	AssignedProjects []string        `json:"assignedProjects" validate:"dive,required"`
	Avatar           string          `json:"avatar,omitempty" validate:"omitempty,url"`
	Status           WorkerStatus    `json:"status" validate:"required,oneof=active on-leave inactive"`
}

// WorkerUpdate holds the fields to change on a worker. Nil fields are left
// unchanged.
type WorkerUpdate struct {
	Name             *string
	Email            *string
	Role             *string
	Skills           []string
	MonthlySalary    *decimal.Decimal
	AssignedProjects []string
	Avatar           *string
	JoinedAt         *date.Date
	Status           *WorkerStatus
}

func (u WorkerUpdate) apply(w *Worker) {
	if u.Name != nil {
		w.Name = *u.Name
	}
	if u.Email != nil {
		w.Email = *u.Email
	}
	if u.Role != nil {
		w.Role = *u.Role
	}
	if u.Skills != nil {
		w.Skills = slices.Clone(u.Skills)
	}
	if u.MonthlySalary != nil {
		w.MonthlySalary = *u.MonthlySalary
	}
	if u.AssignedProjects != nil {
		w.AssignedProjects = slices.Clone(u.AssignedProjects)
	}
	if u.Avatar != nil {
		w.Avatar = *u.Avatar
	}
	if u.JoinedAt != nil {
		w.JoinedAt = *u.JoinedAt
	}
	if u.Status != nil {
		w.Status = *u.Status
	}
}

// Draft returns the user provided fields of w.
func (w Worker) Draft() WorkerDraft {
	w = w.clone()
	return WorkerDraft{
		Name:             w.Name,
		Email:            w.Email,
		Role:             w.Role,
		Skills:           w.Skills,
		MonthlySalary:    w.MonthlySalary,
		AssignedProjects: w.AssignedProjects,
		Avatar:           w.Avatar,
		Status:           w.Status,
	}
}
