package renderer

import (
	"strings"

	"github.com/etnz/workledger"
	"github.com/etnz/workledger/date"
)

// WorkerLine is a worker in a list.
type WorkerLine struct {
	ID       string
	Name     string
	Email    string
	Role     string
	Status   workledger.WorkerStatus
	Skills   string
	Salary   workledger.Money
	Projects int
}

func newWorkerLine(w workledger.Worker, cur string) WorkerLine {
	return WorkerLine{
		ID:       w.ID,
		Name:     w.Name,
		Email:    w.Email,
		Role:     w.Role,
		Status:   w.Status,
		Skills:   strings.Join(w.Skills, ", "),
		Salary:   workledger.M(w.MonthlySalary, cur),
		Projects: len(w.AssignedProjects),
	}
}

// WorkerList is a list of workers.
type WorkerList struct {
	Title   string
	Workers []WorkerLine
	Total   workledger.Money
}

// NewWorkerList creates the view of a list of workers, with their total
// monthly salary.
func NewWorkerList(title string, workers []workledger.Worker, cur string) *WorkerList {
	v := &WorkerList{Title: title, Total: workledger.M(workledger.ComputeTotalMonthlyCost(workers), cur)}
	for _, w := range workers {
		v.Workers = append(v.Workers, newWorkerLine(w, cur))
	}
	return v
}

// ShareLine is a project of a worker, with the share of time spent on it.
type ShareLine struct {
	ID     string
	Name   string
	Status workledger.ProjectStatus
	Share  int
}

// WorkerDetail is the full description of a worker.
type WorkerDetail struct {
	WorkerLine
	Avatar      string
	JoinedAt    date.Date
	Assignments []ShareLine
}

// NewWorkerDetail creates the detail view of w.
func NewWorkerDetail(w workledger.Worker, shares []workledger.ProjectShare, cur string) *WorkerDetail {
	v := &WorkerDetail{WorkerLine: newWorkerLine(w, cur), Avatar: w.Avatar, JoinedAt: w.JoinedAt}
	for _, s := range shares {
		v.Assignments = append(v.Assignments, ShareLine{ID: s.Project.ID, Name: s.Project.Name, Status: s.Project.Status, Share: s.Share})
	}
	return v
}
