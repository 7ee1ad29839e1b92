package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/workledger"
)

// SalaryLine is a worker's salary and how it is spread over projects.
type SalaryLine struct {
	Name        string
	Role        string
	Salary      workledger.Money
	Allocations string
}

// Salary is the salary allocation report.
type Salary struct {
	Total   workledger.Money
	Workers []SalaryLine
}

// NewSalary creates the salary report view.
func NewSalary(data []workledger.SalaryData, total workledger.Money) *Salary {
	v := &Salary{Total: total}
	for _, d := range data {
		allocs := make([]string, 0, len(d.Projects))
		for _, a := range d.Projects {
			allocs = append(allocs, fmt.Sprintf("%s %d%%", a.ProjectName, a.Allocation))
		}
		v.Workers = append(v.Workers, SalaryLine{
			Name:        d.WorkerName,
			Role:        d.Role,
			Salary:      workledger.M(d.Salary, total.Currency()),
			Allocations: strings.Join(allocs, ", "),
		})
	}
	return v
}

// ProjectCost is the cost of a project broken down by worker.
type ProjectCost struct {
	CostLine
	Workers []TeamLine
}

// Costs is the cost report of every project.
type Costs struct {
	Total    workledger.Money
	Projects []ProjectCost
}

// NewCosts creates the cost report view.
func NewCosts(costs []workledger.ProjectCost, total workledger.Money) *Costs {
	cur := total.Currency()
	v := &Costs{Total: total}
	for i, line := range newCostLines(costs, cur) {
		pc := ProjectCost{CostLine: line}
		for _, wc := range costs[i].Workers {
			pc.Workers = append(pc.Workers, TeamLine{ID: wc.WorkerID, Name: wc.WorkerName, Cost: workledger.M(wc.Cost, cur)})
		}
		v.Projects = append(v.Projects, pc)
	}
	return v
}
