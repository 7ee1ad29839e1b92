package workledger

import "github.com/shopspring/decimal"

// SalaryData is a worker's salary with the projects it is spread over.
type SalaryData struct {
	WorkerID   string              `json:"workerId"`
	WorkerName string              `json:"workerName"`
	Role       string              `json:"role"`
	Salary     decimal.Decimal     `json:"salary"`
	Projects   []ProjectAllocation `json:"projects"`
}

// ProjectAllocation is the share of a project attributed to one of its
// workers, in percent.
type ProjectAllocation struct {
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName"`
	Allocation  int    `json:"allocation"`
}

// ProjectCost is the monthly salary cost attributed to a project.
type ProjectCost struct {
	ProjectID   string          `json:"projectId"`
	ProjectName string          `json:"projectName"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	Workers     []WorkerCost    `json:"workers"`
}

// WorkerCost is the part of a worker's salary attributed to one project.
type WorkerCost struct {
	WorkerID   string          `json:"workerId"`
	WorkerName string          `json:"workerName"`
	Cost       decimal.Decimal `json:"cost"`
}

var hundred = decimal.NewFromInt(100)

// splitPercent returns 100/n rounded half away from zero, and 0 when n is 0.
func splitPercent(n int) int {
	if n == 0 {
		return 0
	}
	return int(hundred.Div(decimal.NewFromInt(int64(n))).Round(0).IntPart())
}

// splitAmount returns v/n rounded half away from zero, and 0 when n is 0.
func splitAmount(v decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return v.Div(decimal.NewFromInt(int64(n))).Round(0)
}

// ComputeSalaryData returns, for each worker, the allocation of each of its
// projects. A project's allocation is 100 divided by the project's headcount,
// whatever the worker's salary. Unknown project ids are skipped.
func ComputeSalaryData(projects []Project, workers []Worker) []SalaryData {
	index := make(map[string]Project, len(projects))
	for _, p := range projects {
		index[p.ID] = p
	}
	list := make([]SalaryData, 0, len(workers))
	for _, w := range workers {
		allocations := make([]ProjectAllocation, 0, len(w.AssignedProjects))
		for _, pid := range w.AssignedProjects {
			p, ok := index[pid]
			if !ok {
				continue
			}
			allocations = append(allocations, ProjectAllocation{
				ProjectID:   p.ID,
				ProjectName: p.Name,
				Allocation:  splitPercent(len(p.AssignedWorkers)),
			})
		}
		list = append(list, SalaryData{
			WorkerID:   w.ID,
			WorkerName: w.Name,
			Role:       w.Role,
			Salary:     w.MonthlySalary,
			Projects:   allocations,
		})
	}
	return list
}

// ComputeProjectCosts returns, for each project, the cost of each of its
// workers: the worker's salary divided by the number of projects the worker
// is assigned to. Costs are rounded one by one, then summed. Unknown worker
// ids are skipped.
func ComputeProjectCosts(projects []Project, workers []Worker) []ProjectCost {
	index := make(map[string]Worker, len(workers))
	for _, w := range workers {
		index[w.ID] = w
	}
	list := make([]ProjectCost, 0, len(projects))
	for _, p := range projects {
		costs := make([]WorkerCost, 0, len(p.AssignedWorkers))
		total := decimal.Zero
		for _, wid := range p.AssignedWorkers {
			w, ok := index[wid]
			if !ok {
				continue
			}
			cost := splitAmount(w.MonthlySalary, len(w.AssignedProjects))
			total = total.Add(cost)
			costs = append(costs, WorkerCost{WorkerID: w.ID, WorkerName: w.Name, Cost: cost})
		}
		list = append(list, ProjectCost{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			TotalCost:   total,
			Workers:     costs,
		})
	}
	return list
}

// ComputeTotalMonthlyCost returns the sum of every worker's full salary.
func ComputeTotalMonthlyCost(workers []Worker) decimal.Decimal {
	total := decimal.Zero
	for _, w := range workers {
		total = total.Add(w.MonthlySalary)
	}
	return total
}

// SalaryData returns the salary allocation of every worker.
func (s *Store) SalaryData() []SalaryData { return ComputeSalaryData(s.projects, s.workers) }

// ProjectCosts returns the salary cost of every project.
func (s *Store) ProjectCosts() []ProjectCost { return ComputeProjectCosts(s.projects, s.workers) }

// TotalMonthlyCost returns the monthly payroll.
func (s *Store) TotalMonthlyCost() decimal.Decimal { return ComputeTotalMonthlyCost(s.workers) }
