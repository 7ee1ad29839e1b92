package workledger

import (
	"github.com/shopspring/decimal"
)

// Dashboard summarizes the company at a glance.
type Dashboard struct {
	Company          string
	Currency         string
	Projects         int
	ProjectsByStatus map[ProjectStatus]int
	Workers          int
	ActiveWorkers    int
	TotalMonthlyCost decimal.Decimal
	AverageSalary    decimal.Decimal // rounded to a whole unit
	HighestSalary    decimal.Decimal
	UniqueSkills     int
	TotalBudget      decimal.Decimal
	UpcomingEvents   []Event
	RecentProjects   []Project
	ProjectCosts     []ProjectCost
}

// ComputeDashboard derives the dashboard statistics.
func ComputeDashboard(projects []Project, workers []Worker, settings Settings, upcoming []Event) Dashboard {
	d := Dashboard{
		Company:          settings.CompanyName,
		Currency:         settings.Currency,
		Projects:         len(projects),
		ProjectsByStatus: make(map[ProjectStatus]int),
		Workers:          len(workers),
		TotalMonthlyCost: ComputeTotalMonthlyCost(workers),
		HighestSalary:    decimal.Zero,
		TotalBudget:      decimal.Zero,
		UpcomingEvents:   upcoming,
	}
	for _, st := range ProjectStatuses {
		d.ProjectsByStatus[st] = 0
	}
	for _, p := range projects {
		d.ProjectsByStatus[p.Status]++
		if p.Budget != nil {
			d.TotalBudget = d.TotalBudget.Add(*p.Budget)
		}
	}
	skills := make(map[string]bool)
	for _, w := range workers {
		if w.Status == WorkerActive {
			d.ActiveWorkers++
		}
		if w.MonthlySalary.GreaterThan(d.HighestSalary) {
			d.HighestSalary = w.MonthlySalary
		}
		for _, s := range w.Skills {
			skills[s] = true
		}
	}
	d.UniqueSkills = len(skills)
	d.AverageSalary = splitAmount(d.TotalMonthlyCost, len(workers))
	for _, p := range projects[:min(len(projects), 4)] {
		d.RecentProjects = append(d.RecentProjects, p.clone())
	}
	costs := ComputeProjectCosts(projects, workers)
	d.ProjectCosts = costs[:min(len(costs), 5)]
	return d
}

// Dashboard returns the dashboard statistics of the store.
func (s *Store) Dashboard() Dashboard {
	return ComputeDashboard(s.projects, s.workers, s.settings, s.UpcomingEvents(UpcomingLimit))
}
