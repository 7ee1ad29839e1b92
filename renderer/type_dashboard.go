package renderer

import (
	"github.com/etnz/workledger"
	"github.com/etnz/workledger/date"
)

// Dashboard is the company overview.
type Dashboard struct {
	Company          string
	Date             date.Date
	Projects         int
	Statuses         []StatusCount
	Workers          int
	ActiveWorkers    int
	TotalMonthlyCost workledger.Money
	AverageSalary    workledger.Money
	HighestSalary    workledger.Money
	TotalBudget      workledger.Money
	UniqueSkills     int
	Events           []EventLine
	Recent           []ProjectLine
	Costs            []CostLine
}

// StatusCount is the number of projects in a status.
type StatusCount struct {
	Status workledger.ProjectStatus
	Count  int
}

// CostLine is the monthly cost of a project.
type CostLine struct {
	ProjectID string
	Project   string
	Workers   int
	Total     workledger.Money
}

// NewDashboard creates the dashboard view of d.
func NewDashboard(d workledger.Dashboard, today date.Date) *Dashboard {
	cur := d.Currency
	v := &Dashboard{
		Company:          d.Company,
		Date:             today,
		Projects:         d.Projects,
		Workers:          d.Workers,
		ActiveWorkers:    d.ActiveWorkers,
		TotalMonthlyCost: workledger.M(d.TotalMonthlyCost, cur),
		AverageSalary:    workledger.M(d.AverageSalary, cur),
		HighestSalary:    workledger.M(d.HighestSalary, cur),
		TotalBudget:      workledger.M(d.TotalBudget, cur),
		UniqueSkills:     d.UniqueSkills,
		Events:           newEventLines(d.UpcomingEvents, today),
		Recent:           newProjectLines(d.RecentProjects, cur),
		Costs:            newCostLines(d.ProjectCosts, cur),
	}
	for _, st := range workledger.ProjectStatuses {
		v.Statuses = append(v.Statuses, StatusCount{Status: st, Count: d.ProjectsByStatus[st]})
	}
	return v
}

func newCostLines(costs []workledger.ProjectCost, cur string) []CostLine {
	lines := make([]CostLine, 0, len(costs))
	for _, c := range costs {
		lines = append(lines, CostLine{
			ProjectID: c.ProjectID,
			Project:   c.ProjectName,
			Workers:   len(c.Workers),
			Total:     workledger.M(c.TotalCost, cur),
		})
	}
	return lines
}

// Settings are the preferences of the company.
type Settings struct {
	workledger.Settings
	// Signed is the signed-in user, empty when signed out.
	Signed string
}

// NewSettings creates the settings view.
func NewSettings(s workledger.Settings, signed string) *Settings {
	return &Settings{Settings: s, Signed: signed}
}
