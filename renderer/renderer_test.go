package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/workledger"
	"github.com/etnz/workledger/date"
	"github.com/etnz/workledger/storage"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var today = date.New(2026, time.February, 10)

func newTestStore(t *testing.T) *workledger.Store {
	t.Helper()
	s, err := workledger.Open(storage.NewMemory(), workledger.WithClock(func() date.Date { return today }))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s
}

// tables returns the number of tables in the markdown document md.
func tables(md string) int {
	src := []byte(md)
	doc := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))
	n := 0
	ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if _, ok := node.(*east.Table); ok && entering {
			n++
		}
		return ast.WalkContinue, nil
	})
	return n
}

func TestRender(t *testing.T) {
	s := newTestStore(t)
	cur := s.Settings().Currency
	p1, _ := s.Project("p1")
	w1, _ := s.Worker("w1")
	timeline, _ := s.Timeline("p1")
	costs := s.ProjectCosts()
	total := workledger.M(s.TotalMonthlyCost(), cur)

	testCases := []struct {
		name       string
		got        string
		wantTables int
		want       []string
	}{
		{
			name:       "dashboard",
			got:        RenderDashboard(NewDashboard(s.Dashboard(), today)),
			wantTables: 5,
			want:       []string{"# WorkLedger Inc.", "$50,200.00", "$550,000.00", "| active | 2 |", "| 2026-02-15 | MVP Launch | milestone | E-Commerce Platform | 5 days |"},
		},
		{
			name:       "projects",
			got:        RenderProjects(NewProjectList("Projects", s.Projects(), cur)),
			wantTables: 1,
			want:       []string{"| p3 | HR Management System | completed | Vue.js, Laravel, MySQL | 2 | $80,000.00 | - |"},
		},
		{
			name:       "project",
			got:        RenderProject(NewProjectDetail(p1, s.ProjectWorkers("p1"), costs[0], timeline, cur)),
			wantTables: 3,
			want:       []string{"# E-Commerce Platform", "| w1 | Sarah Johnson | Senior Frontend Developer | $4,250.00 |", "| [x] | m1 | Design Phase Complete | 2026-01-20 |", "## Timeline (33%)"},
		},
		{
			name:       "workers",
			got:        RenderWorkers(NewWorkerList("Workers", s.Workers(), cur)),
			wantTables: 1,
			want:       []string{"| w6 | David Brown | UI/UX Designer | on-leave | 1 | $7,200.00 |", "**$50,200.00**"},
		},
		{
			name:       "worker",
			got:        RenderWorker(NewWorkerDetail(w1, s.WorkerProjects("w1"), cur)),
			wantTables: 1,
			want:       []string{"# Sarah Johnson", "* Monthly salary: $8,500.00", "| p3 | HR Management System | completed | 50% |"},
		},
		{
			name:       "salary",
			got:        RenderSalary(NewSalary(s.SalaryData(), total)),
			wantTables: 1,
			want:       []string{"| Sarah Johnson | Senior Frontend Developer | $8,500.00 | E-Commerce Platform 33%, HR Management System 50% |"},
		},
		{
			name:       "costs",
			got:        RenderCosts(NewCosts(costs, total)),
			wantTables: 4,
			want:       []string{"## Mobile Banking App ($17,350.00)", "| James Wilson | $8,000.00 |", "| Lisa Anderson | $4,750.00 |"},
		},
		{
			name:       "events",
			got:        RenderEvents(NewEvents("Upcoming events", s.UpcomingEvents(workledger.UpcomingLimit), today)),
			wantTables: 1,
			want:       []string{"| 2026-02-15 | MVP Launch | milestone | E-Commerce Platform | 5 days |", "| 2026-03-30 | E-Commerce Platform Deadline | deadline |"},
		},
		{
			name:       "calendar",
			got:        RenderCalendar(NewCalendar(s.Calendar(today, workledger.MonthView), s.CalendarUpcoming(workledger.CalendarUpcomingLimit), today)),
			wantTables: 3,
			want:       []string{"# February 2026", "| Sun | Mon | Tue | Wed | Thu | Fri | Sat |", "| **10** |", "| 15 (1) |", "| 1 (1) |", "| 28 |"},
		},
		{
			name:       "settings",
			got:        RenderSettings(NewSettings(s.Settings(), "")),
			wantTables: 1,
			want:       []string{"| Currency | USD |", "| Theme | light |"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if strings.HasPrefix(tc.got, "error ") {
				t.Fatalf("render failed: %s", tc.got)
			}
			for _, w := range tc.want {
				if !strings.Contains(tc.got, w) {
					t.Errorf("output does not contain %q:\n%s", w, tc.got)
				}
			}
			if got := tables(tc.got); got != tc.wantTables {
				t.Errorf("output has %d tables, want %d:\n%s", got, tc.wantTables, tc.got)
			}
		})
	}
}

func TestRender_Empty(t *testing.T) {
	got := RenderProjects(NewProjectList("Projects", nil, "USD"))
	if !strings.Contains(got, "No projects.") {
		t.Errorf("RenderProjects(nil) = %q", got)
	}
	got = RenderEvents(NewEvents("Upcoming events", nil, today))
	if !strings.Contains(got, "No events.") {
		t.Errorf("RenderEvents(nil) = %q", got)
	}
}

func TestCell(t *testing.T) {
	if got, want := cell("a|b\nc"), `a\|b c`; got != want {
		t.Errorf("cell() = %q, want %q", got, want)
	}
}

func TestNewCalendar_Padding(t *testing.T) {
	s := newTestStore(t)
	march := date.New(2026, time.March, 1)
	c := NewCalendar(s.Calendar(march, workledger.MonthView), nil, today)
	if len(c.Weeks) != 5 {
		t.Fatalf("March 2026 has %d weeks, want 5", len(c.Weeks))
	}
	// the grid ends on Saturday April 4.
	if got, want := c.Weeks[4][6], "_4_"; got != want {
		t.Errorf("last cell = %q, want %q", got, want)
	}
	if got, want := c.Weeks[0][0], "1 (1)"; got != want {
		t.Errorf("first cell = %q, want %q", got, want)
	}
}
