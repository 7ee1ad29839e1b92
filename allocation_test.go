package workledger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitPercent(t *testing.T) {
	testCases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 100},
		{2, 50},
		{3, 33},
		{6, 17},
		{7, 14},
		{8, 13}, // 12.5 rounds away from zero
		{200, 1},
	}
	for _, tc := range testCases {
		if got := splitPercent(tc.n); got != tc.want {
			t.Errorf("splitPercent(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestComputeSalaryData(t *testing.T) {
	projects := []Project{
		{ID: "a", Name: "Alpha", AssignedWorkers: []string{"x", "y", "z"}},
		{ID: "b", Name: "Beta", AssignedWorkers: []string{}},
	}
	workers := []Worker{
		{ID: "x", Name: "Xavier", Role: "Dev", MonthlySalary: dec(9000), AssignedProjects: []string{"a", "b", "gone"}},
		{ID: "y", Name: "Yara", Role: "Ops", MonthlySalary: dec(4000)},
	}
	want := []SalaryData{
		{
			WorkerID: "x", WorkerName: "Xavier", Role: "Dev", Salary: dec(9000),
			Projects: []ProjectAllocation{
				{ProjectID: "a", ProjectName: "Alpha", Allocation: 33},
				// no headcount: no division by zero.
				{ProjectID: "b", ProjectName: "Beta", Allocation: 0},
			},
		},
		{WorkerID: "y", WorkerName: "Yara", Role: "Ops", Salary: dec(4000), Projects: []ProjectAllocation{}},
	}
	got := ComputeSalaryData(projects, workers)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeSalaryData() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeProjectCosts(t *testing.T) {
	projects := []Project{
		{ID: "a", Name: "Alpha", AssignedWorkers: []string{"x", "y", "gone"}},
		{ID: "b", Name: "Beta", AssignedWorkers: []string{"x", "y"}},
	}
	workers := []Worker{
		{ID: "x", Name: "Xavier", MonthlySalary: dec(9000), AssignedProjects: []string{"a", "b"}},
		{ID: "y", Name: "Yara", MonthlySalary: dec(1001), AssignedProjects: []string{"a", "b"}},
	}
	got := ComputeProjectCosts(projects, workers)
	want := []ProjectCost{
		{
			ProjectID: "a", ProjectName: "Alpha", TotalCost: dec(5001),
			Workers: []WorkerCost{
				{WorkerID: "x", WorkerName: "Xavier", Cost: dec(4500)},
				// 500.5 is rounded before summing.
				{WorkerID: "y", WorkerName: "Yara", Cost: dec(501)},
			},
		},
		{
			ProjectID: "b", ProjectName: "Beta", TotalCost: dec(5001),
			Workers: []WorkerCost{
				{WorkerID: "x", WorkerName: "Xavier", Cost: dec(4500)},
				{WorkerID: "y", WorkerName: "Yara", Cost: dec(501)},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeProjectCosts() mismatch (-want +got):\n%s", diff)
	}

	// the payroll counts full salaries, not the split costs.
	if total := ComputeTotalMonthlyCost(workers); !total.Equal(dec(10001)) {
		t.Errorf("ComputeTotalMonthlyCost() = %v, want 10001", total)
	}
}

func TestWorkerWithoutProjects(t *testing.T) {
	// a dangling reference from a project to a worker with no project.
	projects := []Project{{ID: "a", Name: "Alpha", AssignedWorkers: []string{"x"}}}
	workers := []Worker{{ID: "x", Name: "Xavier", MonthlySalary: dec(9000)}}
	got := ComputeProjectCosts(projects, workers)
	if len(got) != 1 || len(got[0].Workers) != 1 || !got[0].Workers[0].Cost.IsZero() {
		t.Errorf("ComputeProjectCosts() = %+v, want a zero cost", got)
	}
}

func TestStore_Allocation(t *testing.T) {
	s, _ := newTestStore(t)

	costs := make(map[string]string)
	for _, c := range s.ProjectCosts() {
		costs[c.ProjectID] = c.TotalCost.String()
	}
	want := map[string]string{
		"p1": "12750", // 4250 + 4600 + 3900
		"p2": "17350", // 4600 + 8000 + 4750
		"p3": "11450", // 4250 + 7200
		"p4": "8650",  // 3900 + 4750
	}
	if diff := cmp.Diff(want, costs); diff != "" {
		t.Errorf("ProjectCosts() mismatch (-want +got):\n%s", diff)
	}

	if total := s.TotalMonthlyCost(); !total.Equal(dec(50200)) {
		t.Errorf("TotalMonthlyCost() = %v, want 50200", total)
	}

	for _, sd := range s.SalaryData() {
		if sd.WorkerID != "w1" {
			continue
		}
		want := []ProjectAllocation{
			{ProjectID: "p1", ProjectName: "E-Commerce Platform", Allocation: 33},
			{ProjectID: "p3", ProjectName: "HR Management System", Allocation: 50},
		}
		if diff := cmp.Diff(want, sd.Projects); diff != "" {
			t.Errorf("SalaryData(w1) mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestEndToEnd(t *testing.T) {
	s, _ := newEmptyStore(t)
	p1, err := s.AddProject(ProjectDraft{Name: "P1", Status: StatusActive, AssignedWorkers: []string{}, Budget: ptr(dec(100000))})
	if err != nil {
		t.Fatal(err)
	}
	w1, err := s.AddWorker(WorkerDraft{Name: "W1", Email: "w1@example.com", Role: "Dev", MonthlySalary: dec(6000), AssignedProjects: []string{}, Status: WorkerActive})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateProject(p1.ID, ProjectUpdate{AssignedWorkers: []string{w1.ID}}); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateWorker(w1.ID, WorkerUpdate{AssignedProjects: []string{p1.ID}}); err != nil {
		t.Fatal(err)
	}
	want := []ProjectCost{{
		ProjectID:   p1.ID,
		ProjectName: "P1",
		TotalCost:   dec(6000),
		Workers:     []WorkerCost{{WorkerID: w1.ID, WorkerName: "W1", Cost: dec(6000)}},
	}}
	if diff := cmp.Diff(want, s.ProjectCosts()); diff != "" {
		t.Errorf("ProjectCosts() mismatch (-want +got):\n%s", diff)
	}
}
