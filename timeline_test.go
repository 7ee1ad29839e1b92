package workledger

import (
	"slices"
	"testing"

	"github.com/etnz/workledger/date"
	"github.com/etnz/workledger/storage"
)

func milestoneIDs(list []Milestone) []string {
	ids := make([]string, len(list))
	for i, m := range list {
		ids[i] = m.ID
	}
	return ids
}

func completions(list []Milestone) []bool {
	flags := make([]bool, len(list))
	for i, m := range list {
		flags[i] = m.Completed
	}
	return flags
}

func TestDefaultTimeline(t *testing.T) {
	testCases := []struct {
		status ProjectStatus
		want   []bool
	}{
		{StatusPlanning, []bool{true, true, false, false, false, false, false}},
		{StatusActive, []bool{true, true, true, true, false, false, false}},
		{StatusOnHold, []bool{true, true, true, false, false, false, false}},
		{StatusCompleted, []bool{true, true, true, true, true, true, true}},
	}
	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			p := Project{ID: "x", Status: tc.status}
			if got := completions(DefaultTimeline(p)); !slices.Equal(got, tc.want) {
				t.Errorf("DefaultTimeline(%s) completions = %v, want %v", tc.status, got, tc.want)
			}
		})
	}
}

func TestDefaultTimeline_Dates(t *testing.T) {
	created, updated, deadline := date.New(2026, 1, 1), date.New(2026, 2, 1), date.New(2026, 6, 1)
	p := Project{ID: "x", CreatedAt: created, UpdatedAt: updated, Deadline: deadline}
	list := DefaultTimeline(p)
	want := []date.Date{created, created, created, updated, updated, deadline, deadline}
	for i, m := range list {
		if m.DueDate != want[i] {
			t.Errorf("milestone %d %q due %v, want %v", i, m.Title, m.DueDate, want[i])
		}
	}
	if got, want := milestoneIDs(list), []string{"x-1", "x-2", "x-3", "x-4", "x-5", "x-6", "x-7"}; !slices.Equal(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
	if list[0].Title != "Project Kickoff" || list[6].Title != "Deployment" {
		t.Errorf("titles = %q..%q", list[0].Title, list[6].Title)
	}

	// without a deadline the last steps fall on the last update.
	p.Deadline = date.Date{}
	list = DefaultTimeline(p)
	if list[5].DueDate != updated || list[6].DueDate != updated {
		t.Errorf("undated testing/deployment = %v/%v, want %v", list[5].DueDate, list[6].DueDate, updated)
	}
}

// newTimelineStore returns a store with one project whose timeline was never
// edited.
func newTimelineStore(t *testing.T) (*Store, *storage.Memory, string) {
	t.Helper()
	s, mem := newEmptyStore(t)
	p, err := s.AddProject(ProjectDraft{Name: "Fresh", Status: StatusActive})
	if err != nil {
		t.Fatal(err)
	}
	return s, mem, p.ID
}

func TestTimeline_DefaultsAreNotPersisted(t *testing.T) {
	s, _, id := newTimelineStore(t)
	list, ok := s.Timeline(id)
	if !ok || len(list) != 7 {
		t.Fatalf("Timeline() = %v, %v; want 7 defaults", list, ok)
	}
	p, _ := s.Project(id)
	if p.Milestones != nil {
		t.Errorf("reading the timeline stored %v", p.Milestones)
	}
	if _, ok := s.Timeline("nope"); ok {
		t.Errorf("Timeline(nope) found")
	}
}

func TestToggleMilestoneComplete_Twice(t *testing.T) {
	s, _ := newTestStore(t)
	before, _ := s.Timeline("p1")
	for range 2 {
		if err := s.ToggleMilestoneComplete("p1", "m2"); err != nil {
			t.Fatalf("ToggleMilestoneComplete() error = %v", err)
		}
	}
	after, _ := s.Timeline("p1")
	if !slices.Equal(completions(after), completions(before)) {
		t.Errorf("toggling twice changed %v into %v", completions(before), completions(after))
	}
	p1, _ := s.Project("p1")
	if p1.UpdatedAt != today {
		t.Errorf("UpdatedAt = %v, want %v", p1.UpdatedAt, today)
	}
}

func TestToggleMilestoneComplete_Default(t *testing.T) {
	s, _, id := newTimelineStore(t)
	if err := s.ToggleMilestoneComplete(id, id+"-5"); err != nil {
		t.Fatal(err)
	}
	p, _ := s.Project(id)
	if len(p.Milestones) != 7 || !p.Milestones[4].Completed {
		t.Errorf("toggling a default milestone stored %v", p.Milestones)
	}
}

func TestAddMilestone(t *testing.T) {
	s, mem, id := newTimelineStore(t)
	due := date.New(2026, 12, 1)
	m, err := s.AddMilestone(id, "Launch", due)
	if err != nil {
		t.Fatalf("AddMilestone() error = %v", err)
	}
	if m.ID != "m-2" || m.Title != "Launch" || m.DueDate != due || m.Completed {
		t.Errorf("AddMilestone() = %+v", m)
	}
	list, _ := s.Timeline(id)
	if len(list) != 8 || list[7].ID != m.ID {
		t.Errorf("Timeline() = %v, want the defaults then %s", milestoneIDs(list), m.ID)
	}

	reloaded, err := Open(mem, testOptions()...)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := reloaded.Timeline(id); !slices.Equal(milestoneIDs(got), milestoneIDs(list)) {
		t.Errorf("reloaded Timeline() = %v, want %v", milestoneIDs(got), milestoneIDs(list))
	}

	if m, err := s.AddMilestone("nope", "x", due); err != nil || m.ID != "" {
		t.Errorf("AddMilestone(nope) = %+v, %v", m, err)
	}
}

func TestReorderMilestones(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.ReorderMilestones("p1", []string{"m3", "unknown", "m1"}); err != nil {
		t.Fatalf("ReorderMilestones() error = %v", err)
	}
	list, _ := s.Timeline("p1")
	if got, want := milestoneIDs(list), []string{"m3", "m1", "m2"}; !slices.Equal(got, want) {
		t.Errorf("Timeline() = %v, want %v", got, want)
	}
}

func TestUpdateAndDeleteMilestone(t *testing.T) {
	s, _ := newTestStore(t)
	due := date.New(2027, 1, 1)
	if err := s.UpdateMilestone("p1", "m2", MilestoneUpdate{Title: ptr("MVP"), DueDate: &due, Completed: ptr(true)}); err != nil {
		t.Fatalf("UpdateMilestone() error = %v", err)
	}
	list, _ := s.Timeline("p1")
	if m := list[1]; m.Title != "MVP" || m.DueDate != due || !m.Completed {
		t.Errorf("updated milestone = %+v", m)
	}

	for _, id := range []string{"m1", "m2", "m3"} {
		if err := s.DeleteMilestone("p1", id); err != nil {
			t.Fatalf("DeleteMilestone(%s) error = %v", id, err)
		}
	}
	// an emptied timeline stays empty.
	list, _ = s.Timeline("p1")
	if list == nil || len(list) != 0 {
		t.Errorf("Timeline() = %v, want empty", list)
	}
}

func TestProgress(t *testing.T) {
	testCases := []struct {
		in   []Milestone
		want Percent
	}{
		{nil, 0},
		{[]Milestone{{Completed: true}, {}}, 50},
		{[]Milestone{{Completed: true}, {}, {}}, 33.3333},
		{DefaultTimeline(Project{Status: StatusCompleted}), 100},
	}
	for _, tc := range testCases {
		if got := Progress(tc.in); !got.Equal(tc.want) {
			t.Errorf("Progress(%v) = %v, want %v", completions(tc.in), got, tc.want)
		}
	}
}

func TestMigrateMilestones(t *testing.T) {
	s, mem := newTestStore(t)
	legacy := `{
		"p1": [{"id":"x1","title":"Kickoff","date":"2024-01-15","completed":true}, {"id":"m2","title":"MVP","date":"2026-02-15","completed":false}],
		"gone": [{"id":"y1","title":"Orphan","date":"2024-01-15","completed":false}]
	}`
	if err := mem.Put(storage.Entry{Key: storage.MilestonesKey, Value: []byte(legacy)}); err != nil {
		t.Fatal(err)
	}
	n, err := s.MigrateMilestones()
	if err != nil {
		t.Fatalf("MigrateMilestones() error = %v", err)
	}
	if n != 1 {
		t.Errorf("MigrateMilestones() = %d, want 1", n)
	}
	list, _ := s.Timeline("p1")
	if got, want := milestoneIDs(list), []string{"x1", "m2", "m1", "m3"}; !slices.Equal(got, want) {
		t.Errorf("Timeline(p1) = %v, want %v", got, want)
	}
	if _, err := mem.Get(storage.MilestonesKey); err != storage.ErrNotFound {
		t.Errorf("legacy timelines not deleted: %v", err)
	}

	// nothing left to migrate.
	if n, err := s.MigrateMilestones(); n != 0 || err != nil {
		t.Errorf("MigrateMilestones() again = %d, %v", n, err)
	}
}
