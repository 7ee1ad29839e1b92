package workledger

import (
	"slices"
	"testing"
	"time"

	"github.com/etnz/workledger/date"
)

func eventIDs(events []Event) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}

// eventProjects are two projects with events around today (2026-10-16).
func eventProjects() []Project {
	return []Project{
		{
			ID:       "a",
			Name:     "Alpha",
			Deadline: today.Add(-1),
			Milestones: []Milestone{
				{ID: "a-done", Title: "Done", DueDate: today.Add(2), Completed: true},
				{ID: "a-today", Title: "Due today", DueDate: today},
				{ID: "a-next", Title: "Next", DueDate: today.Add(1)},
				{ID: "a-late", Title: "Late", DueDate: today.Add(30)},
			},
		},
		{
			ID:       "b",
			Name:     "Beta",
			Deadline: today.Add(10),
			Milestones: []Milestone{
				{ID: "b-1", Title: "One", DueDate: today.Add(3)},
				{ID: "b-2", Title: "Two", DueDate: today.Add(3)},
				{ID: "b-3", Title: "Three", DueDate: today.Add(5)},
			},
		},
	}
}

func TestUpcomingEvents(t *testing.T) {
	testCases := []struct {
		name  string
		limit int
		want  []string
	}{
		{
			name:  "widget",
			limit: UpcomingLimit,
			want:  []string{"a-next", "b-1", "b-2", "b-3", "deadline-b"},
		},
		{
			name:  "unlimited",
			limit: 0,
			want:  []string{"a-next", "b-1", "b-2", "b-3", "deadline-b", "a-late"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := eventIDs(UpcomingEvents(eventProjects(), today, tc.limit))
			if !slices.Equal(got, tc.want) {
				t.Errorf("UpcomingEvents() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUpcomingEvents_Filtering(t *testing.T) {
	events := UpcomingEvents(eventProjects(), today, 0)
	for _, e := range events {
		switch e.ID {
		case "deadline-a":
			t.Errorf("past deadline listed: %+v", e)
		case "a-done":
			t.Errorf("completed milestone listed: %+v", e)
		case "a-today":
			t.Errorf("milestone due today listed: %+v", e)
		}
	}
	for _, e := range events {
		switch e.Type {
		case DeadlineEvent:
			if e.Completed != nil {
				t.Errorf("deadline %s has a completion flag", e.ID)
			}
			if e.Title != "Beta Deadline" {
				t.Errorf("deadline title = %q, want %q", e.Title, "Beta Deadline")
			}
		case MilestoneEvent:
			if e.Completed == nil || *e.Completed {
				t.Errorf("milestone %s completion = %v, want false", e.ID, e.Completed)
			}
		}
	}
}

func TestCalendarUpcoming(t *testing.T) {
	got := eventIDs(CalendarUpcoming(eventProjects(), today, CalendarUpcomingLimit))
	// completed milestones are part of the calendar.
	want := []string{"a-next", "a-done", "b-1", "b-2", "b-3", "deadline-b"}
	if !slices.Equal(got, want) {
		t.Errorf("CalendarUpcoming() = %v, want %v", got, want)
	}
}

func TestNewCalendar(t *testing.T) {
	c := NewCalendar(eventProjects(), today, MonthView)
	if len(c.Days) != 35 {
		t.Fatalf("len(Days) = %d, want 35", len(c.Days))
	}
	if first := c.Days[0]; first.Date != date.New(2026, time.September, 27) || first.InMonth {
		t.Errorf("first day = %v (in month %v), want 2026-09-27 out of month", first.Date, first.InMonth)
	}
	if weeks := c.Weeks(); len(weeks) != 5 || len(weeks[4]) != 7 {
		t.Errorf("Weeks() = %d rows", len(weeks))
	}
	if got, want := c.Title(), "October 2026"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}

	byDay := make(map[date.Date][]string)
	for _, d := range c.Days {
		byDay[d.Date] = eventIDs(d.Events)
	}
	testCases := []struct {
		on   date.Date
		want []string
	}{
		{today.Add(-1), []string{"deadline-a"}},
		{today, []string{"a-today"}},
		{today.Add(2), []string{"a-done"}},
		{today.Add(3), []string{"b-1", "b-2"}},
		{today.Add(4), []string{}},
	}
	for _, tc := range testCases {
		if got := byDay[tc.on]; !slices.Equal(got, tc.want) {
			t.Errorf("events on %v = %v, want %v", tc.on, got, tc.want)
		}
	}
	// the milestone a month ahead is outside the grid.
	for _, d := range c.Days {
		for _, e := range d.Events {
			if e.ID == "a-late" {
				t.Errorf("a-late listed on %v", d.Date)
			}
		}
	}
}

func TestNewCalendar_Week(t *testing.T) {
	c := NewCalendar(eventProjects(), today, WeekView)
	if len(c.Days) != 7 {
		t.Fatalf("len(Days) = %d, want 7", len(c.Days))
	}
	if c.Days[0].Date.Weekday() != time.Sunday {
		t.Errorf("week starts on %v, want Sunday", c.Days[0].Date.Weekday())
	}
	if got, want := c.Title(), "Oct 11 to Oct 17, 2026"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
	n := 0
	for _, d := range c.Days {
		n += len(d.Events)
	}
	// deadline-a, a-today, a-next (17th): the rest is after Saturday 17th.
	if n != 3 {
		t.Errorf("week holds %d events, want 3", n)
	}
}

func TestUrgency(t *testing.T) {
	testCases := []struct {
		days  int
		label string
		want  Urgency
	}{
		{0, "Today", Urgent},
		{1, "Tomorrow", Urgent},
		{3, "3 days", Urgent},
		{4, "4 days", Soon},
		{7, "7 days", Soon},
		{8, "8 days", Later},
	}
	for _, tc := range testCases {
		e := Event{Date: today.Add(tc.days)}
		if got := DaysLabel(e.DaysLeft(today)); got != tc.label {
			t.Errorf("DaysLabel(%d) = %q, want %q", tc.days, got, tc.label)
		}
		if got := e.Urgency(today); got != tc.want {
			t.Errorf("Urgency(+%d) = %q, want %q", tc.days, got, tc.want)
		}
	}
}

func TestParseCalendarView(t *testing.T) {
	if v, err := ParseCalendarView("week"); err != nil || v != WeekView {
		t.Errorf("ParseCalendarView(week) = %v, %v", v, err)
	}
	if v, err := ParseCalendarView("monthly"); err != nil || v != MonthView {
		t.Errorf("ParseCalendarView(monthly) = %v, %v", v, err)
	}
	if _, err := ParseCalendarView("year"); err == nil {
		t.Errorf("ParseCalendarView(year) error = nil, want error")
	}
}
