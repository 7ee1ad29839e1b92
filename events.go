package workledger

import (
	"fmt"
	"slices"
	"time"

	"github.com/etnz/workledger/date"
)

// UpcomingLimit is the number of events shown by the dashboard widget.
const UpcomingLimit = 5

// CalendarUpcomingLimit is the number of events listed next to the calendar.
const CalendarUpcomingLimit = 6

// EventType tells what an Event stands for.
type EventType string

const (
	DeadlineEvent  EventType = "deadline"
	MilestoneEvent EventType = "milestone"
)

// Event is a dated item of a project, derived from its deadline or one of
// its milestones.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        date.Date `json:"date"`
	Type        EventType `json:"type"`
	ProjectID   string    `json:"projectId"`
	ProjectName string    `json:"projectName"`
	Completed   *bool     `json:"completed,omitempty"` // milestones only
}

// IsCompleted reports whether the event is a completed milestone.
func (e Event) IsCompleted() bool { return e.Completed != nil && *e.Completed }

// projectEvents returns the deadline of p followed by its milestones.
func projectEvents(p Project) []Event {
	var events []Event
	if !p.Deadline.IsZero() {
		events = append(events, Event{
			ID:          "deadline-" + p.ID,
			Title:       p.Name + " Deadline",
			Date:        p.Deadline,
			Type:        DeadlineEvent,
			ProjectID:   p.ID,
			ProjectName: p.Name,
		})
	}
	for _, m := range p.Milestones {
		completed := m.Completed
		events = append(events, Event{
			ID:          m.ID,
			Title:       m.Title,
			Date:        m.DueDate,
			Type:        MilestoneEvent,
			ProjectID:   p.ID,
			ProjectName: p.Name,
			Completed:   &completed,
		})
	}
	return events
}

// AllEvents returns every deadline and milestone of projects, past and
// future, in project order.
func AllEvents(projects []Project) []Event {
	var events []Event
	for _, p := range projects {
		events = append(events, projectEvents(p)...)
	}
	return events
}

// sortAndLimit sorts events by date, keeping the order of same day events,
// and keeps the first limit ones. A limit <= 0 keeps them all.
func sortAndLimit(events []Event, limit int) []Event {
	slices.SortStableFunc(events, func(a, b Event) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		}
		return 0
	})
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events
}

// UpcomingEvents returns the deadlines and open milestones dated after
// today, soonest first, at most limit of them.
func UpcomingEvents(projects []Project, today date.Date, limit int) []Event {
	var events []Event
	for _, e := range AllEvents(projects) {
		if !e.Date.After(today) || e.IsCompleted() {
			continue
		}
		events = append(events, e)
	}
	return sortAndLimit(events, limit)
}

// CalendarUpcoming returns the events dated after today, completed
// milestones included, soonest first, at most limit of them.
func CalendarUpcoming(projects []Project, today date.Date, limit int) []Event {
	var events []Event
	for _, e := range AllEvents(projects) {
		if e.Date.After(today) {
			events = append(events, e)
		}
	}
	return sortAndLimit(events, limit)
}

// Urgency grades how soon an upcoming event is.
type Urgency string

const (
	Urgent Urgency = "urgent" // within 3 days
	Soon   Urgency = "soon"   // within a week
	Later  Urgency = "later"
)

// DaysLeft returns the number of days from today to the event.
func (e Event) DaysLeft(today date.Date) int { return today.DaysUntil(e.Date) }

// Urgency grades the event relative to today.
func (e Event) Urgency(today date.Date) Urgency {
	switch days := e.DaysLeft(today); {
	case days <= 3:
		return Urgent
	case days <= 7:
		return Soon
	default:
		return Later
	}
}

// DaysLabel returns a human label for a number of days ahead.
func DaysLabel(days int) string {
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// CalendarView is the extent of a calendar grid.
type CalendarView int

const (
	MonthView CalendarView = iota
	WeekView
)

func (v CalendarView) String() string {
	if v == WeekView {
		return "week"
	}
	return "month"
}

// ParseCalendarView parses "month" or "week".
func ParseCalendarView(s string) (CalendarView, error) {
	p, err := date.ParsePeriod(s)
	switch {
	case err == nil && p == date.Monthly:
		return MonthView, nil
	case err == nil && p == date.Weekly:
		return WeekView, nil
	}
	return MonthView, fmt.Errorf("unknown calendar view %q, want month or week", s)
}

// CalendarDay is one cell of a calendar grid.
type CalendarDay struct {
	Date    date.Date
	InMonth bool // false for the padding days of a month grid
	Events  []Event
}

// Calendar is a grid of whole weeks starting on Sunday.
type Calendar struct {
	View   CalendarView
	Anchor date.Date
	Days   []CalendarDay
}

// CalendarDays returns the days of the grid shown for anchor: the whole weeks
// covering its month, or the week containing it.
func CalendarDays(anchor date.Date, view CalendarView) date.Range {
	if view == WeekView {
		return date.NewRange(anchor, date.Weekly)
	}
	return date.GridRange(anchor, date.Monthly)
}

// NewCalendar buckets every event of projects into the days of the grid
// shown for anchor.
func NewCalendar(projects []Project, anchor date.Date, view CalendarView) Calendar {
	byDay := make(map[date.Date][]Event)
	for _, e := range AllEvents(projects) {
		byDay[e.Date] = append(byDay[e.Date], e)
	}
	c := Calendar{View: view, Anchor: anchor}
	month := date.NewRange(anchor, date.Monthly)
	for d := range CalendarDays(anchor, view).Days() {
		c.Days = append(c.Days, CalendarDay{
			Date:    d,
			InMonth: view == WeekView || month.Contains(d),
			Events:  byDay[d],
		})
	}
	return c
}

// Weeks splits the grid into rows of 7 days.
func (c Calendar) Weeks() [][]CalendarDay {
	var weeks [][]CalendarDay
	for days := c.Days; len(days) > 0; days = days[min(7, len(days)):] {
		weeks = append(weeks, days[:min(7, len(days))])
	}
	return weeks
}

// Title names the grid, e.g. "October 2026" or "Oct 11 to Oct 17, 2026".
func (c Calendar) Title() string {
	if c.View == WeekView {
		return CalendarDays(c.Anchor, c.View).Name()
	}
	return date.NewRange(c.Anchor, date.Monthly).Name()
}

// Weekdays returns the column names of a calendar grid.
func Weekdays() []string {
	names := make([]string, 7)
	for i := range names {
		names[i] = time.Weekday(i).String()[:3]
	}
	return names
}

// UpcomingEvents returns the next open deadlines and milestones.
func (s *Store) UpcomingEvents(limit int) []Event {
	return UpcomingEvents(s.projects, s.today(), limit)
}

// Calendar returns the calendar grid around anchor.
func (s *Store) Calendar(anchor date.Date, view CalendarView) Calendar {
	return NewCalendar(s.projects, anchor, view)
}

// CalendarUpcoming returns the next events listed next to the calendar.
func (s *Store) CalendarUpcoming(limit int) []Event {
	return CalendarUpcoming(s.projects, s.today(), limit)
}
