package renderer

import (
	"fmt"

	"github.com/etnz/workledger"
	"github.com/etnz/workledger/date"
)

// EventLine is one dated event of a project.
type EventLine struct {
	ID        string
	Date      date.Date
	Title     string
	Type      workledger.EventType
	Project   string
	Completed bool
	// Due tells when the event is due relative to today, e.g. "Tomorrow".
	Due     string
	Urgency workledger.Urgency
}

func newEventLines(events []workledger.Event, today date.Date) []EventLine {
	lines := make([]EventLine, 0, len(events))
	for _, e := range events {
		due := workledger.DaysLabel(e.DaysLeft(today))
		if e.Date.Before(today) {
			due = fmt.Sprintf("%d days ago", -e.DaysLeft(today))
		}
		lines = append(lines, EventLine{
			ID:        e.ID,
			Date:      e.Date,
			Title:     e.Title,
			Type:      e.Type,
			Project:   e.ProjectName,
			Completed: e.IsCompleted(),
			Due:       due,
			Urgency:   e.Urgency(today),
		})
	}
	return lines
}

// Events is a list of events.
type Events struct {
	Title  string
	Today  date.Date
	Events []EventLine
}

// NewEvents creates the list of events seen from today.
func NewEvents(title string, events []workledger.Event, today date.Date) *Events {
	return &Events{Title: title, Today: today, Events: newEventLines(events, today)}
}

// Calendar is a grid of weeks with the events of each day.
type Calendar struct {
	Title    string
	Weekdays []string
	Weeks    [][]string
	// Events lists the events of the grid, in date order.
	Events   []EventLine
	Upcoming []EventLine
}

// NewCalendar creates the calendar view of c. Today is in bold, days out of
// the month are in italics, and each day shows its number of events.
func NewCalendar(c workledger.Calendar, upcoming []workledger.Event, today date.Date) *Calendar {
	v := &Calendar{
		Title:    c.Title(),
		Weekdays: workledger.Weekdays(),
		Upcoming: newEventLines(upcoming, today),
	}
	for _, week := range c.Weeks() {
		row := make([]string, 0, len(week))
		for _, d := range week {
			row = append(row, dayCell(d, today))
			v.Events = append(v.Events, newEventLines(d.Events, today)...)
		}
		v.Weeks = append(v.Weeks, row)
	}
	return v
}

func dayCell(d workledger.CalendarDay, today date.Date) string {
	s := fmt.Sprint(d.Date.Day())
	switch {
	case d.Date == today:
		s = "**" + s + "**"
	case !d.InMonth:
		s = "_" + s + "_"
	}
	if n := len(d.Events); n > 0 {
		s += fmt.Sprintf(" (%d)", n)
	}
	return s
}
