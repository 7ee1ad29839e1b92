package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/workledger"
	"github.com/etnz/workledger/date"
	"github.com/etnz/workledger/renderer"
	"github.com/google/subcommands"
)

type eventsCmd struct {
	limit int
	done  string
}

func (*eventsCmd) Name() string     { return "events" }
func (*eventsCmd) Synopsis() string { return "list the next deadlines and milestones" }
func (*eventsCmd) Usage() string {
	return `wl events [-n <count>] [-done <milestone id>]

  Lists the next deadlines and open milestones. With -done, marks a milestone
  as completed first, which requires an administrator.
`
}

func (c *eventsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", workledger.UpcomingLimit, "Number of events to list, 0 for all.")
	f.StringVar(&c.done, "done", "", "Complete this milestone.")
}

func (c *eventsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()

	if c.done != "" {
		if err := a.requireAdmin(); err != nil {
			return fail("%v", err)
		}
		var milestone *workledger.Event
		for _, e := range workledger.AllEvents(a.store.Projects()) {
			if e.Type == workledger.MilestoneEvent && e.ID == c.done {
				milestone = &e
			}
		}
		if milestone == nil {
			return fail("no milestone %q", c.done)
		}
		if milestone.IsCompleted() {
			return fail("milestone %q is already completed", c.done)
		}
		projectID := milestone.ProjectID
		if err := a.store.ToggleMilestoneComplete(projectID, c.done); err != nil {
			return fail("%v", err)
		}
	}
	events := a.store.UpcomingEvents(c.limit)
	a.printMarkdown(renderer.RenderEvents(renderer.NewEvents("Upcoming events", events, a.store.Today())))
	return subcommands.ExitSuccess
}

type calendarCmd struct {
	view string
	date string
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "show the deadlines and milestones of a month or a week" }
func (*calendarCmd) Usage() string {
	return `wl calendar [-view month|week] [-d <date>]

  Shows the calendar of the month, or of the week, containing the date, with
  the events of each day and the next events.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", "month", "Calendar view: month or week.")
	f.StringVar(&c.date, "d", "today", "A date in the month or week to show.")
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := workledger.ParseCalendarView(c.view)
	if err != nil {
		return usage("%v", err)
	}
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()

	today := a.store.Today()
	anchor, err := date.ParseFrom(c.date, today)
	if err != nil {
		return usage("invalid -d: %v", err)
	}
	cal := a.store.Calendar(anchor, view)
	upcoming := a.store.CalendarUpcoming(workledger.CalendarUpcomingLimit)
	a.printMarkdown(renderer.RenderCalendar(renderer.NewCalendar(cal, upcoming, today)))
	return subcommands.ExitSuccess
}

type timelineCmd struct {
	add   string
	due   string
	done  string
	del   string
	edit  string
	title string
	order listFlag
}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "show or edit the milestones of a project" }
func (*timelineCmd) Usage() string {
	return `wl timeline [-add <title> -due <date>] [-done <id>] [-delete <id>] [-edit <id> [-title <title>] [-due <date>]] [-order <id,id,...>] <project id>

  Shows the timeline of a project. The flags change it first, which requires
  an administrator. See "wl topic timeline".
`
}

func (c *timelineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Add a milestone with this title.")
	f.StringVar(&c.due, "due", "", "Due date of the added or edited milestone.")
	f.StringVar(&c.done, "done", "", "Toggle the completion of this milestone.")
	f.StringVar(&c.del, "delete", "", "Delete this milestone.")
	f.StringVar(&c.edit, "edit", "", "Edit this milestone with -title and -due.")
	f.StringVar(&c.title, "title", "", "New title of the edited milestone.")
	f.Var(&c.order, "order", "Comma separated milestone ids in their new order.")
}

func (c *timelineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := oneArg(f, "project id")
	if err != nil {
		return usage("%v", err)
	}
	a, err := openApp()
	if err != nil {
		return fail("%v", err)
	}
	defer a.Close()

	p, ok := a.store.Project(id)
	if !ok {
		return fail("no project %q", id)
	}
	set := visited(f)
	if len(set) > 0 {
		if err := a.requireAdmin(); err != nil {
			return fail("%v", err)
		}
		if status := c.apply(a.store, id, set); status != subcommands.ExitSuccess {
			return status
		}
		p, _ = a.store.Project(id)
	}
	milestones, _ := a.store.Timeline(id)
	a.printMarkdown(renderer.RenderTimeline(renderer.NewTimeline(p, milestones)))
	return subcommands.ExitSuccess
}

// apply runs the edits requested by the flags in set.
func (c *timelineCmd) apply(s *workledger.Store, projectID string, set map[string]bool) subcommands.ExitStatus {
	today := s.Today()
	due, err := parseOptionalDate("due", c.due, today)
	if err != nil {
		return usage("%v", err)
	}
	if set["add"] {
		if c.add == "" || due.IsZero() {
			return usage("-add needs a title and a -due date")
		}
		m, err := s.AddMilestone(projectID, c.add, due)
		if err != nil {
			return fail("%v", err)
		}
		fmt.Fprintf(stdout, "Added milestone %s\n", m.ID)
	}
	if set["edit"] {
		var u workledger.MilestoneUpdate
		if set["title"] {
			u.Title = &c.title
		}
		if set["due"] {
			u.DueDate = &due
		}
		if err := s.UpdateMilestone(projectID, c.edit, u); err != nil {
			return fail("%v", err)
		}
	}
	if set["done"] {
		if err := s.ToggleMilestoneComplete(projectID, c.done); err != nil {
			return fail("%v", err)
		}
	}
	if set["delete"] {
		if err := s.DeleteMilestone(projectID, c.del); err != nil {
			return fail("%v", err)
		}
	}
	if set["order"] {
		if err := s.ReorderMilestones(projectID, c.order); err != nil {
			return fail("%v", err)
		}
	}
	return subcommands.ExitSuccess
}
