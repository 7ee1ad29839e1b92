package workledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/workledger/date"
	"github.com/etnz/workledger/storage"
	"go.uber.org/zap"
)

// DefaultTimeline returns the milestones shown for a project whose timeline
// was never edited. Their completion is guessed from the project status.
func DefaultTimeline(p Project) []Milestone {
	end := p.UpdatedAt
	if !p.Deadline.IsZero() {
		end = p.Deadline
	}
	done := p.Status == StatusCompleted
	steps := []struct {
		title     string
		on        date.Date
		completed bool
	}{
		{"Project Kickoff", p.CreatedAt, true},
		{"Requirements Gathering", p.CreatedAt, true},
		{"Design Phase", p.CreatedAt, p.Status != StatusPlanning},
		{"Development Sprint 1", p.UpdatedAt, done || p.Status == StatusActive},
		{"Development Sprint 2", p.UpdatedAt, done},
		{"Testing & QA", end, done},
		{"Deployment", end, done},
	}
	list := make([]Milestone, len(steps))
	for i, s := range steps {
		list[i] = Milestone{
			ID:        fmt.Sprintf("%s-%d", p.ID, i+1),
			Title:     s.title,
			DueDate:   s.on,
			Completed: s.completed,
		}
	}
	return list
}

// Timeline returns the project's milestones in order, or its default
// timeline if it was never edited.
func (p Project) Timeline() []Milestone {
	if p.Milestones == nil {
		return DefaultTimeline(p)
	}
	return slices.Clone(p.Milestones)
}

// Progress returns the share of completed milestones.
func Progress(milestones []Milestone) Percent {
	if len(milestones) == 0 {
		return 0
	}
	done := 0
	for _, m := range milestones {
		if m.Completed {
			done++
		}
	}
	return Percent(float64(done) / float64(len(milestones)) * 100)
}

// Timeline returns the milestones of the project with id, and false if there
// is no such project.
func (s *Store) Timeline(projectID string) ([]Milestone, bool) {
	p, ok := s.Project(projectID)
	if !ok {
		return nil, false
	}
	return p.Timeline(), true
}

// editTimeline replaces the timeline of a project with edit's result. edit
// receives the current timeline, defaults included, and reports whether it
// changed anything.
func (s *Store) editTimeline(projectID string, edit func([]Milestone) ([]Milestone, bool)) error {
	i := s.projectIndex(projectID)
	if i < 0 {
		return nil
	}
	next := s.state.clone()
	p := &next.projects[i]
	milestones, changed := edit(p.Timeline())
	if !changed {
		return nil
	}
	if milestones == nil {
		milestones = []Milestone{}
	}
	p.Milestones = milestones
	p.UpdatedAt = s.today()
	if err := s.commit(next, storage.ProjectsKey); err != nil {
		return err
	}
	s.logger.Debug("timeline updated", zap.String("project", projectID), zap.Int("milestones", len(milestones)))
	return nil
}

func milestoneIndex(list []Milestone, id string) int {
	return slices.IndexFunc(list, func(m Milestone) bool { return m.ID == id })
}

// ToggleMilestoneComplete flips the completion of a milestone. It is ignored
// if either id is unknown.
func (s *Store) ToggleMilestoneComplete(projectID, milestoneID string) error {
	return s.editTimeline(projectID, func(list []Milestone) ([]Milestone, bool) {
		i := milestoneIndex(list, milestoneID)
		if i < 0 {
			return nil, false
		}
		list[i].Completed = !list[i].Completed
		return list, true
	})
}

// ReorderMilestones sorts the timeline in the order of ids. Unknown ids are
// ignored, and milestones missing from ids keep their relative order after
// the listed ones.
func (s *Store) ReorderMilestones(projectID string, ids []string) error {
	return s.editTimeline(projectID, func(list []Milestone) ([]Milestone, bool) {
		ordered := make([]Milestone, 0, len(list))
		seen := make(map[string]bool)
		for _, id := range ids {
			if i := milestoneIndex(list, id); i >= 0 && !seen[id] {
				ordered = append(ordered, list[i])
				seen[id] = true
			}
		}
		for _, m := range list {
			if !seen[m.ID] {
				ordered = append(ordered, m)
			}
		}
		return ordered, true
	})
}

// AddMilestone appends a new open milestone to the timeline and returns it.
// The zero Milestone is returned for an unknown project.
func (s *Store) AddMilestone(projectID, title string, due date.Date) (Milestone, error) {
	m := Milestone{ID: s.newID("m"), Title: title, DueDate: due}
	added := false
	err := s.editTimeline(projectID, func(list []Milestone) ([]Milestone, bool) {
		added = true
		return append(list, m), true
	})
	if err != nil || !added {
		return Milestone{}, err
	}
	return m, nil
}

// DeleteMilestone removes a milestone from the timeline.
func (s *Store) DeleteMilestone(projectID, milestoneID string) error {
	return s.editTimeline(projectID, func(list []Milestone) ([]Milestone, bool) {
		i := milestoneIndex(list, milestoneID)
		if i < 0 {
			return nil, false
		}
		return slices.Delete(list, i, i+1), true
	})
}

// MilestoneUpdate holds the milestone fields to change. Nil fields are left
// unchanged.
type MilestoneUpdate struct {
	Title     *string
	DueDate   *date.Date
	Completed *bool
}

// UpdateMilestone merges u into a milestone of the timeline.
func (s *Store) UpdateMilestone(projectID, milestoneID string, u MilestoneUpdate) error {
	return s.editTimeline(projectID, func(list []Milestone) ([]Milestone, bool) {
		i := milestoneIndex(list, milestoneID)
		if i < 0 {
			return nil, false
		}
		if u.Title != nil {
			list[i].Title = *u.Title
		}
		if u.DueDate != nil {
			list[i].DueDate = *u.DueDate
		}
		if u.Completed != nil {
			list[i].Completed = *u.Completed
		}
		return list, true
	})
}

// legacyMilestone is a timeline entry as stored by older data sets.
type legacyMilestone struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      date.Date `json:"date"`
	Completed bool      `json:"completed"`
}

// MigrateMilestones folds the timelines stored apart from the projects by
// older data sets into the projects themselves, then deletes them. Stored
// timeline entries come first, followed by the project's own milestones not
// already listed. Timelines of unknown projects are dropped. It returns the
// number of projects updated.
func (s *Store) MigrateMilestones() (int, error) {
	if s.backend == nil {
		return 0, nil
	}
	data, err := s.backend.Get(storage.MilestonesKey)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("could not load timelines: %w", err)
	}
	var legacy map[string][]legacyMilestone
	if err := json.Unmarshal(data, &legacy); err != nil {
		return 0, fmt.Errorf("could not decode timelines: %w", err)
	}

	next := s.state.clone()
	updated := 0
	for pid, entries := range legacy {
		i := next.projectIndex(pid)
		if i < 0 {
			s.logger.Info("dropping timeline of unknown project", zap.String("project", pid))
			continue
		}
		p := &next.projects[i]
		merged := make([]Milestone, 0, len(entries)+len(p.Milestones))
		for _, e := range entries {
			merged = append(merged, Milestone{ID: e.ID, Title: e.Title, DueDate: e.Date, Completed: e.Completed})
		}
		for _, m := range p.Milestones {
			if milestoneIndex(merged, m.ID) < 0 {
				merged = append(merged, m)
			}
		}
		p.Milestones = merged
		updated++
	}
	if updated > 0 {
		if err := s.commit(next, storage.ProjectsKey); err != nil {
			return 0, err
		}
	}
	if err := s.backend.Delete(storage.MilestonesKey); err != nil {
		return updated, err
	}
	s.logger.Info("timelines migrated", zap.Int("projects", updated))
	return updated, nil
}
