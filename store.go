package workledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/etnz/workledger/date"
	"github.com/etnz/workledger/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the single source of truth for projects, workers and settings.
//
// Every mutation persists the records it changed before returning. When
// persistence fails the mutation is discarded and the error returned, so the
// in-memory state always matches the stored one.
//
// A Store is not safe for concurrent use.
type Store struct {
	state
	backend storage.Backend // nil for volatile stores
	logger  *zap.Logger
	today   func() date.Date
	newID   func(prefix string) string
}

// state is the persisted part of a Store.
type state struct {
	projects []Project
	workers  []Worker
	settings Settings
}

// clone returns a deep copy of s.
func (s state) clone() state {
	c := state{
		projects: make([]Project, len(s.projects)),
		workers:  make([]Worker, len(s.workers)),
		settings: s.settings,
	}
	for i, p := range s.projects {
		c.projects[i] = p.clone()
	}
	for i, w := range s.workers {
		c.workers[i] = w.clone()
	}
	return c
}

func (s state) projectIndex(id string) int {
	return slices.IndexFunc(s.projects, func(p Project) bool { return p.ID == id })
}

func (s state) workerIndex(id string) int {
	return slices.IndexFunc(s.workers, func(w Worker) bool { return w.ID == id })
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to trace mutations.
func WithLogger(l *zap.Logger) Option { return func(s *Store) { s.logger = l } }

// WithClock sets the function returning the current date.
func WithClock(today func() date.Date) Option { return func(s *Store) { s.today = today } }

// WithIDs sets the generator of new entity ids. prefix is "p" for projects,
// "w" for workers and "m" for milestones.
func WithIDs(newID func(prefix string) string) Option { return func(s *Store) { s.newID = newID } }

func newID(prefix string) string { return prefix + "-" + uuid.NewString() }

// NewStore returns an empty Store that is not persisted.
func NewStore(opts ...Option) *Store {
	s := &Store{
		state:  state{projects: []Project{}, workers: []Worker{}, settings: DefaultSettings()},
		logger: zap.NewNop(),
		today:  date.Today,
		newID:  newID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the Store persisted in backend. Records that were never saved
// start with the demo data set.
func Open(backend storage.Backend, opts ...Option) (*Store, error) {
	s := NewStore(opts...)
	s.backend = backend

	projects, err := load(backend, storage.ProjectsKey, DecodeProjects, DefaultProjects)
	if err != nil {
		return nil, err
	}
	workers, err := load(backend, storage.WorkersKey, DecodeWorkers, DefaultWorkers)
	if err != nil {
		return nil, err
	}
	settings := DefaultSettings()
	switch data, err := backend.Get(storage.SettingsKey); {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("could not load settings: %w", err)
	default:
		// missing fields keep their default value.
		if err := json.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("could not decode settings: %w", err)
		}
	}
	s.state = state{projects: projects, workers: workers, settings: settings}
	s.logger.Debug("store opened", zap.Int("projects", len(projects)), zap.Int("workers", len(workers)))
	return s, nil
}

func load[T any](backend storage.Backend, key string, decode func(io.Reader) ([]T, error), defaults func() []T) ([]T, error) {
	data, err := backend.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", key, err)
	}
	list, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", key, err)
	}
	return list, nil
}

// Today returns the current date as seen by the store.
func (s *Store) Today() date.Date { return s.today() }

// commit persists the given keys of next, then makes next the current state.
func (s *Store) commit(next state, keys ...string) error {
	if s.backend != nil {
		entries := make([]storage.Entry, 0, len(keys))
		for _, key := range keys {
			var buf bytes.Buffer
			var err error
			switch key {
			case storage.ProjectsKey:
				err = EncodeProjects(&buf, next.projects)
			case storage.WorkersKey:
				err = EncodeWorkers(&buf, next.workers)
			case storage.SettingsKey:
				err = json.NewEncoder(&buf).Encode(next.settings)
			default:
				err = fmt.Errorf("unknown record %q", key)
			}
			if err != nil {
				return fmt.Errorf("could not encode %s: %w", key, err)
			}
			entries = append(entries, storage.Entry{Key: key, Value: buf.Bytes()})
		}
		if err := s.backend.Put(entries...); err != nil {
			s.logger.Error("could not persist", zap.Strings("keys", keys), zap.Error(err))
			return fmt.Errorf("could not save: %w", err)
		}
	}
	s.state = next
	return nil
}

// Projects returns a copy of every project, in storage order.
func (s *Store) Projects() []Project {
	list := make([]Project, len(s.projects))
	for i, p := range s.projects {
		list[i] = p.clone()
	}
	return list
}

// Workers returns a copy of every worker, in storage order.
func (s *Store) Workers() []Worker {
	list := make([]Worker, len(s.workers))
	for i, w := range s.workers {
		list[i] = w.clone()
	}
	return list
}

// Project returns the project with id, and false if there is none.
func (s *Store) Project(id string) (Project, bool) {
	i := s.projectIndex(id)
	if i < 0 {
		return Project{}, false
	}
	return s.projects[i].clone(), true
}

// Worker returns the worker with id, and false if there is none.
func (s *Store) Worker(id string) (Worker, bool) {
	i := s.workerIndex(id)
	if i < 0 {
		return Worker{}, false
	}
	return s.workers[i].clone(), true
}

// AddProject creates a new project from d, created and updated today.
func (s *Store) AddProject(d ProjectDraft) (Project, error) {
	today := s.today()
	p := Project{
		ID:              s.newID("p"),
		Name:            d.Name,
		Description:     d.Description,
		Status:          d.Status,
		Technologies:    nonNil(d.Technologies),
		AssignedWorkers: nonNil(d.AssignedWorkers),
		CreatedAt:       today,
		UpdatedAt:       today,
		Budget:          d.Budget,
		Deadline:        d.Deadline,
		Milestones:      slices.Clone(d.Milestones),
	}
	next := s.state.clone()
	next.projects = append(next.projects, p)
	if err := s.commit(next, storage.ProjectsKey); err != nil {
		return Project{}, err
	}
	s.logger.Debug("project added", zap.String("id", p.ID), zap.String("name", p.Name))
	return p.clone(), nil
}

// UpdateProject merges u into the project with id and marks it updated
// today. Unknown ids are ignored.
func (s *Store) UpdateProject(id string, u ProjectUpdate) error {
	i := s.projectIndex(id)
	if i < 0 {
		return nil
	}
	next := s.state.clone()
	u.apply(&next.projects[i])
	next.projects[i].UpdatedAt = s.today()
	if err := s.commit(next, storage.ProjectsKey); err != nil {
		return err
	}
	s.logger.Debug("project updated", zap.String("id", id))
	return nil
}

// DeleteProject removes the project with id and every worker's reference to
// it. Unknown ids are ignored.
func (s *Store) DeleteProject(id string) error {
	i := s.projectIndex(id)
	if i < 0 {
		return nil
	}
	next := s.state.clone()
	next.projects = slices.Delete(next.projects, i, i+1)
	for j := range next.workers {
		next.workers[j].AssignedProjects = without(next.workers[j].AssignedProjects, id)
	}
	if err := s.commit(next, storage.ProjectsKey, storage.WorkersKey); err != nil {
		return err
	}
	s.logger.Debug("project deleted", zap.String("id", id))
	return nil
}

// AddWorker creates a new worker from d, joined today.
func (s *Store) AddWorker(d WorkerDraft) (Worker, error) {
	w := Worker{
		ID:               s.newID("w"),
		Name:             d.Name,
		Email:            d.Email,
		Role:             d.Role,
		Skills:           nonNil(d.Skills),
		MonthlySalary:    d.MonthlySalary,
		AssignedProjects: nonNil(d.AssignedProjects),
		Avatar:           d.Avatar,
		JoinedAt:         s.today(),
		Status:           d.Status,
	}
	next := s.state.clone()
	next.workers = append(next.workers, w)
	if err := s.commit(next, storage.WorkersKey); err != nil {
		return Worker{}, err
	}
	s.logger.Debug("worker added", zap.String("id", w.ID), zap.String("name", w.Name))
	return w.clone(), nil
}

// UpdateWorker merges u into the worker with id. Unknown ids are ignored.
func (s *Store) UpdateWorker(id string, u WorkerUpdate) error {
	i := s.workerIndex(id)
	if i < 0 {
		return nil
	}
	next := s.state.clone()
	u.apply(&next.workers[i])
	if err := s.commit(next, storage.WorkersKey); err != nil {
		return err
	}
	s.logger.Debug("worker updated", zap.String("id", id))
	return nil
}

// DeleteWorker removes the worker with id and every project's reference to
// it. Unknown ids are ignored.
func (s *Store) DeleteWorker(id string) error {
	i := s.workerIndex(id)
	if i < 0 {
		return nil
	}
	next := s.state.clone()
	next.workers = slices.Delete(next.workers, i, i+1)
	for j := range next.projects {
		next.projects[j].AssignedWorkers = without(next.projects[j].AssignedWorkers, id)
	}
	if err := s.commit(next, storage.ProjectsKey, storage.WorkersKey); err != nil {
		return err
	}
	s.logger.Debug("worker deleted", zap.String("id", id))
	return nil
}

// Assign puts the worker on the project, updating both sides of the
// relation. It is ignored if either id is unknown.
func (s *Store) Assign(projectID, workerID string) error {
	i, j := s.projectIndex(projectID), s.workerIndex(workerID)
	if i < 0 || j < 0 {
		return nil
	}
	next := s.state.clone()
	p, w := &next.projects[i], &next.workers[j]
	if !p.HasWorker(workerID) {
		p.AssignedWorkers = append(p.AssignedWorkers, workerID)
	}
	if !w.HasProject(projectID) {
		w.AssignedProjects = append(w.AssignedProjects, projectID)
	}
	p.UpdatedAt = s.today()
	if err := s.commit(next, storage.ProjectsKey, storage.WorkersKey); err != nil {
		return err
	}
	s.logger.Debug("worker assigned", zap.String("project", projectID), zap.String("worker", workerID))
	return nil
}

// Unassign removes the worker from the project, updating both sides of the
// relation. It is ignored if either id is unknown.
func (s *Store) Unassign(projectID, workerID string) error {
	i, j := s.projectIndex(projectID), s.workerIndex(workerID)
	if i < 0 || j < 0 {
		return nil
	}
	next := s.state.clone()
	p, w := &next.projects[i], &next.workers[j]
	p.AssignedWorkers = without(p.AssignedWorkers, workerID)
	w.AssignedProjects = without(w.AssignedProjects, projectID)
	p.UpdatedAt = s.today()
	if err := s.commit(next, storage.ProjectsKey, storage.WorkersKey); err != nil {
		return err
	}
	s.logger.Debug("worker unassigned", zap.String("project", projectID), zap.String("worker", workerID))
	return nil
}

// ProjectWorkers returns the workers assigned to the project, skipping
// dangling references.
func (s *Store) ProjectWorkers(id string) []Worker {
	p, ok := s.Project(id)
	if !ok {
		return nil
	}
	var list []Worker
	for _, wid := range p.AssignedWorkers {
		if w, ok := s.Worker(wid); ok {
			list = append(list, w)
		}
	}
	return list
}

// ProjectShare is a project a worker is assigned to, with the share of the
// worker's time it gets.
type ProjectShare struct {
	Project Project
	Share   int // percent
}

// WorkerProjects returns the projects the worker is assigned to. The
// worker's time is split evenly between all the projects the worker is
// assigned to, dangling references included.
func (s *Store) WorkerProjects(id string) []ProjectShare {
	w, ok := s.Worker(id)
	if !ok {
		return nil
	}
	share := splitPercent(len(w.AssignedProjects))
	var list []ProjectShare
	for _, pid := range w.AssignedProjects {
		if p, ok := s.Project(pid); ok {
			list = append(list, ProjectShare{Project: p, Share: share})
		}
	}
	return list
}

// Settings returns the current settings.
func (s *Store) Settings() Settings { return s.settings }

// UpdateSettings merges u into the settings.
func (s *Store) UpdateSettings(u SettingsUpdate) error {
	next := s.state.clone()
	u.apply(&next.settings)
	if err := ValidateSettings(next.settings); err != nil {
		return err
	}
	if err := s.commit(next, storage.SettingsKey); err != nil {
		return err
	}
	s.logger.Debug("settings updated")
	return nil
}

// ToggleTheme switches between the light and dark themes.
func (s *Store) ToggleTheme() error {
	theme := ThemeDark
	if s.settings.Theme == ThemeDark {
		theme = ThemeLight
	}
	return s.UpdateSettings(SettingsUpdate{Theme: &theme})
}

// ToggleSidebar collapses or expands the sidebar.
func (s *Store) ToggleSidebar() error {
	collapsed := !s.settings.SidebarCollapsed
	return s.UpdateSettings(SettingsUpdate{SidebarCollapsed: &collapsed})
}

// Reset restores projects, workers and settings to the demo data set.
func (s *Store) Reset() error {
	next := state{projects: DefaultProjects(), workers: DefaultWorkers(), settings: DefaultSettings()}
	if err := s.commit(next, storage.ProjectsKey, storage.WorkersKey, storage.SettingsKey); err != nil {
		return err
	}
	s.logger.Info("store reset to defaults")
	return nil
}

// nonNil returns a copy of list that is never nil.
func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return slices.Clone(list)
}

// without returns list without any occurrence of id.
func without(list []string, id string) []string {
	return slices.DeleteFunc(list, func(x string) bool { return x == id })
}
