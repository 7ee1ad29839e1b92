package workledger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/etnz/workledger/storage"
	"go.uber.org/zap"
)

// Backup is a full copy of the store, as exported to a JSON file.
type Backup struct {
	ExportedAt time.Time `json:"exportedAt,omitzero"`
	Projects   []Project `json:"projects"`
	Workers    []Worker  `json:"workers"`
	Settings   *Settings `json:"settings,omitempty"`
}

// Backup returns a copy of the whole store, stamped with at.
func (s *Store) Backup(at time.Time) Backup {
	settings := s.settings
	return Backup{
		ExportedAt: at,
		Projects:   s.Projects(),
		Workers:    s.Workers(),
		Settings:   &settings,
	}
}

// DecodeBackup reads a backup written as JSON.
func DecodeBackup(r io.Reader) (Backup, error) {
	var b Backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Backup{}, fmt.Errorf("could not decode backup: %w", err)
	}
	return b, nil
}

// Restore replaces the projects and workers with the backup's. Settings are
// replaced only if the backup has some.
func (s *Store) Restore(b Backup) error {
	next := state{
		projects: make([]Project, 0, len(b.Projects)),
		workers:  make([]Worker, 0, len(b.Workers)),
		settings: s.settings,
	}
	for _, p := range b.Projects {
		next.projects = append(next.projects, p.clone())
	}
	for _, w := range b.Workers {
		next.workers = append(next.workers, w.clone())
	}
	keys := []string{storage.ProjectsKey, storage.WorkersKey}
	if b.Settings != nil {
		if err := ValidateSettings(*b.Settings); err != nil {
			return fmt.Errorf("invalid settings in backup: %w", err)
		}
		next.settings = *b.Settings
		keys = append(keys, storage.SettingsKey)
	}
	if err := s.commit(next, keys...); err != nil {
		return err
	}
	s.logger.Info("store restored", zap.Int("projects", len(next.projects)), zap.Int("workers", len(next.workers)))
	return nil
}
