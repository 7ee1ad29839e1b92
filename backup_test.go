package workledger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"
)

func TestBackupRestore(t *testing.T) {
	src, _ := newTestStore(t)
	if err := src.UpdateSettings(SettingsUpdate{CompanyName: ptr("Acme")}); err != nil {
		t.Fatal(err)
	}
	at := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(src.Backup(at)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	b, err := DecodeBackup(&buf)
	if err != nil {
		t.Fatalf("DecodeBackup() error = %v", err)
	}
	if !b.ExportedAt.Equal(at) {
		t.Errorf("ExportedAt = %v, want %v", b.ExportedAt, at)
	}

	dst, _ := newEmptyStore(t)
	if err := dst.Restore(b); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if len(dst.Projects()) != 4 || len(dst.Workers()) != 6 {
		t.Errorf("Restore() gave %d projects and %d workers", len(dst.Projects()), len(dst.Workers()))
	}
	if got := dst.Settings().CompanyName; got != "Acme" {
		t.Errorf("CompanyName = %q, want Acme", got)
	}
}

func TestRestore_KeepsSettings(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.ToggleTheme(); err != nil {
		t.Fatal(err)
	}
	// a plain export has no settings.
	if err := s.Restore(Backup{Projects: DefaultProjects()[:1]}); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if s.Settings().Theme != ThemeDark {
		t.Errorf("Restore() without settings changed the theme")
	}
	if len(s.Projects()) != 1 || len(s.Workers()) != 0 {
		t.Errorf("Restore() gave %d projects and %d workers", len(s.Projects()), len(s.Workers()))
	}
}
