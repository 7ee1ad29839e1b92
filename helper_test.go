package workledger

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/etnz/workledger/date"
	"github.com/etnz/workledger/storage"
	"github.com/shopspring/decimal"
)

// today is the fixed date of every test store.
var today = date.New(2026, time.October, 16)

// seqIDs returns an id generator producing "p-1", "w-2", "m-3"...
func seqIDs() func(string) string {
	n := 0
	return func(prefix string) string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func testOptions() []Option {
	return []Option{WithClock(func() date.Date { return today }), WithIDs(seqIDs())}
}

// newTestStore returns a store holding the demo data set, persisted in memory.
func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	s, err := Open(mem, testOptions()...)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s, mem
}

// newEmptyStore returns a store without any project or worker, persisted in
// memory.
func newEmptyStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	s, mem := newTestStore(t)
	if err := s.Restore(Backup{}); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	return s, mem
}

// failingBackend refuses every write.
type failingBackend struct{ storage.Backend }

func (failingBackend) Put(...storage.Entry) error { return errors.New("disk full") }

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func ptr[T any](v T) *T { return &v }
