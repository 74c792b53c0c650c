package app

import (
	"context"
	"fmt"
	"log"
	"sync"

	corepunch "github.com/example/timeclock/internal/core/punch"
	"github.com/example/timeclock/internal/ctxutil"
	"github.com/example/timeclock/internal/ports/primary"
	"github.com/example/timeclock/internal/ports/secondary"
)

// Ledger couples the record store with its backing store and journal.
// All services share one Ledger so every mutation runs through commit.
type Ledger struct {
	mu      sync.Mutex
	store   secondary.RecordStore
	gateway secondary.SnapshotGateway
	journal secondary.JournalRepository
}

// NewLedger creates a Ledger. journal may be nil.
func NewLedger(store secondary.RecordStore, gateway secondary.SnapshotGateway, journal secondary.JournalRepository) *Ledger {
	return &Ledger{
		store:   store,
		gateway: gateway,
		journal: journal,
	}
}

// commit runs validate-and-mutate, then saves the full record set.
// If either step fails the store is restored to its state before the call.
func (l *Ledger) commit(ctx context.Context, mutate func() error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	before := l.store.Snapshot()
	if err := mutate(); err != nil {
		l.store.Restore(before)
		return err
	}

	if err := l.gateway.Save(ctx, l.store.Snapshot()); err != nil {
		l.store.Restore(before)
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// read runs fn while holding the ledger lock.
func (l *Ledger) read(fn func() error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn()
}

// record appends an entry to the journal. The actor comes from the context.
// Journal failures never undo a committed mutation.
func (l *Ledger) record(ctx context.Context, entry *secondary.JournalRecord) {
	if l.journal == nil {
		return
	}
	if entry.ActorID == "" {
		entry.ActorID, _ = ctxutil.Actor(ctx)
	}
	if err := l.journal.Append(ctx, entry); err != nil {
		log.Printf("Warning: could not journal %s for employee %s: %v", entry.Action, entry.EmployeeID, err)
	}
}

// statusOf derives the employee's status from the shifts in the store.
// Must be called while holding the ledger lock.
func (l *Ledger) statusOf(empID string) (corepunch.Status, error) {
	return secondary.StatusOf(l.store.ShiftsFor(empID))
}

// recordToEmployee converts a record and its derived status to the port type.
func recordToEmployee(r *secondary.EmployeeRecord, status corepunch.Status) *primary.Employee {
	available := corepunch.AvailableActions(status)
	actions := make([]string, len(available))
	for i, a := range available {
		actions[i] = string(a)
	}

	return &primary.Employee{
		ID:            r.ID,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		IsAdmin:       r.IsAdmin,
		ShiftActive:   status.ShiftActive,
		OnBreak:       status.OnBreak,
		AtLunch:       status.AtLunch,
		OpenShiftDate: status.OpenShiftDate,
		State:         string(status.State()),
		Available:     actions,
	}
}
