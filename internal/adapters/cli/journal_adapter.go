package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/timeclock/internal/ports/primary"
)

// JournalAdapter renders punch journal entries.
type JournalAdapter struct {
	service primary.JournalService
	out     io.Writer
}

// NewJournalAdapter creates a new JournalAdapter with the given service.
func NewJournalAdapter(service primary.JournalService, out io.Writer) *JournalAdapter {
	return &JournalAdapter{
		service: service,
		out:     out,
	}
}

// List prints the most recent journal entries, newest first.
func (a *JournalAdapter) List(ctx context.Context, filters primary.JournalFilters) error {
	entries, err := a.service.ListEntries(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list journal entries: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No journal entries found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %-12s %-12s %-12s %-10s %-10s %s\n",
		"RECORDED", "EMPLOYEE", "ACTOR", "ACTION", "DATE", "TIME", "DETAIL")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────────")
	for _, e := range entries {
		action := e.Action
		if e.Adjusted {
			action = color.New(color.FgYellow).Sprint(e.Action + "*")
		}
		fmt.Fprintf(a.out, "%-20s %-12s %-12s %-12s %-10s %-10s %s\n",
			e.RecordedAt, e.EmployeeID, e.ActorID, action, e.WorkDate, e.PunchTime, e.Detail)
	}
	fmt.Fprintln(a.out)
	return nil
}
