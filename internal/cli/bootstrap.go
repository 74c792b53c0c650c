// Package cli provides CLI commands for the time clock.
package cli

import (
	gocontext "context"

	"github.com/example/timeclock/internal/ctxutil"
	"github.com/example/timeclock/internal/wire"
)

// globalActorID stores the --as employee for the current CLI invocation.
// Set once at startup by Bootstrap().
var globalActorID string

// Bootstrap records the working directory and acting employee.
// Should be called once at CLI startup in PersistentPreRun.
func Bootstrap(dir, actorID string) {
	wire.Configure(dir)
	globalActorID = actorID
}

// GetActorID returns the acting employee from CLI startup.
// Returns empty string when no --as flag was given.
func GetActorID() string {
	return globalActorID
}

// NewContext creates a context.Background() with the acting employee embedded.
// CLI commands should use this instead of context.Background() directly.
func NewContext() gocontext.Context {
	return ctxutil.WithActor(gocontext.Background(), globalActorID)
}
