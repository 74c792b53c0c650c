// Package ctxutil carries the acting employee through a context.
package ctxutil

import "context"

type actorKey struct{}

// WithActor returns a copy of ctx naming the employee performing the
// operation. An empty id leaves ctx unchanged.
func WithActor(ctx context.Context, employeeID string) context.Context {
	if employeeID == "" {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, employeeID)
}

// Actor returns the acting employee's id and whether one was set.
func Actor(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(actorKey{}).(string)
	return id, ok && id != ""
}
