// Package ctxutil carries per-invocation values through context.Context.
package ctxutil

import (
	"context"
)

type ctxKey string

const (
	runIDKey ctxKey = "run_id"
	opKey    ctxKey = "operation"
)

// WithRunID tags ctx with the id of the current command invocation.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx returns the run id, or "" if none was set.
func RunIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// WithOperation stores the name of the top-level operation being run,
// e.g. "import-deck".
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, opKey, op)
}

// OperationFromCtx returns the operation name, or "" if none was set.
func OperationFromCtx(ctx context.Context) string {
	op, _ := ctx.Value(opKey).(string)
	return op
}
