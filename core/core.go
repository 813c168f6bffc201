// Package core has the orchestration logic for PEP activity reports.
package core

import "context"

// ctxKey is a private type for context keys in this package.
type ctxKey int

// suppressHeaderKey marks a context in which progress headers must not be
// printed, e.g. when serving MCP over stdio.
const suppressHeaderKey ctxKey = iota

// WithSuppressHeader returns a context that silences the progress header.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

func shouldSuppressHeader(ctx context.Context) bool {
	suppress, _ := ctx.Value(suppressHeaderKey).(bool)
	return suppress
}
