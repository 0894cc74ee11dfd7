package logging

import "context"

type contextKey string

const (
	sheetKey  contextKey = "sheet"
	loadIDKey contextKey = "load_id"
)

// WithSheet adds the sheet name being fetched to the context.
func WithSheet(ctx context.Context, sheet string) context.Context {
	return context.WithValue(ctx, sheetKey, sheet)
}

// WithLoadID adds a load generation to the context. Every refetch gets a new
// one so interleaved log lines can be told apart.
func WithLoadID(ctx context.Context, id uint64) context.Context {
	return context.WithValue(ctx, loadIDKey, id)
}

// GetSheet retrieves the sheet name from the context.
// Returns empty string if not present.
func GetSheet(ctx context.Context) string {
	if s, ok := ctx.Value(sheetKey).(string); ok {
		return s
	}
	return ""
}

// GetLoadID retrieves the load generation from the context.
// Returns 0 if not present.
func GetLoadID(ctx context.Context) uint64 {
	if id, ok := ctx.Value(loadIDKey).(uint64); ok {
		return id
	}
	return 0
}
