package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts sheet and load_id from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if sheet := GetSheet(ctx); sheet != "" {
		e.Str("sheet", sheet)
	}

	if id := GetLoadID(ctx); id != 0 {
		e.Uint64("load_id", id)
	}
}
