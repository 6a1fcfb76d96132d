package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const RunIDKey ctxKey = "run_id"

// WithRunID stamps a run identifier into ctx so every timing line of one
// run can be correlated.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RunIDKey, id)
}

// RunID returns the identifier stamped by WithRunID, or "" when absent.
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(RunIDKey).(string)
	return id
}

// Time reports duration and outcome of one operation when the returned
// func runs:
//
//	defer obs.Time(ctx, log, "geocode.reverse")(&err)
func Time(ctx context.Context, log *zap.SugaredLogger, name string) func(errp *error) {
	start := time.Now()

	runID := RunID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Warnw("op failed", "run_id", runID, "op", name, "dur_ms", dur.Milliseconds(), "err", *errp)
			return
		}
		log.Debugw("op done", "run_id", runID, "op", name, "dur_ms", dur.Milliseconds())
	}
}
