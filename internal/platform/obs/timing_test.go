package obs

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := WithRunID(context.Background(), "r-123")
	if got := RunID(ctx); got != "r-123" {
		t.Errorf("RunID = %q, want r-123", got)
	}

	if got := RunID(context.Background()); got != "" {
		t.Errorf("RunID on bare context = %q, want empty", got)
	}
}

func TestTimeHandlesBothOutcomes(t *testing.T) {
	log := zap.NewNop().Sugar()
	ctx := WithRunID(context.Background(), "r-1")

	done := Time(ctx, log, "test.op")
	done(nil)

	err := errors.New("boom")
	done = Time(ctx, log, "test.op")
	done(&err)
}
