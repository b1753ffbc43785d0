package logging_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/mcp-catalog/catsync/pkg/utils/logging"
)

func TestLoggerContext(t *testing.T) {
	t.Run("From returns default logger when not set", func(t *testing.T) {
		gt.V(t, logging.From(context.Background())).Equal(logging.Default())
	})

	t.Run("From returns logger set by With", func(t *testing.T) {
		logger := slog.Default().With("component", "test")
		ctx := logging.With(context.Background(), logger)
		gt.V(t, logging.From(ctx)).Equal(logger)
	})
}

func TestCtxTime(t *testing.T) {
	t.Run("pinned time is returned", func(t *testing.T) {
		fixed := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		ctx := logging.CtxWithTime(context.Background(), func() time.Time { return fixed })
		gt.V(t, logging.CtxTime(ctx)).Equal(fixed)
	})

	t.Run("unpinned context returns wall clock", func(t *testing.T) {
		before := time.Now()
		got := logging.CtxTime(context.Background())
		gt.True(t, !got.Before(before))
	})
}
