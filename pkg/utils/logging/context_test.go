package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
)

func TestLoggerInContext(t *testing.T) {
	t.Run("bound logger receives records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		ctx := logging.With(context.Background(), logger)

		logging.From(ctx).Info("fetching milestones", slog.String("repo", "octo/hello"))
		gt.V(t, logging.From(ctx)).Equal(logger)
		gt.True(t, strings.Contains(buf.String(), `"repo":"octo/hello"`))
	})

	t.Run("unbound context falls back to default logger", func(t *testing.T) {
		got := logging.From(context.Background())
		gt.V(t, got.Handler()).Equal(logging.Default().Handler())
	})

	t.Run("inner binding shadows outer", func(t *testing.T) {
		outer := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		inner := outer.With(slog.String("request_id", "r-1"))

		ctx := logging.With(context.Background(), outer)
		child := logging.With(ctx, inner)

		gt.V(t, logging.From(child)).Equal(inner)
		gt.V(t, logging.From(ctx)).Equal(outer)
	})
}

func TestCtxRequestID(t *testing.T) {
	t.Run("issues an id once and keeps it", func(t *testing.T) {
		first, ctx := logging.CtxRequestID(context.Background())
		gt.V(t, first.String()).NotEqual("")

		again, _ := logging.CtxRequestID(ctx)
		gt.V(t, again).Equal(first)
	})

	t.Run("separate requests get separate ids", func(t *testing.T) {
		a, _ := logging.CtxRequestID(context.Background())
		b, _ := logging.CtxRequestID(context.Background())
		gt.V(t, a).NotEqual(b)
	})
}

func TestCtxTime(t *testing.T) {
	t.Run("wall clock without override", func(t *testing.T) {
		before := time.Now()
		got := logging.CtxTime(context.Background())
		gt.False(t, got.Before(before))
	})

	t.Run("override is consulted on every call", func(t *testing.T) {
		calls := 0
		base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		ctx := logging.CtxWithTime(context.Background(), func() time.Time {
			calls++
			return base.Add(time.Duration(calls) * time.Second)
		})

		gt.V(t, logging.CtxTime(ctx).Unix()).Equal(base.Unix() + 1)
		gt.V(t, logging.CtxTime(ctx).Unix()).Equal(base.Unix() + 2)
		gt.V(t, calls).Equal(2)
	})
}
