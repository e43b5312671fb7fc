package safe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/relnote/pkg/utils/logging"
)

// drainLimit bounds how much of an unread response body is discarded so that
// the connection can go back to the pool.
const drainLimit = 64 * 1024

// Close closes the resource and logs error if any
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.From(ctx).Warn("Fail to close resource", slog.Any("error", err))
	}
}

// CloseBody discards the rest of an HTTP response body and closes it.
func CloseBody(ctx context.Context, body io.ReadCloser) {
	if body == nil {
		return
	}
	if _, err := io.Copy(io.Discard, io.LimitReader(body, drainLimit)); err != nil {
		logging.From(ctx).Debug("Fail to drain response body", slog.Any("error", err))
	}
	Close(ctx, body)
}

// Remove removes the file and logs error if any
func Remove(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.From(ctx).Warn("Fail to remove file", slog.Any("error", err), slog.String("path", path))
	}
}
