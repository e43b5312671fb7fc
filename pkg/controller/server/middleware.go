package server

import (
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/utils/errutil"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
)

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.Default().With(slog.String("request_id", reqID.String()))
		ctx = logging.With(ctx, logger)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("referer", r.Referer()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}

// recoverPanic answers 500 when a handler panics and reports the panic.
func recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rcv := recover()
			if rcv == nil {
				return
			}
			if rcv == http.ErrAbortHandler {
				panic(rcv)
			}

			err := goerr.Wrap(types.Unhandled(fmt.Sprintf("Server error: %v", rcv)), "panic in handler",
				goerr.V("method", r.Method),
				goerr.V("path", r.URL.Path),
			)
			errutil.HandleError(r.Context(), "recovered from panic", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Server error: internal error"})
		}()

		next.ServeHTTP(w, r)
	})
}
