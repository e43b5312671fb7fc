package errutil

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
)

// HandleError reports an unexpected error to Sentry and the error log. Expected
// failures (not found, validation and so on) should be logged by the caller
// instead.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	reqID, _ := logging.CtxRequestID(ctx)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("request_id", reqID.String())
		if failure := types.AsFailure(err); failure != nil {
			scope.SetTag("failure_kind", string(failure.Kind))
		}
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"request_id", reqID,
		"sentry.EventID", evID,
	)
}
