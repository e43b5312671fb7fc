package server

import (
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/utils/errutil"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
)

// maxBodySize bounds JSON request bodies. Changelogs are markdown text.
const maxBodySize = 4 << 20

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type commitResponse struct {
	SHA     string `json:"sha"`
	HTMLURL string `json:"html_url"`
}

type statusResponse struct {
	Message     string               `json:"message"`
	Status      string               `json:"status"`
	Commit      *commitResponse      `json:"commit,omitempty"`
	PullRequest *pullRequestResponse `json:"pull_request,omitempty"`
}

type pullRequestResponse struct {
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
	Title   string `json:"title"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"Server error: failed to encode response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

// writeFailure answers with the status mapped from the failure carried by err.
// Unhandled failures are reported to Sentry, the rest are logged. A non-empty
// summary becomes the error field and the failure message moves to details,
// except for request problems the caller has to fix.
func writeFailure(w http.ResponseWriter, r *http.Request, summary string, err error) {
	failure := types.AsFailure(err)

	msg := failure.Message
	if failure.Kind == types.FailureUnhandled {
		errutil.HandleError(r.Context(), "unhandled error in request", err)
		msg = "Server error: " + failure.Message
	} else {
		logging.From(r.Context()).Warn("request failed",
			slog.Any("failure", failure),
			slog.Any("error", err),
			slog.String("path", r.URL.Path),
		)
	}

	resp := errorResponse{Error: msg}
	switch failure.Kind {
	case types.FailureValidation, types.FailureUnauthorized:
	default:
		if summary != "" {
			resp = errorResponse{Error: summary, Details: msg}
		}
	}

	writeJSON(w, failure.HTTPStatus(), resp)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeFailure(w, r, "", err)
}

// decodeJSON reads a JSON object from the request body into v.
func decodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return goerr.Wrap(types.ValidationError("Failed to read request body"), "failed to read body", goerr.V("error", err.Error()))
	}
	if len(body) > maxBodySize {
		return goerr.Wrap(types.ValidationError("Request body is too large"), "request body too large", goerr.V("size", len(body)))
	}
	if len(body) == 0 {
		return goerr.Wrap(types.ValidationError("No data provided"), "empty request body")
	}

	if err := json.Unmarshal(body, v); err != nil {
		return goerr.Wrap(types.ValidationError("Invalid JSON body: "+err.Error()), "failed to decode body")
	}
	return nil
}
