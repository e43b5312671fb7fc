package types_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relnote/pkg/domain/types"
)

func TestFailureHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		failure  *types.Failure
		expected int
	}{
		{"not found", types.NotFound("x"), http.StatusNotFound},
		{"access denied", types.AccessDenied("x"), http.StatusForbidden},
		{"timeout", types.Timeout("x"), http.StatusRequestTimeout},
		{"connection error", types.ConnectionError("x"), http.StatusServiceUnavailable},
		{"validation", types.ValidationError("x"), http.StatusBadRequest},
		{"unauthorized", types.Unauthorized("x"), http.StatusUnauthorized},
		{"unhandled", types.Unhandled("x"), http.StatusInternalServerError},
		{"http error passes upstream status", types.HTTPError(http.StatusConflict, "x"), http.StatusConflict},
		{"http error with 502", types.HTTPError(http.StatusBadGateway, "x"), http.StatusBadGateway},
		{"http error with non error status", types.HTTPError(http.StatusFound, "x"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, tc.failure.HTTPStatus()).Equal(tc.expected)
		})
	}
}

func TestAsFailure(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		gt.V(t, types.AsFailure(nil)).Equal((*types.Failure)(nil))
	})

	t.Run("failure wrapped by goerr is found", func(t *testing.T) {
		err := goerr.Wrap(types.NotFound("Resource not found"), "failed to fetch branches", goerr.V("page", 3))
		failure := types.AsFailure(err)
		gt.V(t, failure.Kind).Equal(types.FailureNotFound)
		gt.V(t, failure.StatusCode).Equal(http.StatusNotFound)
		gt.True(t, types.IsFailureKind(err, types.FailureNotFound))
	})

	t.Run("plain error becomes unhandled", func(t *testing.T) {
		failure := types.AsFailure(errors.New("boom"))
		gt.V(t, failure.Kind).Equal(types.FailureUnhandled)
		gt.V(t, failure.HTTPStatus()).Equal(http.StatusInternalServerError)
		gt.V(t, failure.Message).Equal("boom")
		gt.False(t, types.IsFailureKind(errors.New("boom"), types.FailureUnhandled))
	})
}

func TestFailureWithCause(t *testing.T) {
	err := goerr.Wrap(types.Unhandled("Invalid data received from GitHub").WithCause(types.ErrInvalidGitHubData), "invalid record")
	gt.True(t, errors.Is(err, types.ErrInvalidGitHubData))
	gt.V(t, types.AsFailure(err).Message).Equal("Invalid data received from GitHub")
	gt.V(t, types.AsFailure(err).HTTPStatus()).Equal(500)
}
