package types

import (
	"errors"
	"log/slog"
	"net/http"
)

// FailureKind classifies why a call to GitHub (or a request to relnote) failed.
type FailureKind string

const (
	FailureNotFound     FailureKind = "not_found"
	FailureAccessDenied FailureKind = "access_denied"
	FailureTimeout      FailureKind = "timeout"
	FailureConnection   FailureKind = "connection_error"
	FailureHTTP         FailureKind = "http_error"
	FailureValidation   FailureKind = "validation_error"
	FailureUnauthorized FailureKind = "unauthorized"
	FailureUnhandled    FailureKind = "unhandled_exception"
)

// Failure is the error half of every remote operation. A nil error means the
// operation succeeded with 200 OK.
type Failure struct {
	Kind       FailureKind
	StatusCode int
	Message    string

	cause error
}

func NewFailure(kind FailureKind, statusCode int, msg string) *Failure {
	return &Failure{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    msg,
	}
}

func NotFound(msg string) *Failure {
	return NewFailure(FailureNotFound, http.StatusNotFound, msg)
}

func AccessDenied(msg string) *Failure {
	return NewFailure(FailureAccessDenied, http.StatusForbidden, msg)
}

func Timeout(msg string) *Failure {
	return NewFailure(FailureTimeout, http.StatusRequestTimeout, msg)
}

func ConnectionError(msg string) *Failure {
	return NewFailure(FailureConnection, http.StatusServiceUnavailable, msg)
}

func HTTPError(statusCode int, msg string) *Failure {
	return NewFailure(FailureHTTP, statusCode, msg)
}

func ValidationError(msg string) *Failure {
	return NewFailure(FailureValidation, http.StatusBadRequest, msg)
}

func Unauthorized(msg string) *Failure {
	return NewFailure(FailureUnauthorized, http.StatusUnauthorized, msg)
}

func Unhandled(msg string) *Failure {
	return NewFailure(FailureUnhandled, http.StatusInternalServerError, msg)
}

func (x *Failure) Error() string {
	return string(x.Kind) + ": " + x.Message
}

// WithCause keeps err reachable through errors.Is and errors.As without
// exposing it in Message.
func (x *Failure) WithCause(err error) *Failure {
	x.cause = err
	return x
}

func (x *Failure) Unwrap() error {
	return x.cause
}

func (x *Failure) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", string(x.Kind)),
		slog.Int("status_code", x.StatusCode),
		slog.String("message", x.Message),
	)
}

// HTTPStatus returns the status code relnote answers with for this failure.
func (x *Failure) HTTPStatus() int {
	switch x.Kind {
	case FailureNotFound:
		return http.StatusNotFound
	case FailureAccessDenied:
		return http.StatusForbidden
	case FailureTimeout:
		return http.StatusRequestTimeout
	case FailureConnection:
		return http.StatusServiceUnavailable
	case FailureValidation:
		return http.StatusBadRequest
	case FailureUnauthorized:
		return http.StatusUnauthorized
	case FailureHTTP:
		if x.StatusCode >= 400 && x.StatusCode <= 599 {
			return x.StatusCode
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// AsFailure extracts the Failure from err. Errors that carry no Failure are
// unanticipated and reported as FailureUnhandled.
func AsFailure(err error) *Failure {
	if err == nil {
		return nil
	}

	var failure *Failure
	if errors.As(err, &failure) {
		return failure
	}
	return Unhandled(err.Error())
}

// IsFailureKind reports whether err carries a Failure of the given kind.
func IsFailureKind(err error, kind FailureKind) bool {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Kind == kind
	}
	return false
}
