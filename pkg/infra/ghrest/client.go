package ghrest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
	"github.com/m-mizutani/relnote/pkg/utils/safe"
)

const (
	DefaultTimeout        = 30 * time.Second
	DefaultMaxRetries     = 3
	DefaultInitialBackoff = time.Second

	// logBodyLimit is the number of response body bytes kept in failure logs.
	logBodyLimit = 200
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues GET requests against the GitHub REST API. Transient failures
// (429, 500, 502, 503, 504 and connection errors) are retried with exponential
// backoff; every other failure is returned after the first attempt.
type Client struct {
	baseURL        string
	httpClient     HTTPClient
	timeout        time.Duration
	maxRetries     uint64
	initialBackoff time.Duration
	newTimer       func() backoff.Timer
	perPage        int
	maxPages       int
}

type Option func(*Client)

// WithHTTPClient sets the client used for every attempt. It is expected to carry
// authentication in its transport.
func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

// WithTimeout bounds a whole Fetch call, including retries and backoff waits.
func WithTimeout(timeout time.Duration) Option {
	return func(x *Client) {
		x.timeout = timeout
	}
}

func WithMaxRetries(n uint64) Option {
	return func(x *Client) {
		x.maxRetries = n
	}
}

func WithInitialBackoff(d time.Duration) Option {
	return func(x *Client) {
		x.initialBackoff = d
	}
}

// WithRetryTimer replaces the timer that waits between attempts.
func WithRetryTimer(newTimer func() backoff.Timer) Option {
	return func(x *Client) {
		x.newTimer = newTimer
	}
}

func WithPerPage(n int) Option {
	return func(x *Client) {
		x.perPage = n
	}
}

func WithMaxPages(n int) Option {
	return func(x *Client) {
		x.maxPages = n
	}
}

// New creates a Client for baseURL, e.g. https://api.github.com or
// https://github.example.com/api/v3.
func New(baseURL string, options ...Option) *Client {
	client := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     http.DefaultClient,
		timeout:        DefaultTimeout,
		maxRetries:     DefaultMaxRetries,
		initialBackoff: DefaultInitialBackoff,
		perPage:        DefaultPerPage,
		maxPages:       DefaultMaxPages,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Client) newBackOff() backoff.BackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     x.initialBackoff,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         30 * time.Second,
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	return b
}

// Fetch sends GET {baseURL}{path}?{query} and returns the undecoded JSON body
// of a 2xx response. Any failure is returned as an error carrying a
// *types.Failure.
func (x *Client) Fetch(ctx context.Context, path string, query url.Values, header http.Header) (json.RawMessage, error) {
	reqURL := x.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	var body json.RawMessage
	operation := func() error {
		raw, err := x.get(ctx, reqURL, header)
		if err != nil {
			return err
		}
		body = raw
		return nil
	}

	notify := func(err error, wait time.Duration) {
		fetchRetriesTotal.WithLabelValues(retryReason(err)).Inc()
		logging.From(ctx).Warn("Retrying GitHub request",
			slog.String("url", reqURL),
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
	}

	b := backoff.WithContext(backoff.WithMaxRetries(x.newBackOff(), x.maxRetries), ctx)

	var timer backoff.Timer
	if x.newTimer != nil {
		timer = x.newTimer()
	}

	if err := backoff.RetryNotifyWithTimer(operation, b, notify, timer); err != nil {
		return nil, x.toFailure(ctx, reqURL, err)
	}

	return body, nil
}

func (x *Client) get(ctx context.Context, reqURL string, header http.Header) (json.RawMessage, error) {
	logger := logging.From(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, backoff.Permanent(goerr.Wrap(types.Unhandled("Failed to build request: "+err.Error()),
			"failed to create request", goerr.V("url", reqURL)))
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		fetchRequestsTotal.WithLabelValues("connection_error").Inc()
		msg := fmt.Sprintf("Connection error occurred for URL: %s - %s", reqURL, err.Error())
		logger.Error(msg)
		return nil, goerr.Wrap(types.ConnectionError(msg), "failed to send request", goerr.V("url", reqURL))
	}
	defer safe.CloseBody(ctx, resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		fetchRequestsTotal.WithLabelValues("connection_error").Inc()
		msg := fmt.Sprintf("Connection error occurred for URL: %s - %s", reqURL, err.Error())
		logger.Error(msg)
		return nil, goerr.Wrap(types.ConnectionError(msg), "failed to read response body", goerr.V("url", reqURL))
	}

	fetchRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if !json.Valid(raw) {
			logger.Error("Response is not valid JSON",
				slog.String("url", reqURL),
				slog.String("body", truncate(raw)),
			)
			return nil, backoff.Permanent(goerr.Wrap(types.Unhandled("Failed to decode response from GitHub"),
				"invalid JSON in response", goerr.V("url", reqURL)))
		}
		return raw, nil
	}

	failure := statusFailure(resp)
	logger.Error(failure.Message,
		slog.String("url", reqURL),
		slog.Int("status", resp.StatusCode),
		slog.String("body", truncate(raw)),
	)

	err = goerr.Wrap(failure, "GitHub returned error status",
		goerr.V("url", reqURL),
		goerr.V("status", resp.StatusCode),
	)
	if isRetryableStatus(resp.StatusCode) {
		return nil, err
	}
	return nil, backoff.Permanent(err)
}

func (x *Client) toFailure(ctx context.Context, reqURL string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		msg := fmt.Sprintf("Request timed out after %s for URL: %s", x.timeout, reqURL)
		logging.From(ctx).Error(msg)
		fetchRequestsTotal.WithLabelValues("timeout").Inc()
		return goerr.Wrap(types.Timeout(msg), "request timed out", goerr.V("url", reqURL))

	case errors.Is(err, context.Canceled):
		return goerr.Wrap(types.Unhandled("Request was canceled"), "request canceled", goerr.V("url", reqURL))

	default:
		return err
	}
}

func statusFailure(resp *http.Response) *types.Failure {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return types.NotFound("Resource not found")
	case http.StatusForbidden:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			return types.AccessDenied("Rate limit exceeded")
		}
		return types.AccessDenied("Rate limit exceeded or access denied")
	default:
		return types.HTTPError(resp.StatusCode, fmt.Sprintf("GitHub API returned status %d", resp.StatusCode))
	}
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func retryReason(err error) string {
	failure := types.AsFailure(err)
	if failure.Kind == types.FailureConnection {
		return "connection_error"
	}
	return strconv.Itoa(failure.StatusCode)
}

func truncate(body []byte) string {
	if len(body) > logBodyLimit {
		return string(body[:logBodyLimit])
	}
	return string(body)
}
