package ghrest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/infra/ghrest"
)

// instantTimer fires immediately and records every requested wait.
type instantTimer struct {
	waits *[]time.Duration
	c     chan time.Time
}

func (x *instantTimer) Start(d time.Duration) {
	*x.waits = append(*x.waits, d)
	x.c <- time.Now()
}

func (x *instantTimer) Stop() {}

func (x *instantTimer) C() <-chan time.Time {
	return x.c
}

func newTestClient(t *testing.T, handler http.HandlerFunc, options ...ghrest.Option) (*ghrest.Client, *[]time.Duration) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var waits []time.Duration
	opts := append([]ghrest.Option{
		ghrest.WithHTTPClient(srv.Client()),
		ghrest.WithRetryTimer(func() backoff.Timer {
			return &instantTimer{waits: &waits, c: make(chan time.Time, 1)}
		}),
	}, options...)

	return ghrest.New(srv.URL, opts...), &waits
}

func TestFetch(t *testing.T) {
	t.Run("success on first attempt", func(t *testing.T) {
		var gotPath, gotQuery, gotAccept string
		client, waits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			gotAccept = r.Header.Get("Accept")
			_, _ = w.Write([]byte(`{"login":"octocat"}`))
		})

		raw, err := client.Fetch(context.Background(), "/user", url.Values{"a": {"1"}}, nil)
		gt.NoError(t, err)
		gt.V(t, string(raw)).Equal(`{"login":"octocat"}`)
		gt.V(t, gotPath).Equal("/user")
		gt.V(t, gotQuery).Equal("a=1")
		gt.V(t, gotAccept).Equal("application/vnd.github+json")
		gt.V(t, len(*waits)).Equal(0)
	})

	t.Run("retries 503 twice then succeeds", func(t *testing.T) {
		var calls int32
		client, waits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) <= 2 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`[]`))
		})

		raw, err := client.Fetch(context.Background(), "/x", nil, nil)
		gt.NoError(t, err)
		gt.V(t, string(raw)).Equal(`[]`)
		gt.V(t, atomic.LoadInt32(&calls)).Equal(int32(3))
		gt.V(t, *waits).Equal([]time.Duration{time.Second, 2 * time.Second})
	})

	t.Run("gives up after three retries with upstream status", func(t *testing.T) {
		var calls int32
		client, waits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.Fetch(context.Background(), "/x", nil, nil)
		failure := types.AsFailure(err)
		gt.V(t, failure.Kind).Equal(types.FailureHTTP)
		gt.V(t, failure.HTTPStatus()).Equal(http.StatusBadGateway)
		gt.V(t, atomic.LoadInt32(&calls)).Equal(int32(4))
		gt.V(t, *waits).Equal([]time.Duration{time.Second, 2 * time.Second, 4 * time.Second})
	})

	t.Run("429 is retried", func(t *testing.T) {
		var calls int32
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_, _ = w.Write([]byte(`{}`))
		})

		_, err := client.Fetch(context.Background(), "/x", nil, nil)
		gt.NoError(t, err)
		gt.V(t, atomic.LoadInt32(&calls)).Equal(int32(2))
	})

	t.Run("404 is not retried", func(t *testing.T) {
		var calls int32
		client, waits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		})

		_, err := client.Fetch(context.Background(), "/x", nil, nil)
		failure := types.AsFailure(err)
		gt.V(t, failure.Kind).Equal(types.FailureNotFound)
		gt.V(t, failure.Message).Equal("Resource not found")
		gt.V(t, atomic.LoadInt32(&calls)).Equal(int32(1))
		gt.V(t, len(*waits)).Equal(0)
	})

	t.Run("403 is access denied", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.Fetch(context.Background(), "/x", nil, nil)
		failure := types.AsFailure(err)
		gt.V(t, failure.Kind).Equal(types.FailureAccessDenied)
		gt.V(t, failure.HTTPStatus()).Equal(http.StatusForbidden)
		gt.V(t, failure.Message).Equal("Rate limit exceeded or access denied")
	})

	t.Run("403 with exhausted rate limit", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.Fetch(context.Background(), "/x", nil, nil)
		gt.V(t, types.AsFailure(err).Kind).Equal(types.FailureAccessDenied)
		gt.V(t, types.AsFailure(err).Message).Equal("Rate limit exceeded")
	})

	t.Run("other 4xx is passed through without retry", func(t *testing.T) {
		var calls int32
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusUnprocessableEntity)
		})

		_, err := client.Fetch(context.Background(), "/x", nil, nil)
		gt.V(t, types.AsFailure(err).HTTPStatus()).Equal(http.StatusUnprocessableEntity)
		gt.V(t, atomic.LoadInt32(&calls)).Equal(int32(1))
	})

	t.Run("undecodable JSON is unhandled", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>maintenance</html>`))
		})

		_, err := client.Fetch(context.Background(), "/x", nil, nil)
		gt.V(t, types.AsFailure(err).Kind).Equal(types.FailureUnhandled)
		gt.V(t, types.AsFailure(err).HTTPStatus()).Equal(http.StatusInternalServerError)
	})

	t.Run("timeout covers the whole call", func(t *testing.T) {
		release := make(chan struct{})
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}, ghrest.WithTimeout(50*time.Millisecond))
		t.Cleanup(func() { close(release) })

		_, err := client.Fetch(context.Background(), "/slow", nil, nil)
		failure := types.AsFailure(err)
		gt.V(t, failure.Kind).Equal(types.FailureTimeout)
		gt.V(t, failure.HTTPStatus()).Equal(http.StatusRequestTimeout)
	})

	t.Run("custom header is sent", func(t *testing.T) {
		var cacheControl string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			cacheControl = r.Header.Get("Cache-Control")
			_, _ = w.Write([]byte(`[]`))
		})

		_, err := client.Fetch(context.Background(), "/x", nil, http.Header{"Cache-Control": {"no-cache"}})
		gt.NoError(t, err)
		gt.V(t, cacheControl).Equal("no-cache")
	})
}

func TestFetchConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	var waits []time.Duration
	client := ghrest.New(baseURL,
		ghrest.WithRetryTimer(func() backoff.Timer {
			return &instantTimer{waits: &waits, c: make(chan time.Time, 1)}
		}),
	)

	_, err := client.Fetch(context.Background(), "/x", nil, nil)
	failure := types.AsFailure(err)
	gt.V(t, failure.Kind).Equal(types.FailureConnection)
	gt.V(t, failure.HTTPStatus()).Equal(http.StatusServiceUnavailable)
	gt.V(t, len(waits)).Equal(3)
}
