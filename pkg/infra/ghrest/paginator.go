package ghrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
)

const (
	DefaultPerPage  = 100
	DefaultMaxPages = 1000
)

// PageRequest describes a paginated collection. page and per_page are set by
// FetchAll and must not be given in Query.
type PageRequest struct {
	Path   string
	Query  url.Values
	Header http.Header
}

// Record is an element of a paginated collection.
type Record interface {
	Validate() error
}

// FetchAll reads every page of req in order, starting at page 1, and returns
// the concatenated records. A page that is empty or shorter than the page size
// ends the listing. Any failure discards what has been read so far.
func FetchAll[T Record](ctx context.Context, client *Client, req PageRequest) ([]T, error) {
	logger := logging.From(ctx)
	items := []T{}

	var prev json.RawMessage
	for page := 1; ; page++ {
		if page > client.maxPages {
			return nil, goerr.Wrap(types.Unhandled(fmt.Sprintf("Pagination exceeded %d pages", client.maxPages)),
				"too many pages", goerr.V("path", req.Path))
		}

		query := url.Values{}
		for key, values := range req.Query {
			query[key] = append([]string(nil), values...)
		}
		query.Set("per_page", strconv.Itoa(client.perPage))
		query.Set("page", strconv.Itoa(page))

		raw, err := client.Fetch(ctx, req.Path, query, req.Header)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch page", goerr.V("path", req.Path), goerr.V("page", page))
		}

		var records []T
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, goerr.Wrap(types.Unhandled("Failed to decode response from GitHub").WithCause(err),
				"page is not a JSON array", goerr.V("path", req.Path), goerr.V("page", page))
		}
		if len(records) == 0 {
			break
		}

		if prev != nil && bytes.Equal(prev, raw) {
			return nil, goerr.Wrap(types.Unhandled("GitHub returned the same page twice"),
				"pagination made no progress", goerr.V("path", req.Path), goerr.V("page", page))
		}

		for i, record := range records {
			if err := record.Validate(); err != nil {
				return nil, goerr.Wrap(types.Unhandled("Invalid data received from GitHub").WithCause(err),
					"invalid record", goerr.V("path", req.Path), goerr.V("page", page), goerr.V("index", i))
			}
		}

		items = append(items, records...)
		logger.Log(ctx, logging.LevelTrace, "Fetched page",
			slog.String("path", req.Path),
			slog.Int("page", page),
			slog.Int("count", len(records)),
		)

		if len(records) < client.perPage {
			break
		}
		prev = raw
	}

	return items, nil
}
