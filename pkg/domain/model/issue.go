package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/types"
)

// Issue is a record of GET /repos/{owner}/{repo}/issues. ClosedAt and Body are
// null for open issues and issues without description.
type Issue struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	State     string     `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at"`
	HTMLURL   string     `json:"html_url"`
	Body      *string    `json:"body"`
}

func (x Issue) Validate() error {
	if x.Number <= 0 {
		return goerr.Wrap(types.ErrInvalidGitHubData, "issue number is missing", goerr.V("title", x.Title))
	}

	required := []struct {
		field string
		ok    bool
	}{
		{"title", x.Title != ""},
		{"state", x.State != ""},
		{"created_at", !x.CreatedAt.IsZero()},
		{"html_url", x.HTMLURL != ""},
	}
	for _, r := range required {
		if !r.ok {
			return goerr.Wrap(types.ErrInvalidGitHubData, "issue field is missing",
				goerr.V("number", x.Number),
				goerr.V("field", r.field),
			)
		}
	}
	return nil
}
