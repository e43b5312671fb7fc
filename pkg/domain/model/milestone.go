package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/types"
)

// Milestone is a record of GET /repos/{owner}/{repo}/milestones
type Milestone struct {
	Number      int     `json:"number"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	State       string  `json:"state"`
}

func (x Milestone) Validate() error {
	if x.Number <= 0 {
		return goerr.Wrap(types.ErrInvalidGitHubData, "milestone number is missing", goerr.V("title", x.Title))
	}
	if x.Title == "" {
		return goerr.Wrap(types.ErrInvalidGitHubData, "milestone title is missing", goerr.V("number", x.Number))
	}
	if x.State == "" {
		return goerr.Wrap(types.ErrInvalidGitHubData, "milestone state is missing", goerr.V("number", x.Number))
	}
	return nil
}
