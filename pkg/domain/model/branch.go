package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/types"
)

// Branch is a record of GET /repos/{owner}/{repo}/branches
type Branch struct {
	Name string `json:"name"`
}

func (x Branch) Validate() error {
	if x.Name == "" {
		return goerr.Wrap(types.ErrInvalidGitHubData, "branch name is missing")
	}
	return nil
}
