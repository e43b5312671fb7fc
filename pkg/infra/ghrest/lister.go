package ghrest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/m-mizutani/relnote/pkg/domain/interfaces"
	"github.com/m-mizutani/relnote/pkg/domain/model"
)

var _ interfaces.GitHubLister = (*Client)(nil)

func repoPath(repo model.GitHubRepo, resource string) string {
	return "/repos/" + url.PathEscape(repo.Owner) + "/" + url.PathEscape(repo.RepoName) + "/" + resource
}

func (x *Client) ListBranches(ctx context.Context, repo model.GitHubRepo) ([]model.Branch, error) {
	return FetchAll[model.Branch](ctx, x, PageRequest{
		Path: repoPath(repo, "branches"),
	})
}

// ListMilestones returns open and closed milestones, latest due date first.
func (x *Client) ListMilestones(ctx context.Context, repo model.GitHubRepo) ([]model.Milestone, error) {
	return FetchAll[model.Milestone](ctx, x, PageRequest{
		Path: repoPath(repo, "milestones"),
		Query: url.Values{
			"state":     {"all"},
			"sort":      {"due_on"},
			"direction": {"desc"},
		},
	})
}

// ListIssues returns open and closed issues of a milestone, most recently
// updated first. Caches between relnote and GitHub are bypassed so that a
// freshly closed issue shows up immediately.
func (x *Client) ListIssues(ctx context.Context, repo model.GitHubRepo, milestone string) ([]model.Issue, error) {
	return FetchAll[model.Issue](ctx, x, PageRequest{
		Path: repoPath(repo, "issues"),
		Query: url.Values{
			"milestone": {milestone},
			"state":     {"all"},
			"sort":      {"updated"},
			"direction": {"desc"},
		},
		Header: http.Header{
			"Cache-Control": {"no-cache"},
		},
	})
}
