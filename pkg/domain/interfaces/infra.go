package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubLister GitHub

import (
	"context"

	"github.com/m-mizutani/relnote/pkg/domain/model"
	"github.com/m-mizutani/relnote/pkg/domain/types"
)

// GitHubLister reads paginated collections of a repository. Every page is
// fetched before the result is returned; a failed page fails the whole listing.
type GitHubLister interface {
	ListBranches(ctx context.Context, repo model.GitHubRepo) ([]model.Branch, error)
	ListMilestones(ctx context.Context, repo model.GitHubRepo) ([]model.Milestone, error)
	ListIssues(ctx context.Context, repo model.GitHubRepo, milestone string) ([]model.Issue, error)
}

// GitHub covers the single-shot operations of the REST API. Failures carry a
// *types.Failure; a missing file or branch is types.FailureNotFound.
type GitHub interface {
	VerifyCredentials(ctx context.Context) error

	BranchExists(ctx context.Context, repo model.GitHubRepo, branch types.BranchName) (bool, error)
	GetBranchHeadSHA(ctx context.Context, repo model.GitHubRepo, branch types.BranchName) (types.CommitSHA, error)
	CreateBranch(ctx context.Context, repo model.GitHubRepo, branch types.BranchName, from types.CommitSHA) error

	GetFile(ctx context.Context, ref model.GitHubFileRef) (*model.GitHubFile, error)
	PutFile(ctx context.Context, input *model.PutFileInput) (*model.Commit, error)

	CreatePullRequest(ctx context.Context, input *model.NewPullRequest) (*model.PullRequest, error)

	CreateGist(ctx context.Context, input *model.NewGist) (*model.Gist, error)
	GetGist(ctx context.Context, id types.GistID) (*model.Gist, error)
}
