package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/relnote/pkg/domain/model"
	"github.com/m-mizutani/relnote/pkg/domain/types"
)

type UseCase interface {
	ListBranches(ctx context.Context, repo model.GitHubRepo) ([]model.Branch, error)
	ListMilestones(ctx context.Context, repo model.GitHubRepo) ([]model.Milestone, error)
	ListIssues(ctx context.Context, repo model.GitHubRepo, milestone string) ([]model.Issue, error)

	SaveBackup(ctx context.Context, input *model.SaveBackupInput) (*model.Commit, error)
	LoadBackup(ctx context.Context) (string, error)

	UpdateVersion(ctx context.Context, input *model.UpdateVersionInput) (*model.Commit, error)
	CreateChangelogPullRequest(ctx context.Context, input *model.CreatePullRequestInput) (*model.PullRequest, error)

	CreateGist(ctx context.Context, input *model.CreateGistInput) (*model.Gist, error)
	FetchGist(ctx context.Context, id types.GistID) (*model.GistFile, error)
}
