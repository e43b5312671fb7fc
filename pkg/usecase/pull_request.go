package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/interfaces"
	"github.com/m-mizutani/relnote/pkg/domain/model"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
)

// CreateChangelogPullRequest opens a pull request against input.Branch that
// prepends input.Content to the changelog and, if input.Version is set, bumps
// the package version.
func (x *UseCase) CreateChangelogPullRequest(ctx context.Context, input *model.CreatePullRequestInput) (*model.PullRequest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Version != "" {
		if err := x.checkVersion(input.Version); err != nil {
			return nil, err
		}
	}

	gh, err := x.github()
	if err != nil {
		return nil, err
	}

	logger := logging.From(ctx)
	repo := input.GitHubRepo()

	head, err := x.newChangelogBranch(ctx, gh, repo, input.Milestone)
	if err != nil {
		return nil, err
	}

	baseSHA, err := gh.GetBranchHeadSHA(ctx, repo, input.Branch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get base branch", goerr.V("branch", input.Branch))
	}
	if err := gh.CreateBranch(ctx, repo, head, baseSHA); err != nil {
		return nil, goerr.Wrap(err, "failed to create changelog branch")
	}
	logger.Info("Created new branch", slog.String("branch", head.String()))

	if err := x.prependChangelog(ctx, gh, repo, head, input.Content); err != nil {
		return nil, err
	}

	if version := input.Version; version != "" {
		msg := fmt.Sprintf("Update version to %s", version)
		if _, err := x.bumpVersion(ctx, gh, repo, head, version, msg); err != nil {
			logger.Warn("Failed to update version, continuing without it",
				slog.Any("error", err),
				slog.String("version", version),
			)
		}
	}

	pr, err := gh.CreatePullRequest(ctx, &model.NewPullRequest{
		GitHubRepo: repo,
		Title:      input.PRTitle,
		Body:       input.PRBody,
		Head:       head,
		Base:       input.Branch,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open pull request")
	}

	logger.Info("Created pull request",
		slog.String("repo", repo.String()),
		slog.Int("number", pr.Number),
	)
	return pr, nil
}

// newChangelogBranch picks a branch name derived from milestone that does not
// exist yet in repo.
func (x *UseCase) newChangelogBranch(ctx context.Context, gh interfaces.GitHub, repo model.GitHubRepo, milestone string) (types.BranchName, error) {
	name := model.ChangelogBranchName(milestone)

	exists, err := gh.BranchExists(ctx, repo, name)
	if err != nil {
		return "", goerr.Wrap(err, "failed to check changelog branch", goerr.V("branch", name))
	}
	if !exists {
		return name, nil
	}

	unique := types.BranchName(fmt.Sprintf("%s-%d", name, logging.CtxTime(ctx).Unix()))
	logging.From(ctx).Info("Branch already exists, using unique name", slog.String("branch", unique.String()))
	return unique, nil
}

func (x *UseCase) prependChangelog(ctx context.Context, gh interfaces.GitHub, repo model.GitHubRepo, branch types.BranchName, content string) error {
	ref := model.GitHubFileRef{GitHubRepo: repo, Branch: branch, Path: x.changelogPath}

	input := &model.PutFileInput{
		GitHubFileRef: ref,
		Message:       "Create " + x.changelogPath,
		Content:       content,
	}

	current, err := gh.GetFile(ctx, ref)
	switch {
	case err == nil:
		input.Message = "Update " + x.changelogPath
		input.Content = content + "\n\n" + current.Content
		input.SHA = current.SHA
	case types.IsFailureKind(err, types.FailureNotFound):
		logging.From(ctx).Info("Changelog not found, creating new file", slog.String("path", x.changelogPath))
	default:
		return goerr.Wrap(err, "failed to read changelog")
	}

	if _, err := gh.PutFile(ctx, input); err != nil {
		return goerr.Wrap(err, "failed to write changelog")
	}
	return nil
}
