package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/interfaces"
	"github.com/m-mizutani/relnote/pkg/domain/model"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
)

// findVersionFile returns the first configured version file that exists on
// branch.
func (x *UseCase) findVersionFile(ctx context.Context, gh interfaces.GitHub, repo model.GitHubRepo, branch types.BranchName) (*model.GitHubFile, error) {
	for _, path := range x.versionFilePaths {
		file, err := gh.GetFile(ctx, model.GitHubFileRef{GitHubRepo: repo, Branch: branch, Path: path})
		if err == nil {
			return file, nil
		}
		if !types.IsFailureKind(err, types.FailureNotFound) {
			return nil, goerr.Wrap(err, "failed to read version file", goerr.V("path", path))
		}
		logging.From(ctx).Debug("Version file not found", slog.String("path", path))
	}

	return nil, goerr.Wrap(types.NotFound("Could not find __init__.py file in any of the expected locations"),
		"version file not found",
		goerr.V("repo", repo.String()),
		goerr.V("branch", branch),
		goerr.V("paths", x.versionFilePaths),
	)
}

func (x *UseCase) bumpVersion(ctx context.Context, gh interfaces.GitHub, repo model.GitHubRepo, branch types.BranchName, version, message string) (*model.Commit, error) {
	file, err := x.findVersionFile(ctx, gh, repo, branch)
	if err != nil {
		return nil, err
	}

	commit, err := gh.PutFile(ctx, &model.PutFileInput{
		GitHubFileRef: file.GitHubFileRef,
		Message:       message,
		Content:       model.PatchVersionDeclaration(file.Content, version),
		SHA:           file.SHA,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to write version file", goerr.V("path", file.Path))
	}

	logging.From(ctx).Info("Updated version",
		slog.String("repo", repo.String()),
		slog.String("path", file.Path),
		slog.String("version", version),
	)
	return commit, nil
}

// UpdateVersion rewrites the version declaration of the package on the given
// branch.
func (x *UseCase) UpdateVersion(ctx context.Context, input *model.UpdateVersionInput) (*model.Commit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := x.checkVersion(input.Version); err != nil {
		return nil, err
	}

	gh, err := x.github()
	if err != nil {
		return nil, err
	}

	return x.bumpVersion(ctx, gh, input.GitHubRepo(), input.Branch,
		input.Version,
		input.CommitMessage,
	)
}

// checkVersion applies the semantic version rule when strict checking is on.
func (x *UseCase) checkVersion(version string) error {
	if !x.strictVersion {
		return nil
	}
	return model.ValidateSemanticVersion(version)
}
