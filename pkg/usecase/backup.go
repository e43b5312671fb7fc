package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/model"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
)

// SaveBackup writes the changelog draft to the backup file, creating the file
// when it does not exist yet.
func (x *UseCase) SaveBackup(ctx context.Context, input *model.SaveBackupInput) (*model.Commit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gh, err := x.github()
	if err != nil {
		return nil, err
	}
	if err := x.checkBackupTarget(); err != nil {
		return nil, err
	}

	logger := logging.From(ctx)
	logger.Info("Saving backup",
		slog.String("repo", x.backup.GitHubRepo.String()),
		slog.String("branch", x.backup.Branch.String()),
		slog.String("path", x.backup.Path),
	)

	if err := gh.VerifyCredentials(ctx); err != nil {
		return nil, err
	}

	exists, err := gh.BranchExists(ctx, x.backup.GitHubRepo, x.backup.Branch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check backup branch")
	}
	if !exists {
		msg := fmt.Sprintf("Branch %s not found in repository %s", x.backup.Branch, x.backup.GitHubRepo.String())
		return nil, goerr.Wrap(types.NotFound(msg), "backup branch not found")
	}

	var sha types.CommitSHA
	current, err := gh.GetFile(ctx, x.backup)
	switch {
	case err == nil:
		sha = current.SHA
	case types.IsFailureKind(err, types.FailureNotFound):
		logger.Info("Backup file not found, creating new file", slog.String("path", x.backup.Path))
	default:
		return nil, goerr.Wrap(err, "failed to read backup file")
	}

	commit, err := gh.PutFile(ctx, &model.PutFileInput{
		GitHubFileRef: x.backup,
		Message:       input.CommitMessage,
		Content:       input.Content,
		SHA:           sha,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to write backup file")
	}

	return commit, nil
}

// LoadBackup returns the content of the backup file.
func (x *UseCase) LoadBackup(ctx context.Context) (string, error) {
	gh, err := x.github()
	if err != nil {
		return "", err
	}
	if err := x.checkBackupTarget(); err != nil {
		return "", err
	}

	file, err := gh.GetFile(ctx, x.backup)
	if err != nil {
		if types.IsFailureKind(err, types.FailureNotFound) {
			return "", goerr.Wrap(types.NotFound(fmt.Sprintf("File %s not found in repository", x.backup.Path)),
				"backup file not found", goerr.V("repo", x.backup.GitHubRepo.String()))
		}
		return "", goerr.Wrap(err, "failed to read backup file")
	}

	return file.Content, nil
}

func (x *UseCase) checkBackupTarget() error {
	if err := x.backup.GitHubRepo.Validate(); err != nil {
		return goerr.Wrap(types.Unhandled("Backup repository is not configured"), "invalid backup target",
			goerr.V("target", x.backup.GitHubRepo.String()))
	}
	return nil
}
