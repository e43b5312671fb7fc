package config

import (
	"log/slog"

	"github.com/m-mizutani/relnote/pkg/domain/model"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Target holds the files relnote writes: the backup document, the changelog
// and the candidate version files.
type Target struct {
	backupOwner  string
	backupRepo   string
	backupBranch string
	backupPath   string

	changelogPath string
	versionFiles  []string
	strictVersion bool
}

func (x *Target) Flags() []cli.Flag {
	const category = "Target"

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backup-owner",
			Usage:       "Owner of the repository holding the changelog backup",
			Category:    category,
			Destination: &x.backupOwner,
			Sources:     cli.EnvVars("RELNOTE_BACKUP_OWNER"),
		},
		&cli.StringFlag{
			Name:        "backup-repo",
			Usage:       "Repository holding the changelog backup",
			Category:    category,
			Destination: &x.backupRepo,
			Sources:     cli.EnvVars("RELNOTE_BACKUP_REPO"),
		},
		&cli.StringFlag{
			Name:        "backup-branch",
			Usage:       "Branch of the changelog backup",
			Category:    category,
			Value:       usecase.DefaultBackupBranch.String(),
			Destination: &x.backupBranch,
			Sources:     cli.EnvVars("RELNOTE_BACKUP_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "backup-path",
			Usage:       "File path of the changelog backup",
			Category:    category,
			Value:       usecase.DefaultBackupPath,
			Destination: &x.backupPath,
			Sources:     cli.EnvVars("RELNOTE_BACKUP_PATH"),
		},
		&cli.StringFlag{
			Name:        "changelog-path",
			Usage:       "Changelog file updated by pull requests",
			Category:    category,
			Value:       usecase.DefaultChangelogPath,
			Destination: &x.changelogPath,
			Sources:     cli.EnvVars("RELNOTE_CHANGELOG_PATH"),
		},
		&cli.StringSliceFlag{
			Name:        "version-file",
			Usage:       "Candidate paths of the file declaring __version__, tried in order",
			Category:    category,
			Value:       usecase.DefaultVersionFilePaths,
			Destination: &x.versionFiles,
			Sources:     cli.EnvVars("RELNOTE_VERSION_FILE"),
		},
		&cli.BoolFlag{
			Name:        "strict-version",
			Usage:       "Accept only semantic versions such as 1.2.3",
			Category:    category,
			Destination: &x.strictVersion,
			Sources:     cli.EnvVars("RELNOTE_STRICT_VERSION"),
		},
	}
}

func (x *Target) Options() []usecase.Option {
	return []usecase.Option{
		usecase.WithBackupTarget(model.GitHubFileRef{
			GitHubRepo: model.GitHubRepo{Owner: x.backupOwner, RepoName: x.backupRepo},
			Branch:     types.BranchName(x.backupBranch),
			Path:       x.backupPath,
		}),
		usecase.WithChangelogPath(x.changelogPath),
		usecase.WithVersionFilePaths(x.versionFiles),
		usecase.WithStrictVersion(x.strictVersion),
	}
}

func (x Target) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Backup", x.backupOwner+"/"+x.backupRepo+"@"+x.backupBranch+":"+x.backupPath),
		slog.String("ChangelogPath", x.changelogPath),
		slog.Any("VersionFiles", x.versionFiles),
		slog.Bool("StrictVersion", x.strictVersion),
	)
}
