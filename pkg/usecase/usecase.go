package usecase

import (
	"log/slog"

	"github.com/m-mizutani/relnote/pkg/domain/interfaces"
	"github.com/m-mizutani/relnote/pkg/domain/model"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/infra"
)

const (
	DefaultChangelogPath = "CHANGES.md"
	DefaultBackupBranch  = types.BranchName("main")
	DefaultBackupPath    = "backup.md"
)

// DefaultVersionFilePaths are tried in order when looking for the version
// declaration of the package.
var DefaultVersionFilePaths = []string{
	"auditree-central/__init__.py",
	"auditree_central/__init__.py",
	"__init__.py",
}

type UseCase struct {
	clients *infra.Clients

	backup           model.GitHubFileRef
	changelogPath    string
	versionFilePaths []string
	strictVersion    bool
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithBackupTarget sets the file that holds the changelog backup.
func WithBackupTarget(target model.GitHubFileRef) Option {
	return func(x *UseCase) {
		x.backup = target
	}
}

func WithChangelogPath(path string) Option {
	return func(x *UseCase) {
		x.changelogPath = path
	}
}

func WithVersionFilePaths(paths []string) Option {
	return func(x *UseCase) {
		x.versionFilePaths = paths
	}
}

// WithStrictVersion requires versions to be semantic versions such as 1.2.3.
func WithStrictVersion(strict bool) Option {
	return func(x *UseCase) {
		x.strictVersion = strict
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:          clients,
		changelogPath:    DefaultChangelogPath,
		versionFilePaths: DefaultVersionFilePaths,
		backup: model.GitHubFileRef{
			Branch: DefaultBackupBranch,
			Path:   DefaultBackupPath,
		},
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

func (x *UseCase) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backup", x.backup.GitHubRepo.String()+"@"+x.backup.Branch.String()+":"+x.backup.Path),
		slog.String("changelog_path", x.changelogPath),
		slog.Any("version_file_paths", x.versionFilePaths),
		slog.Bool("strict_version", x.strictVersion),
	)
}

func (x *UseCase) github() (interfaces.GitHub, error) {
	if !x.clients.HasGitHub() {
		return nil, types.Unauthorized("GitHub token is not configured")
	}
	return x.clients.GitHub(), nil
}

func (x *UseCase) githubLister() (interfaces.GitHubLister, error) {
	if !x.clients.HasGitHub() {
		return nil, types.Unauthorized("GitHub token is not configured")
	}
	return x.clients.GitHubLister(), nil
}
