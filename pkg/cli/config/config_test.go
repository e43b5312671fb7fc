package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relnote/pkg/cli/config"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/infra"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// parse runs a command holding flags so that defaults and arguments are
// applied to the config structs.
func parse(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestGitHubConfigure(t *testing.T) {
	t.Run("no credentials yields no clients", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("RELNOTE_GITHUB_TOKEN", "")

		var cfg config.GitHub
		parse(t, cfg.Flags())

		options := gt.R1(cfg.Configure(context.Background())).NoError(t)
		gt.V(t, len(options)).Equal(0)
		gt.False(t, infra.New(options...).HasGitHub())
	})

	t.Run("token configures both clients", func(t *testing.T) {
		var cfg config.GitHub
		parse(t, cfg.Flags(), "--github-token", "ghp_dummy")

		options := gt.R1(cfg.Configure(context.Background())).NoError(t)
		clients := infra.New(options...)
		gt.True(t, clients.HasGitHub())
		gt.V(t, clients.GitHubLister() != nil).Equal(true)
	})

	t.Run("per-page above 100 is rejected", func(t *testing.T) {
		var cfg config.GitHub
		parse(t, cfg.Flags(), "--github-token", "ghp_dummy", "--per-page", "101")

		_, err := cfg.Configure(context.Background())
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("incomplete GitHub App settings are rejected", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("RELNOTE_GITHUB_TOKEN", "")

		var cfg config.GitHub
		parse(t, cfg.Flags(), "--github-app-id", "1234")

		_, err := cfg.Configure(context.Background())
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestTargetFlags(t *testing.T) {
	var cfg config.Target
	flags := cfg.Flags()

	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}
	for _, name := range []string{"backup-owner", "backup-repo", "backup-branch", "backup-path", "changelog-path", "version-file", "strict-version"} {
		gt.True(t, names[name])
	}

	parse(t, flags, "--backup-owner", "octo", "--backup-repo", "notes")
	gt.V(t, len(cfg.Options())).Equal(4)
}

func TestLoggingConfigure(t *testing.T) {
	t.Cleanup(func() {
		gt.NoError(t, logging.Configure("text", "info", "stdout"))
	})

	t.Run("defaults are valid", func(t *testing.T) {
		var cfg config.Logging
		parse(t, cfg.Flags())
		gt.NoError(t, cfg.Configure())
	})

	t.Run("environment selects json to stderr", func(t *testing.T) {
		t.Setenv("RELNOTE_LOG_FORMAT", "json")
		t.Setenv("RELNOTE_LOG_OUTPUT", "stderr")
		var cfg config.Logging
		parse(t, cfg.Flags())
		gt.NoError(t, cfg.Configure())
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		var cfg config.Logging
		parse(t, cfg.Flags(), "--log-format", "yaml")
		err := cfg.Configure()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
