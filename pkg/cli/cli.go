package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/relnote/pkg/cli/config"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Version is overwritten at build time with -ldflags "-X".
var Version = "dev"

type CLI struct {
	version string
}

type Option func(*CLI)

// WithVersion overrides the version reported by --version.
func WithVersion(v string) Option {
	return func(x *CLI) {
		x.version = v
	}
}

func New(options ...Option) *CLI {
	x := &CLI{version: Version}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(ctx context.Context, argv []string) error {
	var logCfg config.Logging

	app := &cli.Command{
		Name:    "relnote",
		Usage:   "Backend that drafts release notes from GitHub milestones and opens changelog pull requests",
		Version: x.version,
		Flags:   logCfg.Flags(),
		Commands: []*cli.Command{
			serveCommand(),
			bumpCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := logCfg.Configure(); err != nil {
				return ctx, err
			}
			logging.Default().Debug("relnote started",
				slog.String("version", x.version),
				slog.Any("logging", &logCfg),
			)
			return ctx, nil
		},
	}

	if err := app.Run(ctx, argv); err != nil {
		logging.Default().Error("relnote exited with error", "error", err)
		return err
	}

	return nil
}
