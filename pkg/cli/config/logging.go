package config

import (
	"log/slog"

	"github.com/m-mizutani/relnote/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logging holds the global log flags shared by every subcommand.
type Logging struct {
	level  string
	format string
	output string
}

func (x *Logging) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [trace|debug|info|warn|error]",
			Aliases:     []string{"l"},
			Category:    "Logging",
			Sources:     cli.EnvVars("RELNOTE_LOG_LEVEL"),
			Destination: &x.level,
			Value:       "info",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [text|json]",
			Aliases:     []string{"f"},
			Category:    "Logging",
			Sources:     cli.EnvVars("RELNOTE_LOG_FORMAT"),
			Destination: &x.format,
			Value:       "text",
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log destination [-|stdout|stderr|<file>]",
			Aliases:     []string{"o"},
			Category:    "Logging",
			Sources:     cli.EnvVars("RELNOTE_LOG_OUTPUT"),
			Destination: &x.output,
			Value:       "-",
		},
	}
}

// Configure installs the default logger.
func (x *Logging) Configure() error {
	return logging.Configure(x.format, x.level, x.output)
}

func (x *Logging) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Level", x.level),
		slog.String("Format", x.format),
		slog.String("Output", x.output),
	)
}
