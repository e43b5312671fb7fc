package config

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Sentry reports unhandled API failures. Without a DSN the server runs with reporting disabled.
type Sentry struct {
	dsn         string
	environment string
	release     string
	sampleRate  float64
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for reporting unhandled errors",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("RELNOTE_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment, e.g. production",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("RELNOTE_SENTRY_ENV"),
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Release name attached to reported events",
			Category:    "Sentry",
			Destination: &x.release,
			Sources:     cli.EnvVars("RELNOTE_SENTRY_RELEASE"),
		},
		&cli.FloatFlag{
			Name:        "sentry-sample-rate",
			Usage:       "Ratio of errors sent to Sentry, between 0 and 1",
			Category:    "Sentry",
			Value:       1.0,
			Destination: &x.sampleRate,
			Sources:     cli.EnvVars("RELNOTE_SENTRY_SAMPLE_RATE"),
		},
	}
}

func (x *Sentry) Configure(ctx context.Context) error {
	if x.dsn == "" {
		logging.From(ctx).Warn("sentry is not configured, unhandled errors are only logged")
		return nil
	}

	if x.sampleRate < 0 || x.sampleRate > 1 {
		return goerr.Wrap(types.ErrInvalidOption, "sentry sample rate must be between 0 and 1",
			goerr.V("sample_rate", x.sampleRate))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
		Release:     x.release,
		SampleRate:  x.sampleRate,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry")
	}

	return nil
}

// Flush waits for queued events before the process exits.
func (x *Sentry) Flush() {
	if x.dsn == "" {
		return
	}
	sentry.Flush(2 * time.Second)
}

// LogValue hides the DSN key and keeps only the host and project path.
func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("DSN", redactDSN(x.dsn)),
		slog.String("Environment", x.environment),
		slog.String("Release", x.release),
		slog.Float64("SampleRate", x.sampleRate),
	)
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return ""
	}
	u, err := url.Parse(dsn)
	if err != nil || u.Host == "" {
		return "(invalid)"
	}
	u.User = nil
	return u.String()
}
