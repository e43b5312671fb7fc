package config

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/infra"
	"github.com/m-mizutani/relnote/pkg/infra/ghapi"
	"github.com/m-mizutani/relnote/pkg/infra/ghauth"
	"github.com/m-mizutani/relnote/pkg/infra/ghrest"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// GitHub holds the connection and credential settings of the GitHub instance.
// A token takes precedence over GitHub App settings.
type GitHub struct {
	apiURL string
	token  types.GitHubToken `masq:"secret"`

	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`

	timeout  time.Duration
	perPage  int64
	maxPages int64
}

func (x *GitHub) Flags() []cli.Flag {
	const category = "GitHub"

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API endpoint, e.g. https://github.example.com/api/v3 for Enterprise",
			Category:    category,
			Value:       types.DefaultGitHubAPIURL,
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("RELNOTE_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    category,
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("RELNOTE_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (used when no token is given)",
			Category:    category,
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("RELNOTE_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    category,
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("RELNOTE_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    category,
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("RELNOTE_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.DurationFlag{
			Name:        "request-timeout",
			Usage:       "Timeout of a GitHub read including retries",
			Category:    category,
			Value:       ghrest.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("RELNOTE_REQUEST_TIMEOUT"),
		},
		&cli.Int64Flag{
			Name:        "per-page",
			Usage:       "Records requested per page when listing",
			Category:    category,
			Value:       ghrest.DefaultPerPage,
			Destination: &x.perPage,
			Sources:     cli.EnvVars("RELNOTE_PER_PAGE"),
		},
		&cli.Int64Flag{
			Name:        "max-pages",
			Usage:       "Upper bound of pages fetched by one listing",
			Category:    category,
			Value:       ghrest.DefaultMaxPages,
			Destination: &x.maxPages,
			Sources:     cli.EnvVars("RELNOTE_MAX_PAGES"),
		},
	}
}

func (x *GitHub) credential() (*ghauth.Credential, error) {
	switch {
	case strings.TrimSpace(string(x.token)) != "":
		return ghauth.NewToken(x.token)
	case x.appID != 0:
		return ghauth.NewApp(x.appID, x.installID, x.privateKey, x.apiURL)
	default:
		return nil, nil
	}
}

// Configure builds the GitHub clients. Without credentials no client is set and
// API requests are answered with 401.
func (x *GitHub) Configure(ctx context.Context) ([]infra.Option, error) {
	if x.perPage <= 0 || x.perPage > 100 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "per-page must be between 1 and 100", goerr.V("per_page", x.perPage))
	}
	if x.maxPages <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "max-pages must be positive", goerr.V("max_pages", x.maxPages))
	}

	cred, err := x.credential()
	if err != nil {
		return nil, err
	}
	if cred == nil {
		logging.From(ctx).Warn("GitHub credentials are not configured")
		return nil, nil
	}

	httpClient, err := cred.HTTPClient(http.DefaultTransport)
	if err != nil {
		return nil, err
	}

	lister := ghrest.New(x.apiURL,
		ghrest.WithHTTPClient(httpClient),
		ghrest.WithTimeout(x.timeout),
		ghrest.WithPerPage(int(x.perPage)),
		ghrest.WithMaxPages(int(x.maxPages)),
	)

	github, err := ghapi.New(httpClient, x.apiURL, ghapi.WithAppAuth(cred.IsApp()))
	if err != nil {
		return nil, err
	}

	return []infra.Option{
		infra.WithGitHubLister(lister),
		infra.WithGitHub(github),
	}, nil
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("APIURL", x.apiURL),
		slog.Int("Token.len", len(x.token)),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallationID", int64(x.installID)),
		slog.Int("PrivateKey.len", len(x.privateKey)),
		slog.Duration("Timeout", x.timeout),
		slog.Int64("PerPage", x.perPage),
		slog.Int64("MaxPages", x.maxPages),
	)
}
