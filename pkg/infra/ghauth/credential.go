package ghauth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"golang.org/x/oauth2"
)

// Credential authenticates requests to GitHub either with a personal access
// token or as a GitHub App installation.
type Credential struct {
	token types.GitHubToken

	appID     types.GitHubAppID
	installID types.GitHubAppInstallID
	pem       types.GitHubAppPrivateKey

	apiURL string
}

func NewToken(token types.GitHubToken) (*Credential, error) {
	if strings.TrimSpace(string(token)) == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}
	return &Credential{token: token}, nil
}

// NewApp creates an installation credential. apiURL is used to mint installation
// tokens and must point at the same instance as the API client.
func NewApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, apiURL string) (*Credential, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	return &Credential{
		appID:     appID,
		installID: installID,
		pem:       pem,
		apiURL:    strings.TrimRight(apiURL, "/"),
	}, nil
}

// IsApp reports whether requests are sent as a GitHub App installation.
// Installation tokens cannot read /user.
func (x *Credential) IsApp() bool {
	return x.appID != 0
}

// HTTPClient returns a client whose transport adds authentication to every
// request sent through base. A nil base means http.DefaultTransport.
func (x *Credential) HTTPClient(base http.RoundTripper) (*http.Client, error) {
	if base == nil {
		base = http.DefaultTransport
	}

	if !x.IsApp() {
		src := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: string(x.token),
			TokenType:   "Bearer",
		})
		return &http.Client{Transport: &oauth2.Transport{Source: src, Base: base}}, nil
	}

	itr, err := ghinstallation.New(base, int64(x.appID), int64(x.installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "Failed to create github app transport", goerr.V("appID", x.appID))
	}
	if x.apiURL != "" && x.apiURL != types.DefaultGitHubAPIURL {
		itr.BaseURL = x.apiURL
	}

	return &http.Client{Transport: itr}, nil
}

func (x *Credential) LogValue() slog.Value {
	if x.IsApp() {
		return slog.GroupValue(
			slog.String("mode", "app"),
			slog.Any("appID", x.appID),
			slog.Any("installID", x.installID),
			slog.Any("privateKey", x.pem),
		)
	}
	return slog.GroupValue(
		slog.String("mode", "token"),
		slog.Any("token", x.token),
	)
}
