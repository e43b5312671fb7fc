package types

import "log/slog"

type (
	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	BranchName          string
	CommitSHA           string
	GistID              string
)

// DefaultGitHubAPIURL is the public GitHub REST endpoint. Enterprise instances use https://<host>/api/v3.
const DefaultGitHubAPIURL = "https://api.github.com"

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x BranchName) String() string { return string(x) }
