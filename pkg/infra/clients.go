package infra

import (
	"github.com/m-mizutani/relnote/pkg/domain/interfaces"
)

// Clients bundles the GitHub gateways. Both are nil when no credentials are
// configured; use cases report that as unauthorized.
type Clients struct {
	githubLister interfaces.GitHubLister
	github       interfaces.GitHub
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubLister() interfaces.GitHubLister {
	return x.githubLister
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}

// HasGitHub reports whether both gateways are configured.
func (x *Clients) HasGitHub() bool {
	return x.githubLister != nil && x.github != nil
}

func WithGitHubLister(client interfaces.GitHubLister) Option {
	return func(x *Clients) {
		x.githubLister = client
	}
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}
