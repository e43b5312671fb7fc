package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/types"
)

var ptnValidRepoToken = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// GitHubRepo identifies a repository on the configured GitHub instance.
type GitHubRepo struct {
	Owner    string `json:"owner"`
	RepoName string `json:"repo"`
}

// NewGitHubRepo trims and validates owner and repository name.
func NewGitHubRepo(owner, repoName string) (GitHubRepo, error) {
	repo := GitHubRepo{
		Owner:    strings.TrimSpace(owner),
		RepoName: strings.TrimSpace(repoName),
	}
	if err := repo.Validate(); err != nil {
		return GitHubRepo{}, err
	}
	return repo, nil
}

func (x GitHubRepo) Validate() error {
	if x.Owner == "" || x.RepoName == "" {
		return goerr.Wrap(types.ValidationError("Repository owner and name cannot be empty"), "invalid repository")
	}
	if !ptnValidRepoToken.MatchString(x.Owner) || !ptnValidRepoToken.MatchString(x.RepoName) {
		return goerr.Wrap(types.ValidationError("Repository owner and name can only contain alphanumeric characters, hyphens, underscores, and dots"),
			"invalid repository",
			goerr.V("owner", x.Owner),
			goerr.V("repo", x.RepoName),
		)
	}
	return nil
}

func (x GitHubRepo) String() string {
	return x.Owner + "/" + x.RepoName
}

// GitHubFileRef points at a file on a branch.
type GitHubFileRef struct {
	GitHubRepo
	Branch types.BranchName
	Path   string
}

// GitHubFile is a decoded file with the blob SHA required to update it.
type GitHubFile struct {
	GitHubFileRef
	Content string
	SHA     types.CommitSHA
}

// PutFileInput creates a file (empty SHA) or updates the blob identified by SHA.
// GitHub rejects an update whose SHA is no longer the head blob.
type PutFileInput struct {
	GitHubFileRef
	Message string
	Content string
	SHA     types.CommitSHA
}

type Commit struct {
	SHA     types.CommitSHA `json:"sha"`
	HTMLURL string          `json:"html_url"`

	// Created is true when the commit added a new file instead of updating one.
	Created bool `json:"-"`
}

type NewPullRequest struct {
	GitHubRepo
	Title string
	Body  string
	Head  types.BranchName
	Base  types.BranchName
}

type PullRequest struct {
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
	Title   string `json:"title"`
}

type NewGist struct {
	Description string
	Public      bool
	Files       map[string]string
}

type GistFile struct {
	Filename string
	Language string
	Content  string
}

type Gist struct {
	ID      types.GistID
	HTMLURL string
	Files   []GistFile
}
