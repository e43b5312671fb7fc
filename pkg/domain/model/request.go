package model

import (
	"regexp"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/types"
)

// requireFields reports fields whose value is empty or whitespace only, in
// alphabetical order.
func requireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)
	return goerr.Wrap(types.ValidationError("Missing required fields: "+strings.Join(missing, ", ")),
		"invalid request", goerr.V("missing", missing))
}

// SaveBackupInput is the body of the backup push.
type SaveBackupInput struct {
	Content       string `json:"content"`
	CommitMessage string `json:"commitMessage"`
}

// Validate trims every field and checks the required ones.
func (x *SaveBackupInput) Validate() error {
	x.Content = strings.TrimSpace(x.Content)
	x.CommitMessage = strings.TrimSpace(x.CommitMessage)

	return requireFields(map[string]string{
		"content":       x.Content,
		"commitMessage": x.CommitMessage,
	})
}

// UpdateVersionInput asks for the version file on Branch to be patched to Version.
type UpdateVersionInput struct {
	Owner         string           `json:"owner"`
	Repo          string           `json:"repo"`
	Branch        types.BranchName `json:"branch"`
	Version       string           `json:"version"`
	CommitMessage string           `json:"commitMessage"`
}

// Validate trims every field and checks the required ones, the repository and
// the version.
func (x *UpdateVersionInput) Validate() error {
	x.Owner = strings.TrimSpace(x.Owner)
	x.Repo = strings.TrimSpace(x.Repo)
	x.Branch = types.BranchName(strings.TrimSpace(string(x.Branch)))
	x.Version = strings.TrimSpace(x.Version)
	x.CommitMessage = strings.TrimSpace(x.CommitMessage)

	if err := requireFields(map[string]string{
		"owner":         x.Owner,
		"repo":          x.Repo,
		"branch":        string(x.Branch),
		"version":       x.Version,
		"commitMessage": x.CommitMessage,
	}); err != nil {
		return err
	}
	if _, err := NewGitHubRepo(x.Owner, x.Repo); err != nil {
		return err
	}
	return ValidateVersion(x.Version)
}

func (x UpdateVersionInput) GitHubRepo() GitHubRepo {
	return GitHubRepo{Owner: x.Owner, RepoName: x.Repo}
}

// CreatePullRequestInput describes a changelog pull request against Branch.
// Version is optional; when set, the version file is bumped on the new branch.
type CreatePullRequestInput struct {
	Owner     string           `json:"owner"`
	Repo      string           `json:"repo"`
	Branch    types.BranchName `json:"branch"`
	Content   string           `json:"content"`
	Version   string           `json:"version,omitempty"`
	PRTitle   string           `json:"prTitle"`
	PRBody    string           `json:"prBody"`
	Milestone string           `json:"milestone"`
}

// Validate trims every field and checks the required ones, the repository and
// the version when one is given.
func (x *CreatePullRequestInput) Validate() error {
	x.Owner = strings.TrimSpace(x.Owner)
	x.Repo = strings.TrimSpace(x.Repo)
	x.Branch = types.BranchName(strings.TrimSpace(string(x.Branch)))
	x.Content = strings.TrimSpace(x.Content)
	x.Version = strings.TrimSpace(x.Version)
	x.PRTitle = strings.TrimSpace(x.PRTitle)
	x.PRBody = strings.TrimSpace(x.PRBody)
	x.Milestone = strings.TrimSpace(x.Milestone)

	if err := requireFields(map[string]string{
		"owner":     x.Owner,
		"repo":      x.Repo,
		"branch":    string(x.Branch),
		"content":   x.Content,
		"prTitle":   x.PRTitle,
		"prBody":    x.PRBody,
		"milestone": x.Milestone,
	}); err != nil {
		return err
	}
	if _, err := NewGitHubRepo(x.Owner, x.Repo); err != nil {
		return err
	}
	if x.Version != "" {
		return ValidateVersion(x.Version)
	}
	return nil
}

func (x CreatePullRequestInput) GitHubRepo() GitHubRepo {
	return GitHubRepo{Owner: x.Owner, RepoName: x.Repo}
}

// CreateGistInput is the body of the gist share.
type CreateGistInput struct {
	Content string `json:"content"`
}

func (x *CreateGistInput) Validate() error {
	x.Content = strings.TrimSpace(x.Content)
	return requireFields(map[string]string{"content": x.Content})
}

var ptnBranchUnsafe = regexp.MustCompile(`[^A-Za-z0-9]`)

const changelogBranchPrefix = "update-changelog-"

// ChangelogBranchName derives the head branch of a changelog pull request from
// a milestone title. "Release 1.2" becomes "update-changelog-Release-1-2".
func ChangelogBranchName(milestone string) types.BranchName {
	return types.BranchName(changelogBranchPrefix + ptnBranchUnsafe.ReplaceAllLiteralString(milestone, "-"))
}
