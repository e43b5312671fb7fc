package ghapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/interfaces"
	"github.com/m-mizutani/relnote/pkg/domain/model"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
)

// Client performs single-shot GitHub operations (refs, contents, pull requests
// and gists) through go-github. Nothing here is retried.
type Client struct {
	client  *github.Client
	appAuth bool
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithAppAuth marks httpClient as authenticated by a GitHub App installation.
// VerifyCredentials is then skipped because installation tokens cannot read
// the authenticated user.
func WithAppAuth(enabled bool) Option {
	return func(x *Client) {
		x.appAuth = enabled
	}
}

// New creates a Client. apiURL other than types.DefaultGitHubAPIURL selects a
// GitHub Enterprise instance, e.g. https://github.example.com/api/v3.
func New(httpClient *http.Client, apiURL string, options ...Option) (*Client, error) {
	client := github.NewClient(httpClient)

	if apiURL != "" && strings.TrimRight(apiURL, "/") != types.DefaultGitHubAPIURL {
		baseURL, err := url.Parse(strings.TrimRight(apiURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", apiURL), goerr.V("error", err.Error()))
		}
		client.BaseURL = baseURL
	}

	x := &Client{client: client}
	for _, opt := range options {
		opt(x)
	}
	return x, nil
}

func (x *Client) VerifyCredentials(ctx context.Context) error {
	if x.appAuth {
		return nil
	}

	user, _, err := x.client.Users.Get(ctx, "")
	if err != nil {
		return toFailure(ctx, err, "failed to verify GitHub credentials")
	}

	logging.From(ctx).Debug("GitHub credentials verified", slog.String("login", user.GetLogin()))
	return nil
}

func (x *Client) getRef(ctx context.Context, repo model.GitHubRepo, branch types.BranchName) (*github.Reference, error) {
	ref, _, err := x.client.Git.GetRef(ctx, repo.Owner, repo.RepoName, "heads/"+branch.String())
	if err != nil {
		return nil, toFailure(ctx, err, "failed to get branch ref",
			goerr.V("repo", repo.String()),
			goerr.V("branch", branch),
		)
	}
	return ref, nil
}

func (x *Client) BranchExists(ctx context.Context, repo model.GitHubRepo, branch types.BranchName) (bool, error) {
	if _, err := x.getRef(ctx, repo, branch); err != nil {
		if types.IsFailureKind(err, types.FailureNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (x *Client) GetBranchHeadSHA(ctx context.Context, repo model.GitHubRepo, branch types.BranchName) (types.CommitSHA, error) {
	ref, err := x.getRef(ctx, repo, branch)
	if err != nil {
		return "", err
	}
	return types.CommitSHA(ref.GetObject().GetSHA()), nil
}

func (x *Client) CreateBranch(ctx context.Context, repo model.GitHubRepo, branch types.BranchName, from types.CommitSHA) error {
	ref := &github.Reference{
		Ref:    github.String("refs/heads/" + branch.String()),
		Object: &github.GitObject{SHA: github.String(string(from))},
	}

	if _, _, err := x.client.Git.CreateRef(ctx, repo.Owner, repo.RepoName, ref); err != nil {
		return toFailure(ctx, err, "failed to create branch",
			goerr.V("repo", repo.String()),
			goerr.V("branch", branch),
			goerr.V("from", from),
		)
	}

	logging.From(ctx).Info("Created branch",
		slog.String("repo", repo.String()),
		slog.String("branch", branch.String()),
		slog.String("from", string(from)),
	)
	return nil
}

func (x *Client) GetFile(ctx context.Context, ref model.GitHubFileRef) (*model.GitHubFile, error) {
	opt := &github.RepositoryContentGetOptions{Ref: ref.Branch.String()}
	file, _, _, err := x.client.Repositories.GetContents(ctx, ref.Owner, ref.RepoName, ref.Path, opt)
	if err != nil {
		return nil, toFailure(ctx, err, "failed to get file",
			goerr.V("repo", ref.GitHubRepo.String()),
			goerr.V("branch", ref.Branch),
			goerr.V("path", ref.Path),
		)
	}
	if file == nil {
		return nil, goerr.Wrap(types.NotFound("Path is not a file: "+ref.Path), "path is a directory",
			goerr.V("repo", ref.GitHubRepo.String()),
			goerr.V("path", ref.Path),
		)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, goerr.Wrap(types.Unhandled("Failed to decode file content").WithCause(err), "failed to decode file",
			goerr.V("path", ref.Path),
			goerr.V("encoding", file.GetEncoding()),
		)
	}

	return &model.GitHubFile{
		GitHubFileRef: ref,
		Content:       content,
		SHA:           types.CommitSHA(file.GetSHA()),
	}, nil
}

func (x *Client) PutFile(ctx context.Context, input *model.PutFileInput) (*model.Commit, error) {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(input.Message),
		Content: []byte(input.Content),
		Branch:  github.String(input.Branch.String()),
	}

	var (
		resp *github.RepositoryContentResponse
		err  error
	)
	if input.SHA == "" {
		resp, _, err = x.client.Repositories.CreateFile(ctx, input.Owner, input.RepoName, input.Path, opts)
	} else {
		opts.SHA = github.String(string(input.SHA))
		resp, _, err = x.client.Repositories.UpdateFile(ctx, input.Owner, input.RepoName, input.Path, opts)
	}
	if err != nil {
		return nil, toFailure(ctx, err, "failed to put file",
			goerr.V("repo", input.GitHubRepo.String()),
			goerr.V("branch", input.Branch),
			goerr.V("path", input.Path),
			goerr.V("update", input.SHA != ""),
		)
	}

	commit := &model.Commit{
		SHA:     types.CommitSHA(resp.Commit.GetSHA()),
		HTMLURL: resp.Commit.GetHTMLURL(),
		Created: input.SHA == "",
	}
	logging.From(ctx).Info("Committed file",
		slog.String("repo", input.GitHubRepo.String()),
		slog.String("path", input.Path),
		slog.String("sha", string(commit.SHA)),
	)
	return commit, nil
}

func (x *Client) CreatePullRequest(ctx context.Context, input *model.NewPullRequest) (*model.PullRequest, error) {
	pr, _, err := x.client.PullRequests.Create(ctx, input.Owner, input.RepoName, &github.NewPullRequest{
		Title: github.String(input.Title),
		Body:  github.String(input.Body),
		Head:  github.String(input.Head.String()),
		Base:  github.String(input.Base.String()),
	})
	if err != nil {
		return nil, toFailure(ctx, err, "failed to create pull request",
			goerr.V("repo", input.GitHubRepo.String()),
			goerr.V("head", input.Head),
			goerr.V("base", input.Base),
		)
	}

	return &model.PullRequest{
		Number:  pr.GetNumber(),
		HTMLURL: pr.GetHTMLURL(),
		Title:   pr.GetTitle(),
	}, nil
}

func (x *Client) CreateGist(ctx context.Context, input *model.NewGist) (*model.Gist, error) {
	files := make(map[github.GistFilename]github.GistFile, len(input.Files))
	for name, content := range input.Files {
		files[github.GistFilename(name)] = github.GistFile{Content: github.String(content)}
	}

	gist, _, err := x.client.Gists.Create(ctx, &github.Gist{
		Description: github.String(input.Description),
		Public:      github.Bool(input.Public),
		Files:       files,
	})
	if err != nil {
		return nil, toFailure(ctx, err, "failed to create gist")
	}

	return toGist(gist), nil
}

func (x *Client) GetGist(ctx context.Context, id types.GistID) (*model.Gist, error) {
	gist, _, err := x.client.Gists.Get(ctx, string(id))
	if err != nil {
		return nil, toFailure(ctx, err, "failed to get gist", goerr.V("gist_id", id))
	}
	return toGist(gist), nil
}

// toGist converts files sorted by filename.
func toGist(gist *github.Gist) *model.Gist {
	out := &model.Gist{
		ID:      types.GistID(gist.GetID()),
		HTMLURL: gist.GetHTMLURL(),
	}
	for name, file := range gist.Files {
		filename := file.GetFilename()
		if filename == "" {
			filename = string(name)
		}
		out.Files = append(out.Files, model.GistFile{
			Filename: filename,
			Language: file.GetLanguage(),
			Content:  file.GetContent(),
		})
	}
	sort.Slice(out.Files, func(i, j int) bool {
		return out.Files[i].Filename < out.Files[j].Filename
	})
	return out
}

// toFailure classifies an error returned by go-github.
func toFailure(ctx context.Context, err error, msg string, options ...goerr.Option) error {
	var failure *types.Failure

	var rateLimitErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var respErr *github.ErrorResponse

	switch {
	case errors.As(err, &rateLimitErr), errors.As(err, &abuseErr):
		failure = types.AccessDenied("Rate limit exceeded")

	case errors.As(err, &respErr) && respErr.Response != nil:
		status := respErr.Response.StatusCode
		switch status {
		case http.StatusUnauthorized:
			failure = types.Unauthorized("Authentication failed. Please check your GitHub token.")
		case http.StatusForbidden:
			failure = types.AccessDenied("Rate limit exceeded or access denied")
		case http.StatusNotFound:
			failure = types.NotFound("Resource not found")
		default:
			failure = types.HTTPError(status, respErr.Message)
		}

	case errors.Is(err, context.DeadlineExceeded):
		failure = types.Timeout("Request to GitHub timed out")

	default:
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			failure = types.ConnectionError("Connection error occurred: " + urlErr.Err.Error())
		} else {
			failure = types.Unhandled(err.Error())
		}
	}

	level := slog.LevelError
	if failure.Kind == types.FailureNotFound {
		level = slog.LevelDebug
	}
	logging.From(ctx).Log(ctx, level, msg, slog.Any("failure", failure), slog.Any("error", err))
	return goerr.Wrap(failure.WithCause(err), msg, options...)
}
