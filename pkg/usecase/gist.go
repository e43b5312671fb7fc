package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/model"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
)

const (
	gistDescription = "Shared Changelog from Release Note Manager"
	gistFilename    = "changes.md"
)

// CreateGist shares content as a secret gist.
func (x *UseCase) CreateGist(ctx context.Context, input *model.CreateGistInput) (*model.Gist, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gh, err := x.github()
	if err != nil {
		return nil, err
	}
	if err := gh.VerifyCredentials(ctx); err != nil {
		return nil, err
	}

	gist, err := gh.CreateGist(ctx, &model.NewGist{
		Description: gistDescription,
		Public:      false,
		Files:       map[string]string{gistFilename: input.Content},
	})
	if err != nil {
		if types.IsFailureKind(err, types.FailureAccessDenied) {
			return nil, goerr.Wrap(types.AccessDenied("Permission denied: Your GitHub token may not have permission to create Gists").WithCause(err),
				"failed to create gist")
		}
		return nil, goerr.Wrap(err, "failed to create gist")
	}

	logging.From(ctx).Info("Gist created", slog.String("url", gist.HTMLURL))
	return gist, nil
}

// FetchGist returns the first Markdown file of a gist. Files are examined in
// filename order.
func (x *UseCase) FetchGist(ctx context.Context, id types.GistID) (*model.GistFile, error) {
	id = types.GistID(strings.TrimSpace(string(id)))
	if id == "" {
		return nil, goerr.Wrap(types.ValidationError("Missing gist_id parameter"), "missing gist ID")
	}

	gh, err := x.github()
	if err != nil {
		return nil, err
	}
	if err := gh.VerifyCredentials(ctx); err != nil {
		return nil, err
	}

	gist, err := gh.GetGist(ctx, id)
	if err != nil {
		if types.IsFailureKind(err, types.FailureNotFound) {
			return nil, goerr.Wrap(types.NotFound(fmt.Sprintf("Gist %s not found", id)), "gist not found")
		}
		return nil, goerr.Wrap(err, "failed to get gist", goerr.V("gist_id", id))
	}

	for _, file := range gist.Files {
		if strings.HasSuffix(file.Filename, ".md") || file.Language == "Markdown" {
			logging.From(ctx).Info("Fetched Markdown file from gist",
				slog.String("gist_id", string(id)),
				slog.String("filename", file.Filename),
			)
			return &file, nil
		}
	}

	return nil, goerr.Wrap(types.NotFound("No Markdown file found in the Gist"), "no markdown file",
		goerr.V("gist_id", id))
}
