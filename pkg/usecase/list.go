package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/model"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
)

// ListBranches returns every branch of repo sorted by name, ignoring case.
func (x *UseCase) ListBranches(ctx context.Context, repo model.GitHubRepo) ([]model.Branch, error) {
	lister, err := x.githubLister()
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Fetching all branches", slog.String("repo", repo.String()))
	branches, err := lister.ListBranches(ctx, repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list branches", goerr.V("repo", repo.String()))
	}

	sort.SliceStable(branches, func(i, j int) bool {
		return strings.ToLower(branches[i].Name) < strings.ToLower(branches[j].Name)
	})

	logging.From(ctx).Info("Fetched branches", slog.Int("count", len(branches)))
	return branches, nil
}

func (x *UseCase) ListMilestones(ctx context.Context, repo model.GitHubRepo) ([]model.Milestone, error) {
	lister, err := x.githubLister()
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Fetching all milestones", slog.String("repo", repo.String()))
	milestones, err := lister.ListMilestones(ctx, repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list milestones", goerr.V("repo", repo.String()))
	}

	logging.From(ctx).Info("Fetched milestones", slog.Int("count", len(milestones)))
	return milestones, nil
}

func (x *UseCase) ListIssues(ctx context.Context, repo model.GitHubRepo, milestone string) ([]model.Issue, error) {
	milestone = strings.TrimSpace(milestone)
	if milestone == "" {
		return nil, goerr.Wrap(types.ValidationError("Missing milestone parameter"), "missing milestone",
			goerr.V("repo", repo.String()))
	}

	lister, err := x.githubLister()
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Fetching issues",
		slog.String("repo", repo.String()),
		slog.String("milestone", milestone),
	)
	issues, err := lister.ListIssues(ctx, repo, milestone)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list issues",
			goerr.V("repo", repo.String()),
			goerr.V("milestone", milestone),
		)
	}

	logging.From(ctx).Info("Fetched issues", slog.Int("count", len(issues)))
	return issues, nil
}
