package server

import (
	"net/http"
	"strings"

	"log/slog"

	"github.com/m-mizutani/relnote/pkg/domain/interfaces"
	"github.com/m-mizutani/relnote/pkg/domain/model"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
)

type branchResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type milestoneResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	State       string  `json:"state"`
}

func repoFromQuery(r *http.Request) (model.GitHubRepo, error) {
	q := r.URL.Query()
	return model.NewGitHubRepo(q.Get("owner"), q.Get("repo"))
}

func getBranches(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo, err := repoFromQuery(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		branches, err := uc.ListBranches(r.Context(), repo)
		if err != nil {
			writeFailure(w, r, "Failed to fetch branches", err)
			return
		}

		resp := make([]branchResponse, 0, len(branches))
		for _, b := range branches {
			resp = append(resp, branchResponse{ID: b.Name, Name: b.Name})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func getMilestones(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo, err := repoFromQuery(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		milestones, err := uc.ListMilestones(r.Context(), repo)
		if err != nil {
			writeFailure(w, r, "Failed to fetch milestones", err)
			return
		}

		resp := make([]milestoneResponse, 0, len(milestones))
		for _, m := range milestones {
			resp = append(resp, milestoneResponse{
				ID:          m.Number,
				Title:       m.Title,
				Description: m.Description,
				State:       m.State,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func getIssues(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo, err := repoFromQuery(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		issues, err := uc.ListIssues(r.Context(), repo, r.URL.Query().Get("milestone"))
		if err != nil {
			writeFailure(w, r, "Failed to fetch issues", err)
			return
		}

		if issues == nil {
			issues = []model.Issue{}
		}
		writeJSON(w, http.StatusOK, issues)
	}
}

func pushContent(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.SaveBackupInput
		if err := decodeJSON(r, &input); err != nil {
			writeError(w, r, err)
			return
		}

		commit, err := uc.SaveBackup(r.Context(), &input)
		if err != nil {
			writeError(w, r, err)
			return
		}

		msg := "File updated successfully"
		if commit.Created {
			msg = "File created successfully"
		}
		writeJSON(w, http.StatusOK, statusResponse{
			Message: msg,
			Status:  "success",
			Commit:  toCommitResponse(commit),
		})
	}
}

func fetchContent(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := uc.LoadBackup(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"content": content})
	}
}

func updateVersion(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.UpdateVersionInput
		if err := decodeJSON(r, &input); err != nil {
			writeError(w, r, err)
			return
		}

		commit, err := uc.UpdateVersion(r.Context(), &input)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, statusResponse{
			Message: "Version updated successfully",
			Status:  "success",
			Commit:  toCommitResponse(commit),
		})
	}
}

func createPullRequest(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.CreatePullRequestInput
		if err := decodeJSON(r, &input); err != nil {
			writeError(w, r, err)
			return
		}

		pr, err := uc.CreateChangelogPullRequest(r.Context(), &input)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, statusResponse{
			Message: "Pull request created successfully",
			Status:  "success",
			PullRequest: &pullRequestResponse{
				Number:  pr.Number,
				HTMLURL: pr.HTMLURL,
				Title:   pr.Title,
			},
		})
	}
}

func createGistLink(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.CreateGistInput
		if err := decodeJSON(r, &input); err != nil {
			writeError(w, r, err)
			return
		}

		gist, err := uc.CreateGist(r.Context(), &input)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{
			"gist_url": gist.HTMLURL,
			"message":  "Gist link created successfully",
			"status":   "success",
		})
	}
}

func fetchGist(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gistID := types.GistID(strings.TrimSpace(q.Get("gist_id")))

		// The configured GitHub instance serves gists; the flag from the client
		// is kept for tracing only.
		logging.From(r.Context()).Debug("Fetching gist",
			slog.String("gist_id", string(gistID)),
			slog.Bool("is_enterprise", strings.EqualFold(q.Get("is_enterprise"), "true")),
		)

		file, err := uc.FetchGist(r.Context(), gistID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"content":  file.Content,
			"filename": file.Filename,
		})
	}
}

func toCommitResponse(commit *model.Commit) *commitResponse {
	return &commitResponse{
		SHA:     string(commit.SHA),
		HTMLURL: commit.HTMLURL,
	}
}
