package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relnote/pkg/controller/server"
	"github.com/m-mizutani/relnote/pkg/domain/mock"
	"github.com/m-mizutani/relnote/pkg/domain/model"
	"github.com/m-mizutani/relnote/pkg/domain/types"
)

func serve(t *testing.T, uc *mock.UseCaseMock, method, target, body string) (int, []byte) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.New(uc).Mux().ServeHTTP(rec, req)

	return rec.Code, rec.Body.Bytes()
}

func decodeBody[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	gt.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestListBranches(t *testing.T) {
	t.Run("branches are reshaped", func(t *testing.T) {
		var calledRepo model.GitHubRepo
		uc := &mock.UseCaseMock{
			ListBranchesFunc: func(ctx context.Context, repo model.GitHubRepo) ([]model.Branch, error) {
				calledRepo = repo
				return []model.Branch{{Name: "develop"}, {Name: "main"}}, nil
			},
		}

		code, body := serve(t, uc, http.MethodGet, "/api/branches?owner=%20octo%20&repo=demo", "")
		gt.V(t, code).Equal(http.StatusOK)
		gt.V(t, calledRepo).Equal(model.GitHubRepo{Owner: "octo", RepoName: "demo"})

		resp := decodeBody[[]map[string]string](t, body)
		gt.V(t, resp).Equal([]map[string]string{
			{"id": "develop", "name": "develop"},
			{"id": "main", "name": "main"},
		})
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListBranchesFunc: func(ctx context.Context, repo model.GitHubRepo) ([]model.Branch, error) {
				return nil, nil
			},
		}

		code, body := serve(t, uc, http.MethodGet, "/api/branches?owner=octo&repo=demo", "")
		gt.V(t, code).Equal(http.StatusOK)
		gt.V(t, string(body)).Equal("[]")
	})

	t.Run("invalid repository is rejected before calling GitHub", func(t *testing.T) {
		uc := &mock.UseCaseMock{}

		code, body := serve(t, uc, http.MethodGet, "/api/branches?owner=octo&repo=de%2Fmo", "")
		gt.V(t, code).Equal(http.StatusBadRequest)
		gt.V(t, decodeBody[map[string]string](t, body)["error"]).
			Equal("Repository owner and name can only contain alphanumeric characters, hyphens, underscores, and dots")
		gt.V(t, len(uc.ListBranchesCalls())).Equal(0)
	})

	t.Run("missing owner", func(t *testing.T) {
		code, body := serve(t, &mock.UseCaseMock{}, http.MethodGet, "/api/branches?repo=demo", "")
		gt.V(t, code).Equal(http.StatusBadRequest)
		gt.V(t, decodeBody[map[string]string](t, body)["error"]).Equal("Repository owner and name cannot be empty")
	})

	t.Run("failure status and details are passed through", func(t *testing.T) {
		testCases := []struct {
			name    string
			failure *types.Failure
			status  int
		}{
			{"not found", types.NotFound("Resource not found"), http.StatusNotFound},
			{"access denied", types.AccessDenied("Rate limit exceeded"), http.StatusForbidden},
			{"timeout", types.Timeout("Request timed out after 30s for URL: x"), http.StatusRequestTimeout},
			{"connection", types.ConnectionError("Connection error occurred for URL: x - refused"), http.StatusServiceUnavailable},
			{"upstream 502", types.HTTPError(http.StatusBadGateway, "GitHub API returned status 502"), http.StatusBadGateway},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				uc := &mock.UseCaseMock{
					ListBranchesFunc: func(ctx context.Context, repo model.GitHubRepo) ([]model.Branch, error) {
						return nil, goerr.Wrap(tc.failure, "failed to list branches")
					},
				}

				code, body := serve(t, uc, http.MethodGet, "/api/branches?owner=octo&repo=demo", "")
				gt.V(t, code).Equal(tc.status)

				resp := decodeBody[map[string]string](t, body)
				gt.V(t, resp["error"]).Equal("Failed to fetch branches")
				gt.V(t, resp["details"]).Equal(tc.failure.Message)
			})
		}
	})
}

func TestListMilestones(t *testing.T) {
	desc := "first release"
	uc := &mock.UseCaseMock{
		ListMilestonesFunc: func(ctx context.Context, repo model.GitHubRepo) ([]model.Milestone, error) {
			return []model.Milestone{
				{Number: 3, Title: "v1.0", Description: &desc, State: "open"},
				{Number: 2, Title: "v0.9", State: "closed"},
			}, nil
		},
	}

	code, body := serve(t, uc, http.MethodGet, "/api/milestones?owner=octo&repo=demo", "")
	gt.V(t, code).Equal(http.StatusOK)
	gt.V(t, string(body)).Equal(
		`[{"id":3,"title":"v1.0","description":"first release","state":"open"},` +
			`{"id":2,"title":"v0.9","description":null,"state":"closed"}]`)
}

func TestListIssues(t *testing.T) {
	t.Run("issues of the milestone", func(t *testing.T) {
		var calledMilestone string
		created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		uc := &mock.UseCaseMock{
			ListIssuesFunc: func(ctx context.Context, repo model.GitHubRepo, milestone string) ([]model.Issue, error) {
				calledMilestone = milestone
				return []model.Issue{
					{Number: 7, Title: "Fix crash", State: "open", CreatedAt: created, HTMLURL: "https://github.com/octo/demo/issues/7"},
				}, nil
			},
		}

		code, body := serve(t, uc, http.MethodGet, "/api/issues?owner=octo&repo=demo&milestone=3", "")
		gt.V(t, code).Equal(http.StatusOK)
		gt.V(t, calledMilestone).Equal("3")
		gt.V(t, string(body)).Equal(
			`[{"number":7,"title":"Fix crash","state":"open","created_at":"2024-01-02T03:04:05Z",` +
				`"closed_at":null,"html_url":"https://github.com/octo/demo/issues/7","body":null}]`)
	})

	t.Run("validation failure has no details", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListIssuesFunc: func(ctx context.Context, repo model.GitHubRepo, milestone string) ([]model.Issue, error) {
				return nil, goerr.Wrap(types.ValidationError("Missing milestone parameter"), "invalid request")
			},
		}

		code, body := serve(t, uc, http.MethodGet, "/api/issues?owner=octo&repo=demo", "")
		gt.V(t, code).Equal(http.StatusBadRequest)
		gt.V(t, string(body)).Equal(`{"error":"Missing milestone parameter"}`)
	})
}

func TestPushContent(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var input *model.SaveBackupInput
		uc := &mock.UseCaseMock{
			SaveBackupFunc: func(ctx context.Context, in *model.SaveBackupInput) (*model.Commit, error) {
				input = in
				return &model.Commit{SHA: "abc123", HTMLURL: "https://github.com/octo/backup/commit/abc123", Created: true}, nil
			},
		}

		code, body := serve(t, uc, http.MethodPost, "/api/push-content", `{"content":"# notes","commitMessage":"save"}`)
		gt.V(t, code).Equal(http.StatusOK)
		gt.V(t, input.Content).Equal("# notes")
		gt.V(t, input.CommitMessage).Equal("save")
		gt.V(t, string(body)).Equal(
			`{"message":"File created successfully","status":"success",` +
				`"commit":{"sha":"abc123","html_url":"https://github.com/octo/backup/commit/abc123"}}`)
	})

	t.Run("updated", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			SaveBackupFunc: func(ctx context.Context, in *model.SaveBackupInput) (*model.Commit, error) {
				return &model.Commit{SHA: "def456"}, nil
			},
		}

		code, body := serve(t, uc, http.MethodPost, "/api/push-content", `{"content":"x","commitMessage":"y"}`)
		gt.V(t, code).Equal(http.StatusOK)
		gt.V(t, decodeBody[map[string]any](t, body)["message"]).Equal("File updated successfully")
	})

	t.Run("broken JSON", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		code, body := serve(t, uc, http.MethodPost, "/api/push-content", `{"content":`)
		gt.V(t, code).Equal(http.StatusBadRequest)
		gt.True(t, strings.HasPrefix(decodeBody[map[string]string](t, body)["error"], "Invalid JSON body"))
		gt.V(t, len(uc.SaveBackupCalls())).Equal(0)
	})

	t.Run("empty body", func(t *testing.T) {
		code, body := serve(t, &mock.UseCaseMock{}, http.MethodPost, "/api/push-content", "")
		gt.V(t, code).Equal(http.StatusBadRequest)
		gt.V(t, string(body)).Equal(`{"error":"No data provided"}`)
	})

	t.Run("conflict from GitHub is passed through", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			SaveBackupFunc: func(ctx context.Context, in *model.SaveBackupInput) (*model.Commit, error) {
				return nil, goerr.Wrap(types.HTTPError(http.StatusConflict, "sha does not match"), "failed to put file")
			},
		}

		code, body := serve(t, uc, http.MethodPost, "/api/push-content", `{"content":"x","commitMessage":"y"}`)
		gt.V(t, code).Equal(http.StatusConflict)
		gt.V(t, string(body)).Equal(`{"error":"sha does not match"}`)
	})

	t.Run("unexpected error is a server error", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			SaveBackupFunc: func(ctx context.Context, in *model.SaveBackupInput) (*model.Commit, error) {
				return nil, goerr.New("disk on fire")
			},
		}

		code, body := serve(t, uc, http.MethodPost, "/api/push-content", `{"content":"x","commitMessage":"y"}`)
		gt.V(t, code).Equal(http.StatusInternalServerError)
		gt.True(t, strings.HasPrefix(decodeBody[map[string]string](t, body)["error"], "Server error: "))
	})
}

func TestFetchContent(t *testing.T) {
	t.Run("content", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			LoadBackupFunc: func(ctx context.Context) (string, error) {
				return "# saved", nil
			},
		}

		code, body := serve(t, uc, http.MethodGet, "/api/fetch-content", "")
		gt.V(t, code).Equal(http.StatusOK)
		gt.V(t, string(body)).Equal(`{"content":"# saved"}`)
	})

	t.Run("not found", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			LoadBackupFunc: func(ctx context.Context) (string, error) {
				return "", goerr.Wrap(types.NotFound("File backup.md not found in repository"), "backup not found")
			},
		}

		code, body := serve(t, uc, http.MethodGet, "/api/fetch-content", "")
		gt.V(t, code).Equal(http.StatusNotFound)
		gt.V(t, string(body)).Equal(`{"error":"File backup.md not found in repository"}`)
	})
}

func TestUpdateVersion(t *testing.T) {
	var input *model.UpdateVersionInput
	uc := &mock.UseCaseMock{
		UpdateVersionFunc: func(ctx context.Context, in *model.UpdateVersionInput) (*model.Commit, error) {
			input = in
			return &model.Commit{SHA: "v1", HTMLURL: "https://github.com/octo/demo/commit/v1"}, nil
		},
	}

	code, body := serve(t, uc, http.MethodPost, "/api/update-version",
		`{"owner":"octo","repo":"demo","branch":"main","version":"1.2.3","commitMessage":"bump"}`)
	gt.V(t, code).Equal(http.StatusOK)
	gt.V(t, input.Branch).Equal(types.BranchName("main"))
	gt.V(t, input.Version).Equal("1.2.3")

	resp := decodeBody[map[string]any](t, body)
	gt.V(t, resp["message"]).Equal("Version updated successfully")
	gt.V(t, resp["status"]).Equal("success")
}

func TestCreatePullRequest(t *testing.T) {
	t.Run("pull request is created", func(t *testing.T) {
		var input *model.CreatePullRequestInput
		uc := &mock.UseCaseMock{
			CreateChangelogPullRequestFunc: func(ctx context.Context, in *model.CreatePullRequestInput) (*model.PullRequest, error) {
				input = in
				return &model.PullRequest{Number: 42, HTMLURL: "https://github.com/octo/demo/pull/42", Title: in.PRTitle}, nil
			},
		}

		code, body := serve(t, uc, http.MethodPost, "/api/create-pull-request",
			`{"owner":"octo","repo":"demo","branch":"main","content":"- fix","version":"1.2.3",`+
				`"prTitle":"Release 1.2.3","prBody":"notes","milestone":"v1.2.3"}`)
		gt.V(t, code).Equal(http.StatusOK)
		gt.V(t, input.Version).Equal("1.2.3")
		gt.V(t, string(body)).Equal(
			`{"message":"Pull request created successfully","status":"success",` +
				`"pull_request":{"number":42,"html_url":"https://github.com/octo/demo/pull/42","title":"Release 1.2.3"}}`)
	})

	t.Run("non-string field is rejected", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		code, _ := serve(t, uc, http.MethodPost, "/api/create-pull-request", `{"owner":1}`)
		gt.V(t, code).Equal(http.StatusBadRequest)
		gt.V(t, len(uc.CreateChangelogPullRequestCalls())).Equal(0)
	})
}

func TestCreateGistLink(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			CreateGistFunc: func(ctx context.Context, in *model.CreateGistInput) (*model.Gist, error) {
				return &model.Gist{ID: "g1", HTMLURL: "https://gist.github.com/g1"}, nil
			},
		}

		code, body := serve(t, uc, http.MethodPost, "/api/create-gist-link", `{"content":"- fix"}`)
		gt.V(t, code).Equal(http.StatusCreated)
		gt.V(t, decodeBody[map[string]string](t, body)).Equal(map[string]string{
			"gist_url": "https://gist.github.com/g1",
			"message":  "Gist link created successfully",
			"status":   "success",
		})
	})

	t.Run("permission denied", func(t *testing.T) {
		msg := "Permission denied: Your GitHub token may not have permission to create Gists"
		uc := &mock.UseCaseMock{
			CreateGistFunc: func(ctx context.Context, in *model.CreateGistInput) (*model.Gist, error) {
				return nil, goerr.Wrap(types.AccessDenied(msg), "failed to create gist")
			},
		}

		code, body := serve(t, uc, http.MethodPost, "/api/create-gist-link", `{"content":"- fix"}`)
		gt.V(t, code).Equal(http.StatusForbidden)
		gt.V(t, decodeBody[map[string]string](t, body)["error"]).Equal(msg)
	})
}

func TestFetchGist(t *testing.T) {
	t.Run("markdown file", func(t *testing.T) {
		var calledID types.GistID
		uc := &mock.UseCaseMock{
			FetchGistFunc: func(ctx context.Context, id types.GistID) (*model.GistFile, error) {
				calledID = id
				return &model.GistFile{Filename: "changes.md", Content: "- fix"}, nil
			},
		}

		code, body := serve(t, uc, http.MethodGet, "/api/fetch-gist?gist_id=abc&is_enterprise=true", "")
		gt.V(t, code).Equal(http.StatusOK)
		gt.V(t, calledID).Equal(types.GistID("abc"))
		gt.V(t, decodeBody[map[string]string](t, body)).Equal(map[string]string{
			"content":  "- fix",
			"filename": "changes.md",
		})
	})

	t.Run("missing gist", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			FetchGistFunc: func(ctx context.Context, id types.GistID) (*model.GistFile, error) {
				return nil, goerr.Wrap(types.NotFound("Gist abc not found"), "gist not found")
			},
		}

		code, body := serve(t, uc, http.MethodGet, "/api/fetch-gist?gist_id=abc", "")
		gt.V(t, code).Equal(http.StatusNotFound)
		gt.V(t, string(body)).Equal(`{"error":"Gist abc not found"}`)
	})
}
