package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chronopick/internal/domain"
)

type fakeJira struct {
	issues   []string
	jqls     []string
	tokens   []string
	versions []version
}

func (f *fakeJira) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/project/24108/versions", func(w http.ResponseWriter, r *http.Request) {
		f.tokens = append(f.tokens, r.Header.Get("Authorization"))
		require.NoError(t, json.NewEncoder(w).Encode(f.versions))
	})
	mux.HandleFunc("/rest/api/2/search", func(w http.ResponseWriter, r *http.Request) {
		f.jqls = append(f.jqls, r.URL.Query().Get("jql"))
		startAt, _ := strconv.Atoi(r.URL.Query().Get("startAt"))
		maxResults, _ := strconv.Atoi(r.URL.Query().Get("maxResults"))

		end := min(startAt+maxResults, len(f.issues))
		page := make([]map[string]string, 0, end-startAt)
		for _, key := range f.issues[startAt:end] {
			page = append(page, map[string]string{"key": key})
		}
		resp := map[string]any{
			"issues":     page,
			"maxResults": maxResults,
			"startAt":    startAt,
			"total":      len(f.issues),
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	return mux
}

func newTestClient(t *testing.T, f *fakeJira, subtasks bool) *Client {
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{
		HTTPClient:      srv.Client(),
		IncludeSubtasks: subtasks,
		PageSize:        2,
		Project:         "24108",
		Server:          srv.URL + "/",
		Token:           "secret",
	})
	require.NoError(t, err)
	return c
}

func TestTasksForRelease_Paginates(t *testing.T) {
	f := &fakeJira{
		issues:   []string{"ECO-1", "ECO-2", "ECO-3", "ECO-4", "ECO-5"},
		versions: []version{{ID: "1", Name: "2.3.0"}, {ID: "77", Name: "2.4.0"}},
	}
	c := newTestClient(t, f, true)

	tasks, err := c.TasksForRelease(context.Background(), "2.4.0")

	require.NoError(t, err)
	assert.Equal(t, []string{"ECO-1", "ECO-2", "ECO-3", "ECO-4", "ECO-5"}, tasks.Sorted())
	assert.Len(t, f.jqls, 3)
	assert.Equal(t, []string{"Bearer secret"}, f.tokens)
}

func TestTasksForRelease_JQL(t *testing.T) {
	tests := []struct {
		name     string
		subtasks bool
		want     string
	}{
		{
			name:     "with subtasks",
			subtasks: true,
			want:     `project = 24108 AND fixVersion = 77 OR issueFunction in subtasksOf("project = 24108 AND fixVersion = 77") ORDER BY priority DESC, key ASC`,
		},
		{
			name: "without subtasks",
			want: "project = 24108 AND fixVersion = 77 ORDER BY priority DESC, key ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeJira{issues: []string{"ECO-1"}, versions: []version{{ID: "77", Name: "2.4.0"}}}
			c := newTestClient(t, f, tt.subtasks)

			_, err := c.TasksForRelease(context.Background(), "2.4.0")

			require.NoError(t, err)
			require.Len(t, f.jqls, 1)
			assert.Equal(t, tt.want, f.jqls[0])
		})
	}
}

func TestTasksForRelease_UnknownRelease(t *testing.T) {
	f := &fakeJira{versions: []version{{ID: "1", Name: "2.3.0"}}}
	c := newTestClient(t, f, true)

	_, err := c.TasksForRelease(context.Background(), "9.9.9")

	assert.ErrorIs(t, err, domain.ErrReleaseNotFound)
	assert.Empty(t, f.jqls)
}

func TestTasksForRelease_EmptyRelease(t *testing.T) {
	f := &fakeJira{versions: []version{{ID: "77", Name: "2.4.0"}}}
	c := newTestClient(t, f, true)

	tasks, err := c.TasksForRelease(context.Background(), "2.4.0")

	require.NoError(t, err)
	assert.Zero(t, tasks.Len())
}

func TestTasksForRelease_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)
	c, err := NewClient(Options{HTTPClient: srv.Client(), Project: "24108", Server: srv.URL})
	require.NoError(t, err)

	_, err = c.TasksForRelease(context.Background(), "2.4.0")

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "token expired")
}

func TestNewClient_RequiresServerAndProject(t *testing.T) {
	_, err := NewClient(Options{Project: "24108"})
	assert.ErrorIs(t, err, domain.ErrTrackerNotConfigured)

	_, err = NewClient(Options{Server: "https://jira.example.com"})
	assert.ErrorIs(t, err, domain.ErrTrackerNotConfigured)
}
