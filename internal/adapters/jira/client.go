package jira

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/ports"
)

const (
	defaultPageSize = 100
	defaultTimeout  = 30 * time.Second
)

// Options configures a Client
type Options struct {
	HTTPClient      *http.Client // optional, overrides Insecure and Timeout
	IncludeSubtasks bool
	Insecure        bool // skip TLS certificate verification
	PageSize        int
	Project         string
	Server          string
	Timeout         time.Duration
	Token           string
}

// Client looks up release tasks through the Jira REST API (v2)
type Client struct {
	baseURL         *url.URL
	http            *http.Client
	includeSubtasks bool
	pageSize        int
	project         string
	token           string
}

var _ ports.TaskLookup = (*Client)(nil)

// APIError is a non-2xx response from the Jira server
type APIError struct {
	Body   string
	Status string
	URL    string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("jira %s: %s", e.URL, e.Status)
	}
	return fmt.Sprintf("jira %s: %s: %s", e.URL, e.Status, e.Body)
}

// NewClient creates a new Client
func NewClient(opts Options) (*Client, error) {
	if opts.Server == "" || opts.Project == "" {
		return nil, fmt.Errorf("%w: server and project are required", domain.ErrTrackerNotConfigured)
	}
	base, err := url.Parse(strings.TrimRight(opts.Server, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid jira server %q: %w", opts.Server, err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if opts.Insecure {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // self-hosted servers with private CAs
		}
		httpClient = &http.Client{Timeout: timeout, Transport: transport}
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		baseURL:         base,
		http:            httpClient,
		includeSubtasks: opts.IncludeSubtasks,
		pageSize:        pageSize,
		project:         opts.Project,
		token:           opts.Token,
	}, nil
}

type version struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type searchResponse struct {
	Issues []struct {
		Key string `json:"key"`
	} `json:"issues"`
	MaxResults int `json:"maxResults"`
	StartAt    int `json:"startAt"`
	Total      int `json:"total"`
}

// TasksForRelease returns the keys of every issue whose fix version is
// release, plus their subtasks when enabled
func (c *Client) TasksForRelease(ctx context.Context, release string) (domain.TaskSet, error) {
	versionID, err := c.findVersion(ctx, release)
	if err != nil {
		return nil, err
	}
	logging.Logger.Info("Found release version", "release", release, "version_id", versionID)

	jql := c.releaseJQL(versionID)
	tasks := domain.NewTaskSet()
	for startAt := 0; ; {
		page, err := c.search(ctx, jql, startAt)
		if err != nil {
			return nil, err
		}
		for _, issue := range page.Issues {
			tasks.Add(issue.Key)
		}
		startAt += len(page.Issues)
		if len(page.Issues) == 0 || startAt >= page.Total {
			break
		}
	}

	logging.Logger.Info("Release issues fetched", "release", release, "issues", tasks.Len())
	return tasks, nil
}

func (c *Client) releaseJQL(versionID string) string {
	base := fmt.Sprintf("project = %s AND fixVersion = %s", c.project, versionID)
	if !c.includeSubtasks {
		return base + " ORDER BY priority DESC, key ASC"
	}
	return fmt.Sprintf(`%s OR issueFunction in subtasksOf("%s") ORDER BY priority DESC, key ASC`, base, base)
}

func (c *Client) findVersion(ctx context.Context, release string) (string, error) {
	var versions []version
	if err := c.get(ctx, "/rest/api/2/project/"+url.PathEscape(c.project)+"/versions", nil, &versions); err != nil {
		return "", fmt.Errorf("failed to list versions: %w", err)
	}
	for _, v := range versions {
		if v.Name == release {
			return v.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrReleaseNotFound, release)
}

func (c *Client) search(ctx context.Context, jql string, startAt int) (searchResponse, error) {
	query := url.Values{
		"fields":     {"key"},
		"jql":        {jql},
		"maxResults": {strconv.Itoa(c.pageSize)},
		"startAt":    {strconv.Itoa(startAt)},
	}
	var page searchResponse
	if err := c.get(ctx, "/rest/api/2/search", query, &page); err != nil {
		return searchResponse{}, fmt.Errorf("failed to search issues: %w", err)
	}
	return page, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logging.Logger.Debug("Jira request", "url", u.Path)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", u.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{Body: strings.TrimSpace(string(body)), Status: resp.Status, URL: u.Path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", u.Path, err)
	}
	return nil
}

// IsUnauthorized reports whether err is a 401 or 403 from the server
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return strings.HasPrefix(apiErr.Status, "401") || strings.HasPrefix(apiErr.Status, "403")
}
