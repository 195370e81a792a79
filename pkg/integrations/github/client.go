package github

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/matzehuels/pipseek/pkg/httputil"
	"github.com/matzehuels/pipseek/pkg/integrations"
)

var repoURLPattern = regexp.MustCompile(`(?i)https?://github\.com/([^/]+)/([^/]+?)(?:\.git)?(?:[/?#]|$)`)

// Client provides access to the GitHub API for repository metrics.
type Client struct {
	*integrations.Client
	baseURL string
	retry   httputil.Policy
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower
// rate limits).
func NewClient(token string) *Client {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return &Client{
		Client:  integrations.NewClient(headers),
		baseURL: "https://api.github.com",
		retry:   httputil.Policy{Attempts: 3, Delay: 2 * time.Second},
	}
}

// Metrics fetches star and fork counts for the repository homepage points
// at. A homepage outside github.com yields (nil, nil), and so does the
// API's rate limit; both mean "no metrics", not failure. Timeouts are
// retried, other errors are returned as is.
func (c *Client) Metrics(ctx context.Context, homepage string) (*integrations.RepoMetrics, error) {
	owner, repo, ok := parseRepoURL(homepage)
	if !ok {
		return nil, nil
	}

	var data repoResponse
	err := c.retry.Do(ctx, func() error {
		err := c.Get(ctx, fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo), &data)
		if err != nil && integrations.IsTimeout(err) {
			return &httputil.RetryableError{Err: err}
		}
		return err
	})
	if errors.Is(err, integrations.ErrRateLimited) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &integrations.RepoMetrics{Stars: data.Stars, Forks: data.Forks}, nil
}

func parseRepoURL(homepage string) (owner, repo string, ok bool) {
	m := repoURLPattern.FindStringSubmatch(homepage)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

type repoResponse struct {
	Stars int `json:"stargazers_count"`
	Forks int `json:"forks_count"`
}
