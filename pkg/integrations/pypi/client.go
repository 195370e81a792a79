package pypi

import (
	"context"
	"time"

	"github.com/matzehuels/pipseek/pkg/httputil"
	"github.com/matzehuels/pipseek/pkg/integrations"
)

// Field defaults for record fields whose sources had nothing usable.
const (
	NoValue       = "N/A"
	NoDescription = "No description available"
)

// MetricsFetcher resolves repository popularity metrics for a project
// homepage. Implementations return (nil, nil) when no metrics apply to the
// URL; an error means an attempt was made and failed.
type MetricsFetcher interface {
	Metrics(ctx context.Context, homepage string) (*integrations.RepoMetrics, error)
}

// Record is the enriched, user-facing summary of one package.
//
// Name, Version, and Description are always populated; the remaining string
// fields fall back to [NoValue]. Metrics is nil unless the homepage resolved
// to the code host and the metrics call succeeded.
type Record struct {
	Name        string                    `json:"name"`
	Version     string                    `json:"version"`
	Description string                    `json:"description"`
	Homepage    string                    `json:"homepage"`
	Author      string                    `json:"author"`
	UploadTime  string                    `json:"upload_time"`
	Metrics     *integrations.RepoMetrics `json:"github_metrics,omitempty"`
}

// Client provides access to the package index: search pages behind the
// proof-of-work gate, package metadata, and project detail pages.
//
// All methods are safe for concurrent use by multiple goroutines. The
// embedded HTTP client carries one cookie jar, so a challenge answered by
// one call admits the calls that follow.
type Client struct {
	*integrations.Client
	baseURL string
	metrics MetricsFetcher
	retry   httputil.Policy
}

// NewClient creates an index client. metrics enriches records whose homepage
// points at a code host; pass nil to skip metrics entirely.
func NewClient(metrics MetricsFetcher) *Client {
	return &Client{
		Client:  integrations.NewClient(map[string]string{"Accept-Language": "en-US,en;q=0.5"}),
		baseURL: "https://pypi.org",
		metrics: metrics,
		retry:   httputil.Policy{Attempts: 3, Delay: time.Second},
	}
}
