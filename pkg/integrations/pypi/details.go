package pypi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/pipseek/pkg/httputil"
	"github.com/matzehuels/pipseek/pkg/integrations"
)

const uploadTimeLayout = "2006-01-02T15:04:05"

type apiResponse struct {
	Info     *apiInfo                `json:"info"`
	Releases map[string][]apiRelease `json:"releases"`
}

type apiInfo struct {
	Version     string         `json:"version"`
	Summary     string         `json:"summary"`
	Author      string         `json:"author"`
	HomePage    string         `json:"home_page"`
	ProjectURLs map[string]any `json:"project_urls"`
}

type apiRelease struct {
	UploadTime string `json:"upload_time"`
}

// FetchPackage assembles the full record for one package. The metadata API
// and the HTML project page are fetched concurrently; the API call is
// retried on transient failures, while the page is best effort and only
// sharpens the homepage and author fields when it loads.
func (c *Client) FetchPackage(ctx context.Context, name string) (*Record, error) {
	var (
		data apiResponse
		doc  *goquery.Document
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.retry.Do(gctx, func() error {
			err := c.Get(gctx, fmt.Sprintf("%s/pypi/%s/json", c.baseURL, name), &data)
			if err != nil && integrations.IsTransient(err) {
				return &httputil.RetryableError{Err: err}
			}
			return err
		})
	})
	g.Go(func() error {
		d, err := c.GetDocument(gctx, fmt.Sprintf("%s/project/%s/", c.baseURL, name))
		if err == nil {
			doc = d
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if data.Info == nil {
		return nil, fmt.Errorf("%w: metadata for %s has no info section", integrations.ErrParse, name)
	}

	rec := &Record{
		Name:        name,
		Version:     orDefault(data.Info.Version, NoValue),
		Description: description(data.Info.Summary),
		Homepage:    resolveHomepage(doc, data.Info),
		Author:      author(data.Info.Author, doc),
		UploadTime:  latestUpload(data.Releases),
	}

	if c.metrics != nil && rec.Homepage != NoValue && strings.Contains(strings.ToLower(rec.Homepage), "github.com") {
		if m, err := c.metrics.Metrics(ctx, rec.Homepage); err == nil && m != nil {
			rec.Metrics = m
		}
	}
	return rec, nil
}

// latestUpload finds the newest release timestamp across all versions and
// renders it as a date. Unparseable timestamps are skipped; no parseable
// timestamp at all yields [NoValue].
func latestUpload(releases map[string][]apiRelease) string {
	var latest time.Time
	for _, files := range releases {
		for _, f := range files {
			t, err := time.Parse(uploadTimeLayout, f.UploadTime)
			if err != nil {
				continue
			}
			if t.After(latest) {
				latest = t
			}
		}
	}
	if latest.IsZero() {
		return NoValue
	}
	return latest.Format("2006-01-02")
}

// author cleans the metadata author and, when it is a placeholder, scrapes
// the project page instead. The scraped block often wraps the name around a
// mailto link, which is preferred when present.
func author(meta string, doc *goquery.Document) string {
	name := strings.TrimSpace(meta)
	if isPlaceholder(name, "unknown") && doc != nil {
		block := doc.Find(`li span:contains("Author")`).First()
		name = strings.TrimSpace(strings.ReplaceAll(block.Text(), "Author:", ""))
		if mail := strings.TrimSpace(block.Find(`a[href^="mailto:"]`).First().Text()); mail != "" {
			name = mail
		}
	}
	if isPlaceholder(name, "unknown") {
		return NoValue
	}
	return name
}

func description(s string) string {
	if isPlaceholder(s, "no description") {
		return NoDescription
	}
	return strings.TrimSpace(s)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return strings.TrimSpace(s)
}
