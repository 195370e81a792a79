package pypi

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// docOrNil parses html into a document, or returns nil for the metadata-only
// cases where no project page loaded.
func docOrNil(t *testing.T, html string) *goquery.Document {
	t.Helper()
	if html == "" {
		return nil
	}
	return parseDoc(t, html)
}

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		input    string
		also     []string
		expected bool
	}{
		{"", nil, true},
		{"none", nil, true},
		{" None ", nil, true},
		{"N/A", nil, true},
		{"https://flask.dev", nil, false},
		{"UNKNOWN", []string{"unknown"}, true},
		{"unknown", nil, false},
	}

	for _, tt := range tests {
		if got := isPlaceholder(tt.input, tt.also...); got != tt.expected {
			t.Errorf("isPlaceholder(%q, %v): expected %v, got %v", tt.input, tt.also, tt.expected, got)
		}
	}
}

func TestResolveHomepage(t *testing.T) {
	sidebar := `<div class="vertical-tabs__list">
		<a class="vertical-tabs__tab--condensed" href="/docs">Documentation</a>
		<a class="vertical-tabs__tab--condensed" href="https://flask.dev"><i class="fa fa-home"></i>Website</a>
	</div>`
	unverified := `<div class="sidebar-section unverified">
		<a href="https://example.com/news">Changelog</a>
		<a href="https://github.com/pallets/flask">Code</a>
	</div>`

	tests := []struct {
		name     string
		html     string
		info     *apiInfo
		expected string
	}{
		{
			name:     "sidebar home icon wins",
			html:     sidebar,
			info:     &apiInfo{ProjectURLs: map[string]any{"Homepage": "https://other.dev"}},
			expected: "https://flask.dev",
		},
		{
			name:     "sidebar matches homepage text",
			html:     `<div class="vertical-tabs__list"><a class="vertical-tabs__tab--condensed" href="https://flask.dev">Project homepage</a></div>`,
			expected: "https://flask.dev",
		},
		{
			name:     "sidebar matches github text",
			html:     `<div class="vertical-tabs__list"><a class="vertical-tabs__tab--condensed" href="https://github.com/pallets/flask">GitHub</a></div>`,
			expected: "https://github.com/pallets/flask",
		},
		{
			name:     "sidebar placeholder href skipped",
			html:     `<div class="vertical-tabs__list"><a class="vertical-tabs__tab--condensed" href="None">Homepage</a></div>`,
			info:     &apiInfo{ProjectURLs: map[string]any{"Homepage": "https://flask.dev"}},
			expected: "https://flask.dev",
		},
		{
			name:     "project urls in priority order",
			info:     &apiInfo{ProjectURLs: map[string]any{"Source": "https://github.com/pallets/flask", "Homepage": "https://flask.dev"}},
			expected: "https://flask.dev",
		},
		{
			name:     "placeholder project url advances to next key",
			info:     &apiInfo{ProjectURLs: map[string]any{"Homepage": "none", "Source": "https://github.com/pallets/flask"}},
			expected: "https://github.com/pallets/flask",
		},
		{
			name:     "non-string project url skipped",
			info:     &apiInfo{ProjectURLs: map[string]any{"Homepage": 42.0, "Repository": "https://github.com/pallets/flask"}},
			expected: "https://github.com/pallets/flask",
		},
		{
			name:     "home page field fallback",
			info:     &apiInfo{HomePage: " https://flask.dev "},
			expected: "https://flask.dev",
		},
		{
			name:     "metadata beats unverified links",
			html:     unverified,
			info:     &apiInfo{HomePage: "https://flask.dev"},
			expected: "https://flask.dev",
		},
		{
			name:     "unverified github link",
			html:     unverified,
			info:     &apiInfo{HomePage: "None"},
			expected: "https://github.com/pallets/flask",
		},
		{
			name:     "unverified source text",
			html:     `<div class="sidebar-section unverified"><a href="https://hg.example.org/flask">Source code</a></div>`,
			expected: "https://hg.example.org/flask",
		},
		{
			name:     "irrelevant unverified link rejected",
			html:     `<div class="sidebar-section unverified"><a href="https://example.com/docs">Documentation</a></div>`,
			expected: NoValue,
		},
		{
			name:     "nothing available",
			info:     &apiInfo{},
			expected: NoValue,
		},
		{
			name:     "nil metadata",
			html:     `<p>no sidebar here</p>`,
			expected: NoValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveHomepage(docOrNil(t, tt.html), tt.info)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
