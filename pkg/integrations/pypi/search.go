package pypi

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/matzehuels/pipseek/pkg/integrations"
)

// SearchPage holds one page of search results as listed by the index.
type SearchPage struct {
	// Names lists the package names on the page in display order, without
	// duplicates.
	Names []string

	// Total is the index's reported match count across all pages, or 0 when
	// the count could not be read.
	Total int

	// HasNext reports whether the index links a further page.
	HasNext bool
}

// Search fetches one page of results for query. The search UI sits behind
// the challenge gate, so Search passes it first; the session cookie from a
// prior solve makes that a no-op.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchPage, error) {
	searchURL := fmt.Sprintf("%s/search/?q=%s&page=%d", c.baseURL, integrations.URLEncode(query), page)

	if err := c.Solve(ctx, searchURL); err != nil {
		return nil, err
	}
	doc, err := c.GetDocument(ctx, searchURL)
	if err != nil {
		return nil, err
	}
	return parseSearchPage(doc), nil
}

func parseSearchPage(doc *goquery.Document) *SearchPage {
	sp := &SearchPage{
		Total: parseTotal(doc.Find(".split-layout p strong").First().Text()),
	}

	seen := make(map[string]bool)
	doc.Find(".package-snippet").Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Find(".package-snippet__name").Text())
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		sp.Names = append(sp.Names, name)
	})
	if len(sp.Names) == 0 {
		return sp
	}

	sp.HasNext = hasNextPage(doc)
	return sp
}

// parseTotal reads a count like "1,234+" by keeping only the digits.
func parseTotal(s string) int {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

func hasNextPage(doc *goquery.Document) bool {
	var next bool
	doc.Find(".button-group--pagination").First().Find("a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) != "Next" {
			return true
		}
		next = !s.HasClass("button--disabled")
		return false
	})
	return next
}
