package pypi

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// homepageKeys orders the project_urls labels worth a look, most canonical
// first.
var homepageKeys = []string{"Homepage", "Source", "Source Code", "Repository", "GitHub", "Home"}

// isPlaceholder reports whether s is empty or one of the junk values package
// authors leave in metadata fields. Extra values to reject are matched after
// lowercasing and trimming.
func isPlaceholder(s string, also ...string) bool {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", "none", "n/a":
		return true
	}
	return slices.Contains(also, v)
}

// resolveHomepage picks the best homepage for a package, working down from
// the project page's sidebar through the metadata fields to the unverified
// link list. Every candidate is placeholder-checked before it wins; when
// nothing survives the result is [NoValue].
func resolveHomepage(doc *goquery.Document, info *apiInfo) string {
	if doc != nil {
		if href := sidebarQuickLink(doc); href != "" {
			return href
		}
	}

	if info != nil {
		for _, key := range homepageKeys {
			raw, ok := info.ProjectURLs[key]
			if !ok {
				continue
			}
			s, ok := raw.(string)
			if !ok || isPlaceholder(s) {
				continue
			}
			return strings.TrimSpace(s)
		}
		if !isPlaceholder(info.HomePage) {
			return strings.TrimSpace(info.HomePage)
		}
	}

	if doc != nil {
		if href := unverifiedLink(doc); href != "" {
			return href
		}
	}
	return NoValue
}

// sidebarQuickLink scans the condensed sidebar tabs for a link marked with a
// home icon or labelled like a homepage or repository.
func sidebarQuickLink(doc *goquery.Document) string {
	var found string
	doc.Find(".vertical-tabs__list .vertical-tabs__tab--condensed").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.ToLower(s.Text())
		if s.Find(".fa-home").Length() == 0 && !strings.Contains(text, "homepage") && !strings.Contains(text, "github") {
			return true
		}
		href, ok := s.Attr("href")
		if !ok || isPlaceholder(href) {
			return true
		}
		found = strings.TrimSpace(href)
		return false
	})
	return found
}

// unverifiedLink falls back to the unverified details section, accepting a
// link that points at github.com or reads like a source or home link.
func unverifiedLink(doc *goquery.Document) string {
	var found string
	doc.Find(".sidebar-section.unverified a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok || isPlaceholder(href) {
			return true
		}
		text := strings.ToLower(s.Text())
		if !strings.Contains(strings.ToLower(href), "github.com") && !strings.Contains(text, "source") && !strings.Contains(text, "home") {
			return true
		}
		found = strings.TrimSpace(href)
		return false
	})
	return found
}
