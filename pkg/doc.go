// Package pkg provides the core libraries for Pipseek package search.
//
// # Overview
//
// Pipseek searches the Python Package Index from the terminal and enriches
// each hit with metadata the search page doesn't carry: latest version,
// summary, author, upload date, and GitHub star/fork counts. The pkg
// directory is organized into four main areas:
//
//  1. [search] - Session orchestration (page fetch, concurrent enrichment, caching)
//  2. [integrations] - External API clients (PyPI, GitHub)
//  3. [httputil] - HTTP retry policy shared by the clients
//  4. [buildinfo] - Build metadata injected at link time
//
// # Architecture
//
// The typical data flow through Pipseek:
//
//	Search query
//	         ↓
//	    [search] package (session, one page at a time)
//	         ↓
//	    [integrations/pypi] package (solve search-page challenge, scrape names)
//	         ↓
//	    worker pool (one goroutine per package, bounded)
//	         ↓
//	    [integrations/pypi] JSON API + project page, [integrations/github] metrics
//	         ↓
//	    enriched Records
//
// # Quick Start
//
// Search for packages and print the first page:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/pipseek/pkg/integrations/github"
//	    "github.com/matzehuels/pipseek/pkg/integrations/pypi"
//	    "github.com/matzehuels/pipseek/pkg/search"
//	)
//
//	// 1. Build the index client; metrics come from GitHub
//	index := pypi.NewClient(github.NewClient(""))
//
//	// 2. Create a session for the query
//	session := search.NewSession("web framework", index, search.Options{})
//
//	// 3. Fetch a page of enriched records
//	result, _ := session.Fetch(context.Background(), 1)
//	for _, rec := range result.Records {
//	    fmt.Printf("%s %s - %s\n", rec.Name, rec.Version, rec.Description)
//	}
//
// # Main Packages
//
// ## Search Orchestration
//
// [search] - Session per query. A session fetches one search page at a time,
// fans the page's package names out to a worker pool for enrichment, and
// caches completed pages so paging backwards is free. Search failures are
// absorbed into empty results; per-package failures drop the package and log
// a warning.
//
// ## External Integrations
//
// [integrations] - Shared HTTP client base: JSON decoding, HTML documents,
// status-code mapping to sentinel errors (ErrNotFound, ErrRateLimited,
// ErrNetwork, ErrParse), and a cookie jar scoped by registrable domain.
//
// [integrations/pypi] - Index client. Solves the search page's in-browser
// proof-of-work challenge, parses result pages with goquery, fetches package
// JSON metadata, and scrapes the project page for the fields the JSON API
// leaves blank. One cookie jar per client, so a solved challenge admits the
// requests that follow.
//
// [integrations/github] - Repository metrics (stars, forks) for packages
// whose homepage points at github.com. Unauthenticated by default; a token
// raises the rate limit. Rate-limited responses degrade to "no metrics"
// instead of failing the record.
//
// ## Infrastructure
//
// [httputil] - Retry policy with fixed delay for transient failures. Clients
// wrap the errors worth retrying in [httputil.RetryableError]; everything
// else fails fast.
//
// [buildinfo] - Version, commit, and build date variables set via ldflags,
// plus the version template the CLI prints.
//
// # Common Workflows
//
// Enrich with authenticated GitHub metrics:
//
//	index := pypi.NewClient(github.NewClient(token))
//
// Skip metrics entirely:
//
//	index := pypi.NewClient(nil)
//
// Page through results:
//
//	result, _ := session.Fetch(ctx, 1)
//	if result.HasNext {
//	    result, _ = session.Fetch(ctx, 2)
//	}
//
// Tune the worker pool:
//
//	session := search.NewSession(query, index, search.Options{Workers: 8})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/integrations/pypi/...  # Specific package
//	go test -run Example                 # Examples only
//
// [search]: https://pkg.go.dev/github.com/matzehuels/pipseek/pkg/search
// [integrations]: https://pkg.go.dev/github.com/matzehuels/pipseek/pkg/integrations
// [integrations/pypi]: https://pkg.go.dev/github.com/matzehuels/pipseek/pkg/integrations/pypi
// [integrations/github]: https://pkg.go.dev/github.com/matzehuels/pipseek/pkg/integrations/github
// [httputil]: https://pkg.go.dev/github.com/matzehuels/pipseek/pkg/httputil
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pipseek/pkg/buildinfo
package pkg
