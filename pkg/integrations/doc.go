// Package integrations provides HTTP clients for the remote services that
// back a package search.
//
// # Overview
//
// This package contains low-level clients for fetching search results and
// package metadata from remote services. Each service has its own subpackage:
//
//   - [pypi]: Python Package Index (search pages, challenge gate, metadata)
//   - [github]: GitHub API for repository popularity metrics
//
// # Client Pattern
//
// Service clients embed [Client], which owns the HTTP client (fixed 5-second
// timeout, shared cookie jar), default headers, and the mapping from response
// statuses to the error taxonomy:
//
//	client := pypi.NewClient(github.NewClient(token))
//	page, err := client.Search(ctx, "http client", 1)
//
// # Errors
//
// Failures are classified with sentinel errors so callers can decide what
// degrades and what aborts:
//
//   - [ErrNotFound]: the resource does not exist upstream (404)
//   - [ErrNetwork]: transport failures and unexpected statuses
//   - [ErrRateLimited]: the service denied the request (403)
//   - [ErrParse]: an expected structure was absent from a response
//
// [IsTimeout] and [IsTransient] inspect the wrapped transport error so retry
// policies can qualify failures per call site.
//
// [pypi]: github.com/matzehuels/pipseek/pkg/integrations/pypi
// [github]: github.com/matzehuels/pipseek/pkg/integrations/github
package integrations
