// Package pypi implements the client for the Python Package Index.
//
// # Overview
//
// The index exposes three surfaces this package consumes:
//
//   - the search UI, an HTML page gated behind a proof-of-work challenge
//   - the JSON metadata API for a single package
//   - the HTML project page, scraped for details the API leaves blank
//
// [Client.Search] returns the package names on one result page together with
// the total match count and a next-page flag. [Client.FetchPackage] turns one
// name into a full [Record]: version, description, author, latest upload
// date, a homepage resolved through a fixed fallback chain, and repository
// metrics when the homepage points at a code host.
//
// # Challenge Gate
//
// Search pages are served only to clients that answer a small proof-of-work
// puzzle: a SHA-256 brute force over a two-character suffix. [Client.Solve]
// handles the whole exchange and stores the earned session cookie in the
// client's jar, so the content fetch that follows is admitted. See
// challenge.go for the wire details.
//
// # Parsing Posture
//
// Extraction from HTML lives behind small helpers (resolveHomepage,
// parseSearchPage) so upstream markup changes stay contained. A missing
// structure degrades the affected field rather than failing the record.
package pypi
