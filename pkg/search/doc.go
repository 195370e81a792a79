// Package search coordinates paged package searches against the index.
//
// # Overview
//
// A [Session] is created once per query. Fetching a page runs the search,
// fans the resulting names out to a pool of workers that fetch each
// package's full record, and collects whatever completed into a [Result].
// Completed pages are cached for the session's lifetime, so paging back is
// instant and never refetches.
//
// # Usage
//
//	session := search.NewSession("web framework", client, search.Options{})
//
//	result, err := session.Fetch(ctx, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, rec := range result.Records {
//	    fmt.Println(rec.Name, rec.Version)
//	}
//
// # Failure Handling
//
// A failed search yields an empty [Result] rather than an error; the page
// stays uncached so a later fetch can retry it. Packages whose enrichment
// fails are dropped from the page. Cancellation is the exception: it aborts
// the fetch with the context's error and discards partial results.
package search
