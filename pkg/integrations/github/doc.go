// Package github provides an HTTP client for the GitHub API.
//
// # Overview
//
// This package fetches star and fork counts from GitHub
// (https://api.github.com) to enrich package records whose homepage points
// at a repository there.
//
// # Usage
//
//	client := github.NewClient(token)
//
//	metrics, err := client.Metrics(ctx, "https://github.com/pallets/flask")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if metrics != nil {
//	    fmt.Println("Stars:", metrics.Stars)
//	}
//
// # Authentication
//
// A GitHub personal access token is optional but recommended to avoid rate
// limits. Without a token, the API allows 60 requests/hour. With a token,
// the limit is 5000 requests/hour.
//
// # Absent Metrics
//
// [Client.Metrics] returns (nil, nil) when the homepage does not point at a
// github.com repository, and likewise when the API answers with its
// rate-limit status. Callers treat a nil result as "no metrics available"
// rather than a failure.
package github
