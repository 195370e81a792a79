package search

import (
	"context"
	"sync"

	"github.com/matzehuels/pipseek/pkg/integrations/pypi"
)

// enrich fetches the full record for every name using a worker pool. Records
// are collected in completion order, not input order. Packages whose fetch
// fails are dropped; a cancelled context abandons the whole batch.
func (s *Session) enrich(ctx context.Context, names []string) ([]pypi.Record, error) {
	if len(names) == 0 {
		return nil, nil
	}

	// Both channels are buffered for the full batch so neither the feeder
	// nor the workers ever block on a slow collector.
	workers := min(s.opts.Workers, len(names))
	jobs := make(chan string, len(names))
	results := make(chan pypi.Record, len(names))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				if ctx.Err() != nil {
					continue
				}
				rec, err := s.fetcher.FetchPackage(ctx, name)
				if err != nil {
					s.logger.Debug("package dropped", "name", name, "err", err)
					continue
				}
				results <- *rec
			}
		}()
	}

	for _, name := range names {
		jobs <- name
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	records := make([]pypi.Record, 0, len(names))
	for rec := range results {
		records = append(records, rec)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
