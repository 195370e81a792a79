package search

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/pipseek/pkg/integrations/pypi"
)

// DefaultWorkers is the number of concurrent goroutines fetching package
// records. This bounds the load put on the index while a page enriches.
const DefaultWorkers = 20

// ErrFetchInFlight is returned when a page is requested while the session is
// still fetching another one.
var ErrFetchInFlight = errors.New("fetch already in flight")

// Fetcher retrieves search pages and package records from the index.
//
// Both methods must be safe for concurrent use; FetchPackage is called from
// multiple worker goroutines at once. [pypi.Client] is the standard
// implementation.
type Fetcher interface {
	// Search returns one page of results for query.
	Search(ctx context.Context, query string, page int) (*pypi.SearchPage, error)

	// FetchPackage returns the full record for one package.
	FetchPackage(ctx context.Context, name string) (*pypi.Record, error)
}

// Result holds one completed page of enriched search results.
type Result struct {
	// Records lists the packages that enriched successfully. They arrive in
	// completion order, which varies between fetches of the same page.
	Records []pypi.Record

	// Total is the index's reported match count across all pages.
	Total int

	// HasNext reports whether the index links a further page.
	HasNext bool
}

// Options configures session behavior.
type Options struct {
	Workers int         // Concurrent record fetches (default: 20)
	Logger  *log.Logger // Structured logger (default: log.Default())
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return opts
}

// Session runs searches for a single query and caches the pages it
// completes. Sessions are cheap; create a new one per query rather than
// reusing one.
type Session struct {
	query   string
	fetcher Fetcher
	opts    Options
	logger  *log.Logger

	mu      sync.Mutex
	loading bool

	cache *pageCache
}

// NewSession creates a session for query. The fetcher must be safe for
// concurrent use.
func NewSession(query string, fetcher Fetcher, opts Options) *Session {
	opts = opts.WithDefaults()
	return &Session{
		query:   query,
		fetcher: fetcher,
		opts:    opts,
		logger:  opts.Logger.With("session", uuid.New().String(), "query", query),
		cache:   newPageCache(),
	}
}

// Query returns the query the session was created for.
func (s *Session) Query() string { return s.query }

// Fetch returns the enriched records for page, serving repeats from the
// session cache. Only one fetch may run at a time; a call made while another
// is in flight fails fast with [ErrFetchInFlight].
//
// A search failure is absorbed: it logs a warning and returns an empty
// Result, leaving the page uncached so a later call retries it. Cancelling
// ctx instead aborts with the context's error, and whatever had completed is
// discarded, never cached.
func (s *Session) Fetch(ctx context.Context, page int) (*Result, error) {
	if page < 1 {
		return nil, fmt.Errorf("page %d out of range", page)
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil, ErrFetchInFlight
	}
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	if r, ok := s.cache.get(page); ok {
		s.logger.Debug("page served from cache", "page", page)
		return r, nil
	}

	sp, err := s.fetcher.Search(ctx, s.query, page)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		s.logger.Warn("search failed", "page", page, "err", err)
		return &Result{}, nil
	}
	s.logger.Debug("search returned", "page", page, "names", len(sp.Names), "total", sp.Total)

	records, err := s.enrich(ctx, sp.Names)
	if err != nil {
		return nil, err
	}

	result := &Result{Records: records, Total: sp.Total, HasNext: sp.HasNext}
	if len(records) > 0 {
		s.cache.put(page, result)
	}
	return result, nil
}
