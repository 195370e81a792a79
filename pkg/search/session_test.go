package search

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pipseek/pkg/integrations/pypi"
)

type mockFetcher struct {
	page      *pypi.SearchPage
	searchErr error
	records   map[string]*pypi.Record
	fetchErr  error

	// block, when set, makes FetchPackage wait until the channel closes or
	// the context is cancelled. blockName limits the waiting to one package;
	// empty blocks all of them. started is closed on the first call.
	block     chan struct{}
	blockName string
	started   chan struct{}

	mu          sync.Mutex
	once        sync.Once
	searchCalls int
	fetchCalls  int
}

func (m *mockFetcher) Search(ctx context.Context, query string, page int) (*pypi.SearchPage, error) {
	m.mu.Lock()
	m.searchCalls++
	m.mu.Unlock()
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.page, nil
}

func (m *mockFetcher) FetchPackage(ctx context.Context, name string) (*pypi.Record, error) {
	m.mu.Lock()
	m.fetchCalls++
	m.mu.Unlock()
	if m.started != nil {
		m.once.Do(func() { close(m.started) })
	}
	if m.block != nil && (m.blockName == "" || m.blockName == name) {
		select {
		case <-m.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	if rec, ok := m.records[name]; ok {
		return rec, nil
	}
	return nil, errors.New("package not found")
}

func (m *mockFetcher) searched() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.searchCalls
}

func testSession(query string, fetcher Fetcher) *Session {
	return NewSession(query, fetcher, Options{Logger: log.New(io.Discard)})
}

func recordNames(records []pypi.Record) []string {
	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.Name
	}
	sort.Strings(names)
	return names
}

func TestSessionFetch(t *testing.T) {
	fetcher := &mockFetcher{
		page: &pypi.SearchPage{Names: []string{"flask", "django"}, Total: 320, HasNext: true},
		records: map[string]*pypi.Record{
			"flask":  {Name: "flask", Version: "3.0.0"},
			"django": {Name: "django", Version: "5.0.1"},
		},
	}
	s := testSession("web", fetcher)

	result, err := s.Fetch(context.Background(), 1)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	names := recordNames(result.Records)
	if len(names) != 2 || names[0] != "django" || names[1] != "flask" {
		t.Errorf("expected both packages, got %v", names)
	}
	if result.Total != 320 {
		t.Errorf("expected total 320, got %d", result.Total)
	}
	if !result.HasNext {
		t.Error("expected a next page")
	}
}

func TestSessionFetch_ServesRepeatsFromCache(t *testing.T) {
	fetcher := &mockFetcher{
		page:    &pypi.SearchPage{Names: []string{"flask"}, Total: 1},
		records: map[string]*pypi.Record{"flask": {Name: "flask"}},
	}
	s := testSession("web", fetcher)

	first, err := s.Fetch(context.Background(), 1)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	second, err := s.Fetch(context.Background(), 1)
	if err != nil {
		t.Fatalf("repeat Fetch failed: %v", err)
	}

	if second != first {
		t.Error("expected the cached result back")
	}
	if got := fetcher.searched(); got != 1 {
		t.Errorf("expected 1 search, got %d", got)
	}
}

func TestSessionFetch_EmptyPageNotCached(t *testing.T) {
	fetcher := &mockFetcher{page: &pypi.SearchPage{Total: 0}}
	s := testSession("no-such-thing", fetcher)

	result, err := s.Fetch(context.Background(), 1)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(result.Records) != 0 {
		t.Errorf("expected no records, got %d", len(result.Records))
	}

	if _, err := s.Fetch(context.Background(), 1); err != nil {
		t.Fatalf("repeat Fetch failed: %v", err)
	}
	if got := fetcher.searched(); got != 2 {
		t.Errorf("expected empty page to be refetched, got %d searches", got)
	}
}

func TestSessionFetch_SearchFailureIsSoft(t *testing.T) {
	fetcher := &mockFetcher{searchErr: errors.New("gateway timeout")}
	s := testSession("web", fetcher)

	result, err := s.Fetch(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected search failure to be absorbed, got %v", err)
	}
	if len(result.Records) != 0 || result.Total != 0 || result.HasNext {
		t.Errorf("expected empty result, got %+v", result)
	}

	if _, err := s.Fetch(context.Background(), 1); err != nil {
		t.Fatalf("repeat Fetch failed: %v", err)
	}
	if got := fetcher.searched(); got != 2 {
		t.Errorf("expected failed page to be retried, got %d searches", got)
	}
}

func TestSessionFetch_SearchCancellationPropagates(t *testing.T) {
	fetcher := &mockFetcher{searchErr: context.Canceled}
	s := testSession("web", fetcher)

	_, err := s.Fetch(context.Background(), 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSessionFetch_DropsFailedPackages(t *testing.T) {
	fetcher := &mockFetcher{
		page:    &pypi.SearchPage{Names: []string{"flask", "ghost"}, Total: 2},
		records: map[string]*pypi.Record{"flask": {Name: "flask"}},
	}
	s := testSession("web", fetcher)

	result, err := s.Fetch(context.Background(), 1)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if names := recordNames(result.Records); len(names) != 1 || names[0] != "flask" {
		t.Errorf("expected only flask to survive, got %v", names)
	}
}

func TestSessionFetch_PageOutOfRange(t *testing.T) {
	s := testSession("web", &mockFetcher{})

	if _, err := s.Fetch(context.Background(), 0); err == nil {
		t.Error("expected error for page 0")
	}
}

func TestSessionFetch_RejectsConcurrentFetch(t *testing.T) {
	fetcher := &mockFetcher{
		page:    &pypi.SearchPage{Names: []string{"flask"}, Total: 1},
		records: map[string]*pypi.Record{"flask": {Name: "flask"}},
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	s := testSession("web", fetcher)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := s.Fetch(context.Background(), 1); err != nil {
			t.Errorf("Fetch failed: %v", err)
		}
	}()

	<-fetcher.started
	if _, err := s.Fetch(context.Background(), 2); !errors.Is(err, ErrFetchInFlight) {
		t.Errorf("expected ErrFetchInFlight, got %v", err)
	}

	close(fetcher.block)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("first fetch never finished")
	}

	if _, err := s.Fetch(context.Background(), 1); err != nil {
		t.Errorf("expected fetches to work again, got %v", err)
	}
}

func TestSessionFetch_CancellationDiscardsPartialPage(t *testing.T) {
	fetcher := &mockFetcher{
		page:      &pypi.SearchPage{Names: []string{"flask", "django"}, Total: 2},
		records:   map[string]*pypi.Record{"flask": {Name: "flask"}, "django": {Name: "django"}},
		block:     make(chan struct{}),
		blockName: "django",
		started:   make(chan struct{}),
	}
	s := testSession("web", fetcher)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := s.Fetch(ctx, 1)
		errc <- err
	}()

	// django hangs until cancelled; whatever completed before that must be
	// thrown away with it.
	<-fetcher.started
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("cancelled fetch never returned")
	}

	close(fetcher.block)

	result, err := s.Fetch(context.Background(), 1)
	if err != nil {
		t.Fatalf("refetch failed: %v", err)
	}
	if got := fetcher.searched(); got != 2 {
		t.Errorf("expected abandoned page to be refetched, got %d searches", got)
	}
	if names := recordNames(result.Records); len(names) != 2 {
		t.Errorf("expected a full page on refetch, got %v", names)
	}
}

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{}.WithDefaults()
	if opts.Workers != DefaultWorkers {
		t.Errorf("expected %d workers, got %d", DefaultWorkers, opts.Workers)
	}
	if opts.Logger == nil {
		t.Error("expected a logger")
	}

	custom := Options{Workers: 5}.WithDefaults()
	if custom.Workers != 5 {
		t.Errorf("expected workers preserved, got %d", custom.Workers)
	}
}
