package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/pipseek/internal/config"
	"github.com/matzehuels/pipseek/pkg/integrations/github"
	"github.com/matzehuels/pipseek/pkg/integrations/pypi"
	"github.com/matzehuels/pipseek/pkg/search"
)

// searchOpts holds the command-line flags for the root search command.
type searchOpts struct {
	page    int    // first page to fetch
	plain   bool   // print one page and exit instead of paging interactively
	workers int    // concurrent record fetches (0 means use config)
	config  string // alternate config file path
}

// newSession wires the index and metrics clients into a search session.
// Flag values win over config file values.
func newSession(ctx context.Context, query string, opts *searchOpts) (*search.Session, error) {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if opts.workers > 0 {
		workers = opts.workers
	}

	index := pypi.NewClient(github.NewClient(cfg.GithubToken))
	return search.NewSession(query, index, search.Options{
		Workers: workers,
		Logger:  loggerFromContext(ctx),
	}), nil
}

// fetchWithSpinner fetches one page while showing a terminal spinner.
// Cancellation passes through silently; other failures print an error line.
func fetchWithSpinner(ctx context.Context, session *search.Session, page int) (*search.Result, error) {
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Searching PyPI for %q...", session.Query()))
	spinner.Start()

	result, err := session.Fetch(ctx, page)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			spinner.Stop()
			return nil, err
		}
		spinner.StopWithError("Search failed")
		return nil, err
	}
	spinner.Stop()
	return result, nil
}

// runSearch fetches a single page and prints it, scripting-friendly.
func runSearch(ctx context.Context, session *search.Session, page int) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := fetchWithSpinner(ctx, session, page)
	if err != nil {
		return err
	}

	if len(result.Records) == 0 {
		printWarning("No packages found for %q", session.Query())
		printDetail("Try a broader query or check the spelling.")
		return nil
	}
	prog.done(fmt.Sprintf("Fetched %d packages", len(result.Records)))

	printNewline()
	for _, rec := range result.Records {
		fmt.Println(renderRecord(rec))
		printNewline()
	}

	printStats(len(result.Records), result.Total, page)
	if result.HasNext {
		printNextStep("Next page", fmt.Sprintf("pipseek %q --plain --page %d", session.Query(), page+1))
	}
	return nil
}

// runInteractive fetches the first page, then hands control to the pager.
func runInteractive(ctx context.Context, session *search.Session, page int) error {
	result, err := fetchWithSpinner(ctx, session, page)
	if err != nil {
		return err
	}

	if len(result.Records) == 0 {
		printWarning("No packages found for %q", session.Query())
		printDetail("Try a broader query or check the spelling.")
		return nil
	}
	printSuccess("Found %s packages matching %q",
		StyleHighlight.Render(formatInt(result.Total)), session.Query())
	printNewline()

	p := tea.NewProgram(newResultsModel(session, page, result))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
