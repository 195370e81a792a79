package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pipseek/pkg/buildinfo"
)

// Execute runs the pipseek CLI and returns an error if the command fails.
// This is the main entry point for the CLI application.
//
// The root command itself performs the search; there are no subcommands
// beyond shell completion. Logging is configured by the --verbose flag and
// the logger is attached to the context, accessible via loggerFromContext.
//
// Example:
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	var verbose bool
	opts := &searchOpts{}

	root := &cobra.Command{
		Use:   "pipseek <query>",
		Short: "Search the Python Package Index from your terminal",
		Long: `pipseek searches the Python Package Index and enriches each result with
its latest version, summary, homepage, author, release date, and GitHub
stars when the project is hosted there.

Results open in an interactive pager: n and p flip pages, arrow keys
scroll, q quits. Use --plain to print a single page and exit instead.

Examples:
  pipseek requests                 # interactive browsing
  pipseek "web framework"          # multi-word query
  pipseek flask --page 3           # start on page 3
  pipseek flask --plain            # print one page and exit
  pipseek flask --plain --page 2   # script-friendly paging

Set GITHUB_TOKEN (or github_token in ~/.config/pipseek/config.toml) to
raise the GitHub rate limit for star counts.`,
		Args:         cobra.MinimumNArgs(1),
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd.Context(), strings.Join(args, " "), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().IntVar(&opts.page, "page", 1, "result page to fetch")
	root.Flags().BoolVar(&opts.plain, "plain", false, "print one page and exit instead of paging")
	root.Flags().IntVar(&opts.workers, "workers", 0, "concurrent package fetches (overrides config)")
	root.Flags().StringVar(&opts.config, "config", "", "path to config file")

	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// runRoot dispatches the search to plain or interactive mode.
func runRoot(ctx context.Context, query string, opts *searchOpts) error {
	if opts.page < 1 {
		return fmt.Errorf("page %d out of range", opts.page)
	}

	session, err := newSession(ctx, query, opts)
	if err != nil {
		return err
	}

	if opts.plain {
		return runSearch(ctx, session, opts.page)
	}
	return runInteractive(ctx, session, opts.page)
}
