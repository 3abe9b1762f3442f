package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/prodspan"
	"github.com/fwojciec/prodspan/crawl"
	"github.com/fwojciec/prodspan/fs"
	"github.com/fwojciec/prodspan/goquery"
	"github.com/fwojciec/prodspan/htmltomarkdown"
	pshttp "github.com/fwojciec/prodspan/http"
	"github.com/fwojciec/prodspan/readability"
	"github.com/fwojciec/prodspan/rod"
	psslog "github.com/fwojciec/prodspan/slog"
	"github.com/fwojciec/prodspan/sqlite"
	"github.com/fwojciec/prodspan/trafilatura"
	"github.com/fwojciec/prodspan/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite page cache, opened only when a database path is configured.
	DB *sqlite.DB

	closers []io.Closer
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close releases fetchers and the page cache.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	if m.DB != nil {
		if err := m.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		m.DB = nil
	}
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("prodspan"),
		kong.Description("Bootstrap product-name training data from shop pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no command specified. Run 'prodspan --help' to see available commands")
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	logger := newLogger(stderr, cli.Verbose)
	deps.Logger = logger

	cfg, err := yaml.Load(cli.Lexicon)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set PRODSPAN_LEXICON to a valid lexicon file or leave it empty for the defaults")
		fmt.Fprintf(stderr, "error: %s\n", errorText(err))
		return err
	}
	deps.Annotator = psslog.NewLoggingAnnotator(cfg.Annotator(logger), logger)

	defer m.Close()

	switch strings.Fields(kongCtx.Command())[0] {
	case "scrape":
		scraper, err := m.newScraper(cli, cli.Scrape.PipelineFlags, logger)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return err
		}
		scraper.MaxURLs = cli.Scrape.MaxURLs
		scraper.Target = cli.Scrape.Target
		scraper.Concurrency = cli.Scrape.Concurrency
		scraper.RateLimiter = crawl.NewDomainLimiter(cli.Scrape.RPS)
		deps.Pages = scraper
		deps.Store = fs.NewFileStore(cli.Scrape.Output)

	case "extract":
		if cli.Extract.Text == "" {
			scraper, err := m.newScraper(cli, cli.Extract.PipelineFlags, logger)
			if err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
				return err
			}
			scraper.MaxURLs = 1
			scraper.Target = 1
			scraper.Concurrency = 1
			deps.Pages = scraper
		}

	case "discover":
		fetcher := pshttp.NewFetcher(userAgentOpts(cli.UserAgent)...)
		m.closers = append(m.closers, fetcher)
		deps.Discoverer = &crawl.Discoverer{
			Sitemaps: psslog.NewLoggingSitemapService(
				pshttp.NewSitemapService(pshttp.WithSitemapUserAgent(cli.UserAgent)), logger),
			Fetcher:     psslog.NewLoggingFetcher(fetcher, logger),
			Links:       psslog.NewLoggingLinkExtractor(goquery.NewLinkExtractor(), logger),
			RateLimiter: crawl.NewDomainLimiter(cli.Discover.RPS),
			Logger:      logger,
			MaxPages:    cli.Discover.MaxPages,
		}
	}

	return kongCtx.Run(deps)
}

// newScraper wires the fetch pipeline selected by flags. The page cache is
// attached when a database path is configured.
func (m *Main) newScraper(cli *CLI, flags PipelineFlags, logger *slog.Logger) (*crawl.Scraper, error) {
	fetcher, err := m.newFetcher(flags, cli.UserAgent)
	if err != nil {
		return nil, err
	}

	scraper := &crawl.Scraper{
		Fetcher:   psslog.NewLoggingFetcher(fetcher, logger),
		Extractor: newExtractor(flags.Extractor),
		Converter: newConverter(flags.Converter),
		Logger:    logger,
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			m.DB = nil
			return nil, fmt.Errorf("failed to open page cache at %q (check PRODSPAN_DB): %w", cli.DB, err)
		}
		scraper.Pages = sqlite.NewPageService(m.DB)
	}

	return scraper, nil
}

func (m *Main) newFetcher(flags PipelineFlags, userAgent string) (prodspan.Fetcher, error) {
	if flags.Fetcher == "rod" {
		opts := []rod.Option{rod.WithFetchTimeout(flags.Timeout)}
		if userAgent != "" {
			opts = append(opts, rod.WithUserAgent(userAgent))
		}
		fetcher, err := rod.NewFetcher(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		m.closers = append(m.closers, fetcher)
		return fetcher, nil
	}

	opts := append([]pshttp.Option{pshttp.WithTimeout(flags.Timeout)}, userAgentOpts(userAgent)...)
	fetcher := pshttp.NewFetcher(opts...)
	m.closers = append(m.closers, fetcher)
	return fetcher, nil
}

func userAgentOpts(userAgent string) []pshttp.Option {
	if userAgent == "" {
		return nil
	}
	return []pshttp.Option{pshttp.WithUserAgent(userAgent)}
}

func newExtractor(name string) prodspan.Extractor {
	switch name {
	case "trafilatura":
		return trafilatura.NewExtractor()
	case "readability":
		return readability.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

func newConverter(name string) prodspan.Converter {
	if name == "text" {
		return goquery.NewTextConverter()
	}
	return htmltomarkdown.NewConverter()
}

// errorText returns the application message, or the full error text for
// errors that carry none.
func errorText(err error) string {
	if prodspan.ErrorCode(err) == prodspan.EINTERNAL {
		return err.Error()
	}
	return prodspan.ErrorMessage(err)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
