package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/prodspan"
	"github.com/fwojciec/prodspan/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Annotator  prodspan.Annotator
	Pages      prodspan.PageFetcher
	Store      prodspan.PageStore
	Discoverer *crawl.Discoverer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool   `short:"v" help:"Log debug output to stderr"`
	Lexicon   string `env:"PRODSPAN_LEXICON" help:"YAML file overriding the default lexicon"`
	DB        string `env:"PRODSPAN_DB" help:"SQLite page cache used by scrape (disabled when empty)"`
	UserAgent string `env:"PRODSPAN_USER_AGENT" name:"user-agent" help:"User-Agent sent when fetching pages"`

	Annotate AnnotateCmd `cmd:"" help:"Annotate scraped texts with product-name spans"`
	Scrape   ScrapeCmd   `cmd:"" help:"Scrape shop pages from a URL list into text records"`
	Extract  ExtractCmd  `cmd:"" help:"Print the product names found on one page or text"`
	Split    SplitCmd    `cmd:"" help:"Clean annotated records and split them into train and dev sets"`
	Discover DiscoverCmd `cmd:"" help:"List page URLs of a shop for use as a URL list"`
}

// PipelineFlags select how pages are fetched and reduced to text.
type PipelineFlags struct {
	Fetcher   string        `enum:"http,rod" default:"http" help:"Page fetcher (http, rod)"`
	Extractor string        `enum:"goquery,trafilatura,readability" default:"goquery" help:"Main-content extractor (goquery, trafilatura, readability)"`
	Converter string        `enum:"markdown,text" default:"markdown" help:"HTML to text converter (markdown keeps one block per line, text flattens)"`
	Timeout   time.Duration `short:"t" default:"20s" help:"Fetch timeout per page"`
}

// AnnotateCmd is the "annotate" subcommand.
type AnnotateCmd struct {
	Input     string `arg:"" help:"JSON file of scraped text records"`
	Output    string `short:"o" default:"annotated.json" help:"Output file for annotated records"`
	KeepEmpty bool   `name:"keep-empty" help:"Keep records without any product span"`
	Workers   int    `short:"w" default:"0" help:"Concurrent annotation workers (0 means one per CPU)"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        string  `arg:"" name:"urls" help:"Text file with one URL per line"`
	Output      string  `short:"o" default:"texts.json" help:"Output file for text records"`
	MaxURLs     int     `name:"max-urls" default:"500" help:"Maximum number of URLs to process"`
	Target      int     `default:"150" help:"Stop after this many pages succeeded"`
	RPS         float64 `name:"rps" default:"1" help:"Requests per second per shop (0 disables limiting)"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent fetch limit"`

	PipelineFlags `embed:""`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL     string `arg:"" optional:"" help:"Page URL starting with http:// or https://"`
	Text    string `help:"Annotate this text instead of fetching a page"`
	Offsets bool   `help:"Print every span with its rune offsets instead of unique names"`

	PipelineFlags `embed:""`
}

// SplitCmd is the "split" subcommand.
type SplitCmd struct {
	Input  string  `arg:"" help:"JSON file of annotated records"`
	Dev    float64 `default:"0.2" help:"Fraction of records held out as the dev set"`
	Seed   uint64  `default:"42" help:"Shuffle seed"`
	OutDir string  `name:"out-dir" default:"." help:"Directory for train.json and dev.json"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL      string   `arg:"" help:"Shop base URL"`
	Include  []string `short:"i" help:"Only list URLs matching this regex (repeatable)"`
	Exclude  []string `short:"x" help:"Skip URLs matching this regex (repeatable)"`
	MaxPages int      `name:"max-pages" default:"200" help:"Pages to visit when following links without a sitemap"`
	RPS      float64  `name:"rps" default:"1" help:"Requests per second while following links"`
}
