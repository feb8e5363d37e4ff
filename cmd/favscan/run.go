package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/favscan"
	favhttp "github.com/fwojciec/favscan/http"
	"github.com/fwojciec/favscan/png"
	"github.com/fwojciec/favscan/publicsuffix"
	"github.com/fwojciec/favscan/scan"
	favslog "github.com/fwojciec/favscan/slog"
	"github.com/google/uuid"
)

// Main represents the program.
type Main struct {
	// Fetcher overrides the provider client. Set by end-to-end tests.
	Fetcher favscan.IconFetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. A user interrupt is not
// an error: scheduling stops, a cancellation notice is printed, and
// whatever was aggregated before the interrupt is still reported.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("favscan"),
		kong.Description("Cluster domains by favicon fingerprint"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 0 || (len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help")) {
		_, _ = parser.Parse([]string{"--help"})
		if len(args) == 0 {
			return favscan.Errorf(favscan.EINVALID, "one of --domains or --wordlist is required")
		}
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Validate: exactly one input mode
	if (cli.Domains == "") == (cli.Wordlist == "") {
		return favscan.Errorf(favscan.EINVALID, "exactly one of --domains or --wordlist is required")
	}

	domains, err := readDomains(cli)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	// Filter syntactically invalid candidates up front; they never count
	// toward batch length or size.
	validator := publicsuffix.NewValidator()
	var valid []string
	for _, domain := range domains {
		if validator.IsValid(domain) {
			valid = append(valid, domain)
		} else {
			logger.Debug("skipping invalid domain", "domain", domain)
		}
	}
	if len(valid) == 0 {
		return favscan.Errorf(favscan.EINVALID, "no valid domains to analyze")
	}

	client := favhttp.NewClient(
		favhttp.WithTimeout(cli.Timeout),
		favhttp.WithRateLimit(cli.Rate),
	)
	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = favslog.NewLoggingFetcher(client, logger)
	}
	defer fetcher.Close()

	batches := favscan.Pack(valid, client.BaseURL(), favscan.DefaultMaxURLLen, cli.Batch)

	aggregator := scan.NewAggregator()
	scanner := &scan.Scanner{
		Fetcher:     fetcher,
		Decoder:     png.NewDecoder(),
		Aggregator:  aggregator,
		Concurrency: cli.Concurrency,
		ShowNull:    cli.ShowNull,
		Logger:      logger,
	}

	progress := func(event scan.ProgressEvent) {
		switch event.Type {
		case scan.ProgressCompleted, scan.ProgressFailed:
			fmt.Fprintf(stderr, "\rProcessing batches: %d/%d", event.Completed, event.Total)
		case scan.ProgressFinished:
			if event.Total > 0 {
				fmt.Fprintln(stderr)
			}
		}
	}

	_, err = scanner.Run(ctx, batches, progress)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			return err
		}
		fmt.Fprintln(stderr, "Operation cancelled by user")
	}

	// Whatever was aggregated before an interrupt is still a valid report.
	out, err := aggregator.Report().Format(favscan.Format(cli.Format))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, out)

	return nil
}

// newLogger builds the stderr logger. Warnings and errors only by
// default; --verbose enables debug output. Every record carries a per-run
// ID.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run", uuid.NewString())
}

// readDomains returns the candidate domains for the selected input mode.
func readDomains(cli *CLI) ([]string, error) {
	if cli.Domains != "" {
		return strings.Split(cli.Domains, "/"), nil
	}

	data, err := os.ReadFile(cli.Wordlist)
	if err != nil {
		return nil, fmt.Errorf("read wordlist: %w", err)
	}
	var domains []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			domains = append(domains, line)
		}
	}
	return domains, nil
}
