package main

import "time"

// CLI defines the command-line interface structure for Kong.
//
// Exactly one of Domains or Wordlist must be given; the check happens in
// Run so both missing and both present fail before any network activity.
type CLI struct {
	Domains  string `short:"u" help:"Slash-delimited list of domains to analyze (e.g. a.com/b.com)" xor:"input"`
	Wordlist string `short:"w" help:"File with one domain per line" xor:"input"`

	Batch       int           `short:"b" default:"20" help:"Maximum domains per provider request"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent batch fetch limit"`
	Format      string        `short:"o" name:"format" default:"table" enum:"table,json,csv" help:"Output format"`
	ShowNull    bool          `name:"show-null" help:"Report suppressed no-icon tiles as NULL instead of dropping them"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per batch"`
	Rate        float64       `help:"Max provider requests per second (0 = unlimited)"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
}
