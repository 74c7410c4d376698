package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mmcdole/gofeed"
	"github.com/pevans/atomfeed"
	"go.uber.org/zap"
)

func handleCheck(logger *zap.Logger, args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "List entry titles")
	fs.Parse(args)

	paths := fs.Args()
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one Atom file is required\n")
		fmt.Fprintf(os.Stderr, "Usage: atomfeed check [-verbose] FILE...\n")
		os.Exit(1)
	}

	failed := false
	for _, path := range paths {
		feed, err := checkFile(path)
		if err != nil {
			logger.Error("check failed", zap.String("file", path), zap.Error(err))
			failed = true
			continue
		}

		for _, warning := range feedWarnings(feed) {
			logger.Warn(warning, zap.String("file", path))
		}

		fmt.Printf("✓ %s: %q, %d entries\n", path, feed.Title, len(feed.Items))
		if *verbose {
			for _, title := range atomfeed.EntryTitles(feed) {
				fmt.Printf("  - %s\n", title)
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}

// checkFile reads and parses one Atom file.
func checkFile(path string) (*gofeed.Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return atomfeed.Parse(string(data))
}

// feedWarnings lists things in a parsed feed that readers handle poorly or
// that rendered feeds should never contain.
func feedWarnings(feed *gofeed.Feed) []string {
	var warnings []string
	if feed.Generator != "" {
		warnings = append(warnings, "feed carries a generator element")
	}
	if feed.Copyright != "" {
		warnings = append(warnings, "feed carries a rights element")
	}
	for _, item := range feed.Items {
		if item.Description == "" {
			warnings = append(warnings, fmt.Sprintf("entry %q has no summary", item.Title))
		}
	}
	return warnings
}
