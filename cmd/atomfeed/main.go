package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logger, err := newLogger(getEnv("ATOMFEED_LOG_LEVEL", "info"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Get subcommand
	subcommand := os.Args[1]

	switch subcommand {
	case "render":
		handleRender(logger, os.Args[2:])
	case "check":
		handleCheck(logger, os.Args[2:])
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n\n", subcommand)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("atomfeed - Render Atom feeds from feed description files")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  atomfeed <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  render     Render description files (.yaml, .yml, .toml) to Atom")
	fmt.Println("  check      Parse Atom files and report what readers will see")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  ATOMFEED_LOG_LEVEL  debug, info, warn or error (default: info)")
	fmt.Println("  ATOMFEED_OUT_DIR    Default output directory for render")
}
