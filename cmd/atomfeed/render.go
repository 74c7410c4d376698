package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pevans/atomfeed"
	"github.com/pevans/atomfeed/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func handleRender(logger *zap.Logger, args []string) {
	// Parse flags for render command
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	outDir := fs.String("out", getEnv("ATOMFEED_OUT_DIR", ""), "Directory to write rendered feeds into")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: atomfeed render [-out DIR] FILE...")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	paths := fs.Args()
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one description file is required\n")
		fs.Usage()
		os.Exit(1)
	}

	if *outDir == "" {
		if len(paths) > 1 {
			fmt.Fprintf(os.Stderr, "Error: -out is required when rendering more than one file\n")
			os.Exit(1)
		}

		xml, err := renderFile(paths[0])
		if err != nil {
			logger.Error("render failed", zap.String("file", paths[0]), zap.Error(err))
			os.Exit(1)
		}
		fmt.Println(xml)
		return
	}

	if err := renderAll(context.Background(), logger, paths, *outDir); err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}
}

// renderFile loads one description file and renders it.
func renderFile(path string) (string, error) {
	feed, err := config.Load(path)
	if err != nil {
		return "", err
	}

	xml, err := atomfeed.Render(feed)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return xml, nil
}

// renderAll renders every description into outDir concurrently. The first
// failure cancels the files that have not been written yet.
func renderAll(ctx context.Context, logger *zap.Logger, paths []string, outDir string) error {
	if err := checkOutputCollisions(paths, outDir); err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			start := time.Now()

			xml, err := renderFile(path)
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			target := outputPath(outDir, path)
			if err := os.WriteFile(target, []byte(xml), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}

			logger.Info("rendered feed",
				zap.String("file", path),
				zap.String("output", target),
				zap.Duration("duration", time.Since(start)),
			)
			return nil
		})
	}

	return g.Wait()
}

// checkOutputCollisions refuses batches where two descriptions would be
// written to the same output file, e.g. a/feed.yaml and b/feed.toml.
func checkOutputCollisions(paths []string, outDir string) error {
	targets := make(map[string]string, len(paths))
	for _, path := range paths {
		target := outputPath(outDir, path)
		if other, ok := targets[target]; ok {
			return fmt.Errorf("%s and %s would both be written to %s", other, path, target)
		}
		targets[target] = path
	}
	return nil
}
