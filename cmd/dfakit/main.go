package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/dfakit/internal/app"
	"github.com/specialistvlad/dfakit/internal/cli"
	"github.com/specialistvlad/dfakit/internal/config"
	"github.com/specialistvlad/dfakit/internal/hcl"
	"github.com/specialistvlad/dfakit/internal/yaml"
)

// main is the entrypoint for the dfakit driver.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	return app.NewApp(outW, logW, appConfig, loaderFor(appConfig.Format)).Run(ctx)
}

// loaderFor returns the definitions loader of a validated format.
func loaderFor(format string) config.Loader {
	if format == "yaml" {
		return yaml.NewLoader()
	}
	return hcl.NewLoader()
}
