package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifeboard/cli"
	"github.com/sheikhrachel/lifeboard/ctxlog"
	"github.com/sheikhrachel/lifeboard/utils"
)

func main() {
	// Minimal logger until the configured one exists.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "ERROR:", exitErr.Error())
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

// run parses the arguments, opens the input and output files, and runs the
// simulation. Failures come back as *cli.ExitError.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := utils.NewLogger(config.LogLevel, config.LogFormat, stderr)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	if err = cli.PromptMissing(&config, stdin, stdout); err != nil {
		return err
	}

	input, err := os.Open(config.InputPath)
	if err != nil {
		return cli.Exit(cli.ExitInputAccess, err, "input file %q not opened correctly", config.InputPath)
	}
	defer input.Close()

	output, err := os.Create(config.OutputPath)
	if err != nil {
		return cli.Exit(cli.ExitOutputAccess, err, "output file %q not opened correctly", config.OutputPath)
	}
	defer output.Close()

	board, params, err := loadBoard(ctx, config, input)
	if err != nil {
		return err
	}

	if err = simulate(ctx, config, board, params, output, stdout); err != nil {
		return err
	}

	if err = output.Close(); err != nil {
		return cli.Exit(cli.ExitOutputAccess, err, "output file %q not closed correctly", config.OutputPath)
	}
	return nil
}
