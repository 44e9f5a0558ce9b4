package main

import (
	"bufio"
	"context"
	"io"

	"github.com/sheikhrachel/lifeboard/cli"
	"github.com/sheikhrachel/lifeboard/ctxlog"
	"github.com/sheikhrachel/lifeboard/model"
	"github.com/sheikhrachel/lifeboard/utils"
)

// loadBoard reads and validates the initial board, classifying the failure
// as invalid data or as an unreadable input
func loadBoard(ctx context.Context, config utils.Config, input io.Reader) (*model.Board, model.Params, error) {
	logger := ctxlog.FromContext(ctx)

	loader, err := config.Loader()
	if err != nil {
		return nil, model.Params{}, cli.Exit(cli.ExitUsage, err, "invalid configuration")
	}

	board, params, err := loader.Load(input)
	switch {
	case model.IsLoadError(err):
		return nil, params, cli.Exit(cli.ExitInvalidData, err, "input data in %q is incorrect", config.InputPath)
	case err != nil:
		return nil, params, cli.Exit(cli.ExitInputAccess, err, "input file %q could not be read", config.InputPath)
	}

	logger.Info("Initial board loaded.",
		"rows", params.Rows,
		"cols", params.Cols,
		"generations", params.Generations,
		"population", board.Population(),
	)
	return board, params, nil
}

// echoToConsole reports whether generation gen of total is mirrored to the console
func echoToConsole(mode string, gen, total int) bool {
	switch mode {
	case utils.ConsoleAll:
		return true
	case utils.ConsoleFirstLast:
		return gen == 0 || gen == 1 || gen == total
	}
	return false
}

// simulate runs every generation, writing each one to output and the
// selected ones to the console
func simulate(
	ctx context.Context,
	config utils.Config,
	board *model.Board,
	params model.Params,
	output io.Writer,
	console io.Writer,
) error {
	logger := ctxlog.FromContext(ctx)

	symbols, err := config.Symbols()
	if err != nil {
		return cli.Exit(cli.ExitUsage, err, "invalid configuration")
	}
	renderer := model.NewTextRenderer(symbols)
	stats := utils.NewStats()
	out := bufio.NewWriter(output)

	sim := model.DefaultEngine().Simulate(board, params.Generations)
	for gen, current := range sim.All() {
		population, hash := current.Population(), current.Hash()
		if stats.Update(gen, population, hash) {
			logger.Info("Board stopped changing.", "generation", gen)
		}
		logger.Debug("Generation computed.", "generation", gen, "population", population, "fingerprint", hash)

		if err = renderer.WriteSnapshot(out, gen, current); err != nil {
			return cli.Exit(cli.ExitOutputAccess, err, "cannot write generation %d to %q", gen, config.OutputPath)
		}
		if echoToConsole(config.Console, gen, params.Generations) {
			if err = renderer.WriteSnapshot(console, gen, current); err != nil {
				return cli.Exit(cli.ExitOutputAccess, err, "cannot write generation %d to the console", gen)
			}
		}
	}

	if err = out.Flush(); err != nil {
		return cli.Exit(cli.ExitOutputAccess, err, "cannot write to %q", config.OutputPath)
	}

	logger.Info("Simulation finished.", "stats", stats)
	return nil
}
