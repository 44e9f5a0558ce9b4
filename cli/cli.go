// Package cli parses command-line arguments, prompts for anything still
// missing, and defines the process exit codes.
package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifeboard/utils"
)

// Exit codes. Input, output and data failures each get their own code so
// scripts can tell them apart.
const (
	ExitInputAccess  = 1
	ExitOutputAccess = 2
	ExitInvalidData  = 3
	ExitUsage        = 64
)

const (
	inputPrompt  = "Enter the name of the input file: "
	outputPrompt = "Enter the name of the output file: "
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code and a message.
func Exit(code int, err error, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// Parse processes command-line arguments into a validated Config. It returns
// true when the program should exit cleanly, as after -h.
//
// A -config file is loaded first; flags given explicitly override its values.
func Parse(args []string, output io.Writer) (utils.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("lifeboard", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
lifeboard - Conway's Game of Life on a bounded board.

Usage:
  lifeboard [options] [INPUT [OUTPUT]]

Arguments:
  INPUT   File holding "rows cols generations" and the initial board.
  OUTPUT  File receiving every generation.
  Both are prompted for when missing.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := utils.DefaultConfig()
	configFlag := flagSet.String("config", "", "Path to a .json or .hcl run configuration.")
	inputFlag := flagSet.String("input", "", "Path to the input board file.")
	outputFlag := flagSet.String("output", "", "Path to the output file.")
	consoleFlag := flagSet.String("console", defaults.Console, "Generations echoed to the console: 'first-last', 'all' or 'none'.")
	maxDimFlag := flagSet.Int("max-dimension", defaults.MaxDimension, "Exclusive upper bound on rows and columns.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return defaults, true, nil
		}
		return defaults, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	config := defaults
	if *configFlag != "" {
		var err error
		if config, err = utils.LoadConfig(*configFlag); err != nil {
			return defaults, false, &ExitError{Code: ExitUsage, Message: "invalid configuration", Err: err}
		}
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["input"] {
		config.InputPath = *inputFlag
	}
	if set["output"] {
		config.OutputPath = *outputFlag
	}
	if set["console"] {
		config.Console = strings.ToLower(*consoleFlag)
	}
	if set["max-dimension"] {
		config.MaxDimension = *maxDimFlag
	}
	if set["log-format"] {
		config.LogFormat = strings.ToLower(*logFormatFlag)
	}
	if set["log-level"] {
		config.LogLevel = strings.ToLower(*logLevelFlag)
	}

	switch flagSet.NArg() {
	case 0:
	case 1, 2:
		if !set["input"] {
			config.InputPath = flagSet.Arg(0)
		}
		if flagSet.NArg() == 2 && !set["output"] {
			config.OutputPath = flagSet.Arg(1)
		}
	default:
		return defaults, false, &ExitError{Code: ExitUsage, Message: "too many arguments: expected at most INPUT and OUTPUT"}
	}

	if err := config.Validate(); err != nil {
		return defaults, false, &ExitError{Code: ExitUsage, Message: "invalid configuration", Err: err}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// PromptMissing asks on in/out for the input and output file names the
// configuration does not name yet.
func PromptMissing(config *utils.Config, in io.Reader, out io.Writer) error {
	if config.InputPath != "" && config.OutputPath != "" {
		return nil
	}

	scanner := bufio.NewScanner(in)
	ask := func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		for scanner.Scan() {
			if answer := strings.TrimSpace(scanner.Text()); answer != "" {
				return answer, nil
			}
			fmt.Fprint(out, prompt)
		}
		if err := scanner.Err(); err != nil {
			return "", errors.Wrap(err, "[PromptMissing] failed to read answer")
		}
		return "", errors.New("[PromptMissing] no file name given")
	}

	var err error
	if config.InputPath == "" {
		if config.InputPath, err = ask(inputPrompt); err != nil {
			return &ExitError{Code: ExitInputAccess, Message: "input file not named", Err: err}
		}
	}
	if config.OutputPath == "" {
		if config.OutputPath, err = ask(outputPrompt); err != nil {
			return &ExitError{Code: ExitOutputAccess, Message: "output file not named", Err: err}
		}
	}
	return nil
}
