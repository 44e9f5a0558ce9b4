package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifeboard/model"
)

// Console modes select which snapshots are mirrored to the console
const (
	ConsoleFirstLast = "first-last"
	ConsoleAll       = "all"
	ConsoleNone      = "none"
)

// Config holds the configuration for a run
type Config struct {
	InputPath    string `json:"input" hcl:"input,optional"`
	OutputPath   string `json:"output" hcl:"output,optional"`
	Console      string `json:"console" hcl:"console,optional"`
	LiveSymbol   string `json:"live_symbol" hcl:"live_symbol,optional"`
	DeadSymbol   string `json:"dead_symbol" hcl:"dead_symbol,optional"`
	MaxDimension int    `json:"max_dimension" hcl:"max_dimension,optional"`
	LogLevel     string `json:"log_level" hcl:"log_level,optional"`
	LogFormat    string `json:"log_format" hcl:"log_format,optional"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Console:      ConsoleFirstLast,
		LiveSymbol:   string(model.DefaultLiveSymbol),
		DeadSymbol:   string(model.DefaultDeadSymbol),
		MaxDimension: model.DefaultMaxDimension,
		LogLevel:     "warn",
		LogFormat:    "text",
	}
}

// LoadConfig loads configuration from a JSON or HCL file, chosen by extension.
// Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hcl":
		if err := decodeHCL(filename, &config); err != nil {
			return config, err
		}
	default:
		data, err := os.ReadFile(filename)
		if err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
		}
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	return config, nil
}

func decodeHCL(filename string, config *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return errors.Wrapf(diags, "[LoadConfig] failed to parse HCL file: %+v", filename)
	}
	if diags = gohcl.DecodeBody(file.Body, nil, config); diags.HasErrors() {
		return errors.Wrapf(diags, "[LoadConfig] failed to decode HCL file: %+v", filename)
	}
	return nil
}

// Validate checks the values a file or the flags may have set
func (c Config) Validate() error {
	switch c.Console {
	case ConsoleFirstLast, ConsoleAll, ConsoleNone:
	default:
		return errors.Errorf("[Config.Validate] invalid console mode %q: must be %q, %q or %q",
			c.Console, ConsoleFirstLast, ConsoleAll, ConsoleNone)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return errors.Errorf("[Config.Validate] invalid log level %q: must be 'debug', 'info', 'warn' or 'error'", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.Errorf("[Config.Validate] invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
	if c.MaxDimension < 2 {
		return errors.Errorf("[Config.Validate] max dimension must be at least 2, got %d", c.MaxDimension)
	}
	symbols, err := c.Symbols()
	if err != nil {
		return err
	}
	return symbols.Validate()
}

// Symbols returns the configured cell markers
func (c Config) Symbols() (model.Symbols, error) {
	live, err := singleRune("live_symbol", c.LiveSymbol)
	if err != nil {
		return model.Symbols{}, err
	}
	dead, err := singleRune("dead_symbol", c.DeadSymbol)
	if err != nil {
		return model.Symbols{}, err
	}
	return model.Symbols{Live: live, Dead: dead}, nil
}

func singleRune(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Errorf("[Config.Symbols] %s must be a single character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Loader returns a board loader using the configured symbols and size bound
func (c Config) Loader() (*model.Loader, error) {
	symbols, err := c.Symbols()
	if err != nil {
		return nil, err
	}
	return &model.Loader{Symbols: symbols, MaxDimension: c.MaxDimension}, nil
}
