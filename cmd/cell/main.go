package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/deepnoodle-ai/cell"
	"github.com/deepnoodle-ai/cell/host"
	"github.com/deepnoodle-ai/cell/script"
	"github.com/fatih/color"
	"go.jetify.com/typeid"
)

// CLI configuration
type Config struct {
	File      string
	Eval      string
	Output    string
	Repr      bool
	JSON      bool
	KeepNulls bool
	Verbose   bool
}

func main() {
	config := parseFlags(os.Args[1:])

	if config.File == "" && config.Eval == "" {
		color.Red("Error: a yaml file or risor code is required")
		flag.Usage()
		os.Exit(1)
	}

	logger := setupLogger(config.Verbose)
	if err := run(context.Background(), config, os.Stdout, logger); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) *Config {
	config := &Config{}
	fs := flag.CommandLine

	fs.StringVar(&config.File, "file", "", "Path to a YAML document to load")
	fs.StringVar(&config.File, "f", "", "Path to a YAML document to load (shorthand)")

	fs.StringVar(&config.Eval, "eval", "", "Risor code to evaluate; a loaded document is available as doc")
	fs.StringVar(&config.Eval, "e", "", "Risor code to evaluate (shorthand)")

	fs.StringVar(&config.Output, "output", "", "Write the value to a YAML file")
	fs.StringVar(&config.Output, "o", "", "Write the value to a YAML file (shorthand)")

	fs.BoolVar(&config.Repr, "repr", false, "Print the round-trip form instead of the display form")
	fs.BoolVar(&config.Repr, "r", false, "Print the round-trip form (shorthand)")

	fs.BoolVar(&config.JSON, "json", false, "Print the value as JSON")
	fs.BoolVar(&config.KeepNulls, "keep-nulls", false, "Load YAML nulls as empty expressions instead of dropping them")

	fs.BoolVar(&config.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&config.Verbose, "v", false, "Enable verbose logging (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Cell CLI - Inspect values loaded from YAML or produced by Risor

Usage: %s [options]

Examples:
  # Inspect a YAML document
  %s -file config.yaml

  # Evaluate a Risor expression
  %s -eval '[1, 2, 3]' -repr

  # Evaluate against a loaded document and save the result
  %s -file config.yaml -eval 'doc[0]' -output first.yaml

Options:
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0])
		fs.PrintDefaults()
	}

	fs.Parse(args)
	return config
}

func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return cell.NewLogger(os.Stderr, level)
}

// newRunID returns a typeid identifying one CLI run in log output.
func newRunID() string {
	id, err := typeid.WithPrefix("inspect")
	if err != nil {
		panic(err)
	}
	return id.String()
}

func run(ctx context.Context, config *Config, w io.Writer, logger *slog.Logger) error {
	logger = logger.With("run", newRunID())

	v, err := load(ctx, config, logger)
	if err != nil {
		return err
	}

	if config.Output != "" {
		if err := host.SaveFile(config.Output, v); err != nil {
			return err
		}
		logger.Info("saved value", "file", config.Output)
	}

	if config.JSON {
		out, err := json.MarshalIndent(host.ToGo(v), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format value as json: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	showValue(w, v, config.Repr)
	return nil
}

func load(ctx context.Context, config *Config, logger *slog.Logger) (cell.Var, error) {
	var doc cell.Var
	if config.File != "" {
		logger.Debug("loading yaml", "file", config.File)
		var err error
		doc, err = host.LoadFile(config.File, host.LoadOptions{
			Logger:    logger,
			KeepNulls: config.KeepNulls,
		})
		if err != nil {
			return cell.Var{}, fmt.Errorf("failed to load %s: %w", config.File, err)
		}
	}
	if config.Eval == "" {
		return doc, nil
	}

	engine := script.NewEngine(script.EngineOptions{
		Globals: map[string]any{"doc": doc},
		Logger:  logger,
	})
	v, err := engine.Eval(ctx, config.Eval, nil)
	if err != nil {
		return cell.Var{}, fmt.Errorf("failed to evaluate code: %w", err)
	}
	return v, nil
}

func showValue(w io.Writer, v cell.Var, repr bool) {
	label := color.New(color.FgCyan)
	label.Fprint(w, "Type:   ")
	fmt.Fprintln(w, v.Type())
	label.Fprint(w, "Size:   ")
	fmt.Fprintln(w, v.Size())
	label.Fprint(w, "Truthy: ")
	if v.Is() {
		color.New(color.FgGreen).Fprintln(w, "true")
	} else {
		color.New(color.FgYellow).Fprintln(w, "false")
	}
	label.Fprint(w, "Hash:   ")
	fmt.Fprintf(w, "%016x\n", v.Hash())
	label.Fprint(w, "Value:  ")
	if repr {
		fmt.Fprintln(w, cell.Repr(v))
	} else {
		fmt.Fprintln(w, cell.Str(v))
	}
}
