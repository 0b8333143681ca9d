// Package cmd implements the todolist and todolist-gui commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/nibzard/todolist-go/internal/config"
	"github.com/nibzard/todolist-go/internal/logging"
	"github.com/nibzard/todolist-go/internal/shell"
	"github.com/nibzard/todolist-go/internal/todo"
	"github.com/nibzard/todolist-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Exit codes returned by ExitCode.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// Streams holds the standard streams a command reads and writes.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// RunCLI runs the numbered text menu.
func RunCLI(ctx context.Context, args []string, streams Streams) error {
	return run(ctx, config.VariantCLI, args, streams)
}

// RunGUI runs the full-screen window.
func RunGUI(ctx context.Context, args []string, streams Streams) error {
	return run(ctx, config.VariantGUI, args, streams)
}

// ExitCode maps the result of RunCLI or RunGUI to a process exit code.
// Only the cancellation itself counts as an interrupt; any other error,
// such as a failed save during shutdown, is an error.
func ExitCode(ctx context.Context, err error) int {
	if err == nil {
		return ExitOK
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return ExitInterrupted
	}
	var flagErr *config.FlagError
	if errors.As(err, &flagErr) {
		return ExitUsage
	}
	return ExitError
}

func commandName(variant config.Variant) string {
	if variant == config.VariantGUI {
		return "todolist-gui"
	}
	return "todolist"
}

func run(ctx context.Context, variant config.Variant, args []string, streams Streams) error {
	name := commandName(variant)
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(streams.Err)
	fs.Usage = func() {
		printUsage(fs, variant, streams.Err)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")
	printConfig := fs.Bool("print-config", false, "Print an example config file and the effective values")

	cfg, err := config.Load(variant, fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, variant, streams.Out)
		return nil
	}
	if *showVersion {
		fmt.Fprintf(streams.Out, "%s version %s\n", name, Version)
		return nil
	}
	if *printConfig {
		writeConfig(streams.Out, cfg)
		return nil
	}
	if rest := fs.Args(); len(rest) > 0 {
		return &config.FlagError{Err: fmt.Errorf("unexpected arguments: %v", rest)}
	}

	// The window owns the terminal, so it only logs to a file.
	var fallback io.Writer = streams.Err
	if variant == config.VariantGUI {
		fallback = nil
	}
	logger, err := logging.Open(logging.Options{
		Level:           cfg.LogLevel,
		Format:          cfg.LogFormat,
		ReportTimestamp: cfg.LogTimestamps,
		ReportCaller:    cfg.LogCaller,
		Prefix:          name,
		File:            cfg.LogFile,
	}, fallback)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer logger.Close()

	for _, key := range cfg.UnknownKeys {
		logger.Warn("unknown config key", "key", key)
	}
	logger.Debug("config loaded", "files", cfg.ConfigFiles, "tasks", cfg.TaskFile())

	opts := []todo.Option{todo.WithLogger(logger.Logger)}
	if variant == config.VariantGUI {
		opts = append(opts, todo.WithDueDates())
	}
	store := todo.Open(cfg.TaskFile(), opts...)

	if variant == config.VariantGUI {
		return ui.RunTUI(ctx, store, ui.Options{
			TooltipDelay:  time.Duration(cfg.TooltipDelayMs) * time.Millisecond,
			DoubleClick:   time.Duration(cfg.DoubleClickMs) * time.Millisecond,
			ConfirmRemove: cfg.ConfirmRemove,
			Logger:        logger.Logger,
		})
	}
	return shell.New(store, streams.In, streams.Out, logger.Logger).Run(ctx)
}

// writeConfig prints the documented example file followed by the
// effective value and source of every key.
func writeConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprint(w, config.ExampleConfig())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Effective configuration:")
	for _, e := range cfg.Entries() {
		fmt.Fprintf(w, "#   %s = %v (%s)\n", e.Key, formatValue(e.Value), e.Source)
	}
	for _, path := range cfg.ConfigFiles {
		fmt.Fprintf(w, "# loaded %s\n", path)
	}
}

func formatValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, variant config.Variant, w io.Writer) {
	name := commandName(variant)
	if variant == config.VariantGUI {
		fmt.Fprintln(w, "todolist-gui - a to-do list in a full-screen terminal window")
	} else {
		fmt.Fprintln(w, "todolist - a to-do list driven by a numbered menu")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s [options]\n", name)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration is read from ~/.todolist/todolist.toml, ./todolist.toml,")
	fmt.Fprintln(w, "./.env and TODOLIST_* environment variables. Flags override all of them.")
}
