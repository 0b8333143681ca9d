package config

import "flag"

// parseFlags defines the shared flags on fs, parses args, and records the
// source of every flag the user set.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("todolist", flag.ContinueOnError)
	}

	// The -tasks flag targets the file of the running front end only.
	tasksTarget, tasksField := &cfg.TasksFile, "tasks_file"
	if cfg.Variant == VariantGUI {
		tasksTarget, tasksField = &cfg.GUITasksFile, "gui_tasks_file"
	}
	fs.StringVar(tasksTarget, "tasks", *tasksTarget, "Path to task file")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Append logs to this file")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if cfg.Variant == VariantGUI {
		fs.IntVar(&cfg.TooltipDelayMs, "tooltip-delay", cfg.TooltipDelayMs, "Hover delay before a tooltip appears (ms)")
		fs.IntVar(&cfg.DoubleClickMs, "double-click", cfg.DoubleClickMs, "Maximum gap between the clicks of a double-click (ms)")
		fs.BoolVar(&cfg.ConfirmRemove, "confirm-remove", cfg.ConfirmRemove, "Ask before removing a task")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Map flag names to source field names
	flagToSource := map[string]string{
		"tasks":          tasksField,
		"log-level":      "log_level",
		"log-format":     "log_format",
		"log-file":       "log_file",
		"log-timestamps": "log_timestamps",
		"log-caller":     "log_caller",
		"tooltip-delay":  "tooltip_delay_ms",
		"double-click":   "double_click_ms",
		"confirm-remove": "confirm_remove",
	}
	fs.Visit(func(f *flag.Flag) {
		if fieldName, ok := flagToSource[f.Name]; ok {
			cfg.Sources[fieldName] = SourceFlag
		}
	})

	return nil
}
