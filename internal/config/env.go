package config

import (
	"os"
	"strconv"
	"strings"
)

// lookupFunc resolves an environment variable and reports where it came from.
type lookupFunc func(key string) (string, ConfigSource, bool)

// envLookup prefers the real environment over values read from .env.
// An empty variable counts as unset.
func envLookup(dotenv map[string]string) lookupFunc {
	return func(key string) (string, ConfigSource, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, SourceEnv, true
		}
		if v, ok := dotenv[key]; ok {
			return v, SourceDotEnv, true
		}
		return "", "", false
	}
}

// loadFromEnv overrides config from TODOLIST_* variables.
func loadFromEnv(cfg *Config, lookup lookupFunc) {
	str := func(key, field string, target *string) {
		if v, source, ok := lookup(key); ok && v != "" {
			*target = v
			cfg.Sources[field] = source
		}
	}
	integer := func(key, field string, target *int) {
		if v, source, ok := lookup(key); ok && v != "" {
			if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				*target = i
				cfg.Sources[field] = source
			}
		}
	}
	boolean := func(key, field string, target *bool) {
		if v, source, ok := lookup(key); ok && v != "" {
			*target = boolFromString(v)
			cfg.Sources[field] = source
		}
	}

	// Paths
	str("TODOLIST_TASKS", "tasks_file", &cfg.TasksFile)
	str("TODOLIST_GUI_TASKS", "gui_tasks_file", &cfg.GUITasksFile)

	// Logging configuration
	str("TODOLIST_LOG_LEVEL", "log_level", &cfg.LogLevel)
	str("TODOLIST_LOG_FORMAT", "log_format", &cfg.LogFormat)
	str("TODOLIST_LOG_FILE", "log_file", &cfg.LogFile)
	boolean("TODOLIST_LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps)
	boolean("TODOLIST_LOG_CALLER", "log_caller", &cfg.LogCaller)

	// Full-screen front end
	integer("TODOLIST_TOOLTIP_DELAY_MS", "tooltip_delay_ms", &cfg.TooltipDelayMs)
	integer("TODOLIST_DOUBLE_CLICK_MS", "double_click_ms", &cfg.DoubleClickMs)
	boolean("TODOLIST_CONFIRM_REMOVE", "confirm_remove", &cfg.ConfirmRemove)
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
