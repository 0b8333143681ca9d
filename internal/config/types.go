package config

import "path/filepath"

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceDotEnv   ConfigSource = "dotenv"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// Variant selects which front end the configuration is loaded for.
// Each front end keeps its own task file.
type Variant string

const (
	VariantCLI Variant = "cli"
	VariantGUI Variant = "gui"
)

// Default values.
const (
	DefaultTasksFile      = "tasks.json"
	DefaultGUITasksFile   = "tasksGUI.json"
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
	DefaultTooltipDelayMs = 500
	DefaultDoubleClickMs  = 400
	DefaultConfirmRemove  = true
)

// Config holds the full configuration for both front ends.
type Config struct {
	// Paths
	TasksFile    string `toml:"tasks_file"`
	GUITasksFile string `toml:"gui_tasks_file"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogFile       string `toml:"log_file"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Full-screen front end
	TooltipDelayMs int  `toml:"tooltip_delay_ms"`
	DoubleClickMs  int  `toml:"double_click_ms"`
	ConfirmRemove  bool `toml:"confirm_remove"`

	// Computed
	Variant     Variant                 `toml:"-"`
	ProjectRoot string                  `toml:"-"`
	ConfigFiles []string                `toml:"-"`
	UnknownKeys []string                `toml:"-"`
	Sources     map[string]ConfigSource `toml:"-"`
}

// TaskFile returns the task file of the variant the config was loaded for.
func (c *Config) TaskFile() string {
	if c.Variant == VariantGUI {
		return c.GUITasksFile
	}
	return c.TasksFile
}

// resolve makes p absolute against the project root.
func (c *Config) resolve(p string) string {
	p = expandPath(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.ProjectRoot, p)
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"tasks_file",
		"gui_tasks_file",
		"log_level",
		"log_format",
		"log_file",
		"log_timestamps",
		"log_caller",
		"tooltip_delay_ms",
		"double_click_ms",
		"confirm_remove",
	}
}

// Entry is one effective configuration value.
type Entry struct {
	Key    string
	Value  interface{}
	Source ConfigSource
}

// Entries lists the effective configuration in file order with the source
// of each value.
func (c *Config) Entries() []Entry {
	values := map[string]interface{}{
		"tasks_file":       c.TasksFile,
		"gui_tasks_file":   c.GUITasksFile,
		"log_level":        c.LogLevel,
		"log_format":       c.LogFormat,
		"log_file":         c.LogFile,
		"log_timestamps":   c.LogTimestamps,
		"log_caller":       c.LogCaller,
		"tooltip_delay_ms": c.TooltipDelayMs,
		"double_click_ms":  c.DoubleClickMs,
		"confirm_remove":   c.ConfirmRemove,
	}
	entries := make([]Entry, 0, len(values))
	for _, field := range configFields() {
		source := c.Sources[field]
		if source == "" {
			source = SourceDefault
		}
		entries = append(entries, Entry{Key: field, Value: values[field], Source: source})
	}
	return entries
}
