package config

import (
	"os"
	"path/filepath"
)

// findProjectConfigFile looks for a config file in the project root.
func findProjectConfigFile(root string) string {
	// todolist.toml wins over the hidden variant
	names := []string{"todolist.toml", ".todolist.toml"}
	for _, name := range names {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findUserConfigFile returns ~/.todolist/todolist.toml if it exists, else
// todolist/todolist.toml under the OS user config directory.
func findUserConfigFile() string {
	home, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := filepath.Join(home, ".todolist", "todolist.toml")
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	if cfgDir, err := os.UserConfigDir(); err == nil {
		userConfigPath := filepath.Join(cfgDir, "todolist", "todolist.toml")
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}

	return ""
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.TasksFile = DefaultTasksFile
	cfg.GUITasksFile = DefaultGUITasksFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.TooltipDelayMs = DefaultTooltipDelayMs
	cfg.DoubleClickMs = DefaultDoubleClickMs
	cfg.ConfirmRemove = DefaultConfirmRemove

	if cfg.Sources == nil {
		cfg.Sources = make(map[string]ConfigSource)
	}
	for _, field := range configFields() {
		cfg.Sources[field] = SourceDefault
	}
}
