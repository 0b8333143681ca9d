package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DotEnvFile is the optional environment file read from the project root.
const DotEnvFile = ".env"

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json", "logfmt"}
)

// Load loads configuration for variant from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.todolist/todolist.toml or OS-specific config dir)
// 3. Project config file (todolist.toml or .todolist.toml in current directory)
// 4. .env file in the current directory
// 5. Environment variables
// 6. CLI flags
func Load(variant Variant, fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{
		Variant: variant,
		Sources: make(map[string]ConfigSource),
	}

	// 1. Set defaults
	setDefaults(cfg)

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	cfg.ProjectRoot = wd

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(cfg.ProjectRoot); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Read .env without touching the process environment
	dotenv, err := readDotEnv(cfg.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", DotEnvFile, err)
	}

	// 5. Override from environment
	loadFromEnv(cfg, envLookup(dotenv))

	// 6. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, &FlagError{Err: err}
	}

	// 7. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// FlagError reports a command line that could not be parsed.
type FlagError struct {
	Err error
}

func (e *FlagError) Error() string {
	return "parsing flags: " + e.Err.Error()
}

func (e *FlagError) Unwrap() error {
	return e.Err
}

// loadConfigFile decodes TOML from path into cfg and records the source of
// every key the file defines.
func loadConfigFile(cfg *Config, path string, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	for _, field := range configFields() {
		if md.IsDefined(field) {
			cfg.Sources[field] = source
		}
	}
	for _, key := range md.Undecoded() {
		cfg.UnknownKeys = append(cfg.UnknownKeys, fmt.Sprintf("%s: %s", filepath.Base(path), key.String()))
	}
	cfg.ConfigFiles = append(cfg.ConfigFiles, path)
	return nil
}

// readDotEnv reads the project .env file. A missing file is not an error.
func readDotEnv(root string) (map[string]string, error) {
	path := filepath.Join(root, DotEnvFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return godotenv.Read(path)
}

// finalizeConfig computes derived values and validates settings.
func finalizeConfig(cfg *Config) error {
	// Make paths absolute if they're relative
	cfg.TasksFile = cfg.resolve(cfg.TasksFile)
	cfg.GUITasksFile = cfg.resolve(cfg.GUITasksFile)
	cfg.LogFile = cfg.resolve(cfg.LogFile)

	if cfg.TasksFile == "" || cfg.GUITasksFile == "" {
		return fmt.Errorf("task file path is empty")
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if !contains(validLogLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level %q, must be one of: %s", cfg.LogLevel, strings.Join(validLogLevels, ", "))
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if !contains(validLogFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format %q, must be one of: %s", cfg.LogFormat, strings.Join(validLogFormats, ", "))
	}
	if cfg.TooltipDelayMs < 0 {
		return fmt.Errorf("tooltip_delay_ms must not be negative, got %d", cfg.TooltipDelayMs)
	}
	if cfg.DoubleClickMs < 0 {
		return fmt.Errorf("double_click_ms must not be negative, got %d", cfg.DoubleClickMs)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
