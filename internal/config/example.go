package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todolist configuration file
# Place in ./todolist.toml, ./.todolist.toml, or ~/.todolist/todolist.toml.
# Values can be overridden by TODOLIST_* environment variables or CLI flags.

# Task file of the text menu (relative to the working directory)
tasks_file = "tasks.json"

# Task file of the full-screen window
gui_tasks_file = "tasksGUI.json"

# Logging: debug, info, warn, or error
log_level = "warn"

# Log format: text, json, or logfmt
log_format = "text"

# Append logs to a file (supports ~ expansion). The full-screen window
# only logs when this is set.
# log_file = "~/.todolist/todolist.log"

log_timestamps = false
log_caller = false

# Hover delay before a button tooltip appears (milliseconds)
tooltip_delay_ms = 500

# Maximum gap between the two clicks of a double-click (milliseconds)
double_click_ms = 400

# Ask for confirmation before removing a task
confirm_remove = true
`
}
