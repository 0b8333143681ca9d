package todo

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// NoDueDate is stored when a task has no usable due date.
const NoDueDate = "N/A"

//go:embed tasks.schema.json
var schemaJSON string

var taskSchema = jsonschema.MustCompileString("tasks.schema.json", schemaJSON)

// Task represents a single entry in the task list.
type Task struct {
	Description string `json:"task"`
	Completed   bool   `json:"completed"`
	DueDate     string `json:"due_date,omitempty"`
}

// Marker returns the status marker shown in front of a task.
func (t Task) Marker() string {
	if t.Completed {
		return "[X]"
	}
	return "[ ]"
}

// ValidationError describes why a task file was rejected.
type ValidationError struct {
	Path string // location inside the document, e.g. "[2].completed"
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Decode parses task file content. Blank content decodes to an empty list.
// Content that is not valid JSON or does not match the task file schema
// returns an error.
func Decode(data []byte) ([]Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []Task{}, nil
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	if err := taskSchema.Validate(doc); err != nil {
		return nil, schemaError(err)
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode task file: %w", err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

// Load reads the task file at path. It never fails: a missing or malformed
// file yields an empty list, and reason (when non-nil) explains why the
// file content was discarded.
func Load(path string) (tasks []Task, reason error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Task{}, nil
		}
		return []Task{}, fmt.Errorf("read task file: %w", err)
	}

	tasks, err = Decode(data)
	if err != nil {
		return []Task{}, err
	}
	return tasks, nil
}

// Save writes tasks to path with 2-space indentation, replacing the file.
func Save(path string, tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal task file: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}

	return nil
}

// FormatLine renders a task the way the text menu lists it.
// n is the 1-based task number.
func FormatLine(n int, t Task) string {
	return fmt.Sprintf("%d. %s %s", n, t.Marker(), t.Description)
}

// FormatDated renders a task with its due date for the list view.
func FormatDated(t Task) string {
	due := t.DueDate
	if due == "" {
		due = NoDueDate
	}
	return fmt.Sprintf("%s %s (Due: %s)", t.Marker(), t.Description, due)
}

func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &ValidationError{Err: err}
	}

	// Report the most specific cause.
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &ValidationError{
		Path: jsonPointerToPath(ve.InstanceLocation),
		Err:  errors.New(ve.Message),
	}
}

func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	path := ""
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
