package todo

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	// ErrInvalidIndex is returned when a task number or position is out of range.
	ErrInvalidIndex = errors.New("invalid task number")
	// ErrEmptyDescription is returned when a task description is blank.
	ErrEmptyDescription = errors.New("task description is empty")
)

// IndexError reports an out-of-range task number or position.
type IndexError struct {
	Index int // the value the caller passed
	Len   int // list length at the time of the call
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %d (have %d tasks)", ErrInvalidIndex, e.Index, e.Len)
}

// Unwrap returns ErrInvalidIndex.
func (e *IndexError) Unwrap() error {
	return ErrInvalidIndex
}

// Store owns an ordered task list and the file it is persisted to.
// A Store is not safe for concurrent use.
type Store struct {
	path   string
	dated  bool
	tasks  []Task
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithDueDates makes the store keep a due date on every task.
func WithDueDates() Option {
	return func(s *Store) {
		s.dated = true
	}
}

// WithLogger sets the logger used for load, save, and dispatch events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open creates a store backed by path and loads its tasks. A missing or
// malformed file leaves the store empty.
func Open(path string, opts ...Option) *Store {
	s := New(path, nil, opts...)
	tasks, reason := Load(path)
	if reason != nil {
		s.logger.Warn("discarding task file", "path", path, "err", reason)
	}
	s.tasks = tasks
	s.logger.Debug("loaded tasks", "path", path, "tasks", len(tasks))
	return s
}

// New creates a store backed by path holding tasks, without reading the file.
func New(path string, tasks []Task, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tasks = append([]Task{}, tasks...)
	return s
}

// Path returns the task file path.
func (s *Store) Path() string {
	return s.path
}

// Dated reports whether tasks carry due dates.
func (s *Store) Dated() bool {
	return s.dated
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the task list in display order.
func (s *Store) Tasks() []Task {
	return append([]Task{}, s.tasks...)
}

// Task returns the task with 1-based number n.
func (s *Store) Task(n int) (Task, error) {
	if err := s.checkNumber(n); err != nil {
		return Task{}, err
	}
	return s.tasks[n-1], nil
}

// Save writes the whole list to the store's file.
func (s *Store) Save() error {
	if err := Save(s.path, s.tasks); err != nil {
		s.logger.Error("save failed", "path", s.path, "err", err)
		return err
	}
	s.logger.Info("saved tasks", "path", s.path, "tasks", len(s.tasks))
	return nil
}

// Add appends an open task. dueDate is normalized with ParseDueDate on a
// dated store and ignored otherwise.
func (s *Store) Add(description, dueDate string) (Task, error) {
	if strings.TrimSpace(description) == "" {
		return Task{}, ErrEmptyDescription
	}
	t := Task{Description: description}
	if s.dated {
		t.DueDate = ParseDueDate(dueDate)
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

// MarkCompleted marks task number n as completed.
func (s *Store) MarkCompleted(n int) error {
	if err := s.checkNumber(n); err != nil {
		return err
	}
	s.tasks[n-1].Completed = true
	return nil
}

// Remove deletes task number n and returns it.
func (s *Store) Remove(n int) (Task, error) {
	if err := s.checkNumber(n); err != nil {
		return Task{}, err
	}
	removed := s.tasks[n-1]
	s.tasks = append(s.tasks[:n-1], s.tasks[n:]...)
	return removed, nil
}

// ClearCompleted drops every completed task, keeping the order of the
// rest, and returns how many were removed.
func (s *Store) ClearCompleted() int {
	kept := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	s.tasks = kept
	return removed
}

// Move relocates the task at 0-based position from to position to,
// shifting the tasks in between.
func (s *Store) Move(from, to int) error {
	if from < 0 || from >= len(s.tasks) {
		return &IndexError{Index: from, Len: len(s.tasks)}
	}
	if to < 0 || to >= len(s.tasks) {
		return &IndexError{Index: to, Len: len(s.tasks)}
	}
	if from == to {
		return nil
	}
	t := s.tasks[from]
	s.tasks = append(s.tasks[:from], s.tasks[from+1:]...)
	s.tasks = append(s.tasks[:to], append([]Task{t}, s.tasks[to:]...)...)
	return nil
}

// Edit replaces the description and due date of task number n. The due
// date is kept as typed; a blank one becomes NoDueDate.
func (s *Store) Edit(n int, description, dueDate string) error {
	if err := s.checkNumber(n); err != nil {
		return err
	}
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	s.tasks[n-1].Description = description
	if s.dated {
		dueDate = strings.TrimSpace(dueDate)
		if dueDate == "" {
			dueDate = NoDueDate
		}
		s.tasks[n-1].DueDate = dueDate
	}
	return nil
}

func (s *Store) checkNumber(n int) error {
	if n < 1 || n > len(s.tasks) {
		return &IndexError{Index: n, Len: len(s.tasks)}
	}
	return nil
}
