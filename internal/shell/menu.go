// Package shell implements the interactive numbered text menu.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todolist-go/internal/todo"
)

const menu = `
Options:
1. Add task
2. View tasks
3. Mark task as completed
4. Remove task
5. Exit
`

// Menu is the read-eval loop over a task store.
type Menu struct {
	store  *todo.Store
	in     io.Reader
	out    io.Writer
	logger *log.Logger
}

// New creates a menu reading choices from in and printing to out.
func New(store *todo.Store, in io.Reader, out io.Writer, logger *log.Logger) *Menu {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Menu{
		store:  store,
		in:     in,
		out:    out,
		logger: logger,
	}
}

// Run prompts until the user chooses Exit or input ends, then saves the
// store. If ctx is cancelled first, Run returns ctx.Err() without saving.
// A failed read is returned without saving too.
func (m *Menu) Run(ctx context.Context) error {
	lines := readLines(ctx, m.in)

	next := func(prompt string) (string, error) {
		fmt.Fprint(m.out, prompt)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case in, ok := <-lines:
			if !ok {
				return "", io.EOF
			}
			return in.line, in.err
		}
	}

	for {
		fmt.Fprint(m.out, menu)
		choice, err := next("Enter your choice: ")
		if err != nil {
			return m.finish(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			description, err := next("Enter task: ")
			if err != nil {
				return m.finish(err)
			}
			m.add(description)
		case "2":
			m.view()
		case "3":
			input, err := next("Enter task number to mark as completed: ")
			if err != nil {
				return m.finish(err)
			}
			m.complete(input)
		case "4":
			input, err := next("Enter task number to remove: ")
			if err != nil {
				return m.finish(err)
			}
			m.remove(input)
		case "5":
			if err := m.store.Save(); err != nil {
				return err
			}
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

// finish handles the end of input. A closed input saves like Exit; a
// cancelled context or a read error returns without saving.
func (m *Menu) finish(err error) error {
	if !errors.Is(err, io.EOF) {
		m.logger.Warn("menu interrupted, changes not saved", "err", err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("read input: %w", err)
	}
	m.logger.Debug("input closed, saving")
	fmt.Fprintln(m.out)
	if err := m.store.Save(); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Exiting...")
	return nil
}

func (m *Menu) add(description string) {
	cmd := &todo.AddCommand{Description: description}
	if err := m.store.Dispatch(cmd); err != nil {
		fmt.Fprintln(m.out, "Task description cannot be empty.")
		return
	}
	fmt.Fprintf(m.out, "Task \"%s\" added.\n", cmd.Added.Description)
}

func (m *Menu) view() {
	tasks := m.store.Tasks()
	if len(tasks) == 0 {
		fmt.Fprintln(m.out, "No tasks found.")
		return
	}
	fmt.Fprintln(m.out, "Tasks:")
	for i, t := range tasks {
		fmt.Fprintln(m.out, todo.FormatLine(i+1, t))
	}
}

func (m *Menu) complete(input string) {
	n, ok := m.parseNumber(input)
	if !ok {
		return
	}
	if err := m.store.Dispatch(todo.CompleteCommand{Number: n}); err != nil {
		fmt.Fprintln(m.out, "Invalid task number.")
		return
	}
	fmt.Fprintf(m.out, "Task %d marked as completed.\n", n)
}

func (m *Menu) remove(input string) {
	n, ok := m.parseNumber(input)
	if !ok {
		return
	}
	cmd := &todo.RemoveCommand{Number: n}
	if err := m.store.Dispatch(cmd); err != nil {
		fmt.Fprintln(m.out, "Invalid task number.")
		return
	}
	fmt.Fprintf(m.out, "Task \"%s\" removed.\n", cmd.Removed.Description)
}

func (m *Menu) parseNumber(input string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		fmt.Fprintln(m.out, "Invalid input. Please enter a number.")
		return 0, false
	}
	return n, true
}

// input is one line read from the menu's reader, or the error that ended
// reading.
type input struct {
	line string
	err  error
}

// readLines forwards lines from r so a pending read never blocks
// cancellation. Lines may be of any length. The last value carries the
// error that stopped reading, io.EOF at the end of input.
func readLines(ctx context.Context, r io.Reader) <-chan input {
	lines := make(chan input)
	go func() {
		defer close(lines)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			var in input
			switch {
			case err == nil:
				in.line = line
			case errors.Is(err, io.EOF) && line != "":
				// Unterminated last line; the next read reports EOF.
				in.line = line
			default:
				in.err = err
			}
			in.line = strings.TrimSuffix(strings.TrimSuffix(in.line, "\n"), "\r")
			select {
			case lines <- in:
			case <-ctx.Done():
				return
			}
			if in.err != nil {
				return
			}
		}
	}()
	return lines
}
