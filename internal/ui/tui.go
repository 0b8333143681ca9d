// Package ui provides the full-screen terminal window over a task store.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/nibzard/todolist-go/internal/todo"
)

// ErrNoTTY is returned when the window cannot take over the terminal.
var ErrNoTTY = errors.New("window requires a TTY")

// RunTUI shows the window until the user closes it or ctx is cancelled,
// then saves the store. A failed save takes precedence over ctx.Err().
func RunTUI(ctx context.Context, store *todo.Store, opts Options) error {
	if !IsTTY(os.Stdout) {
		return ErrNoTTY
	}
	return runProgram(ctx, newModel(store, opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
}

func runProgram(ctx context.Context, model *model, opts ...tea.ProgramOption) error {
	opts = append(opts, tea.WithContext(ctx))
	program := tea.NewProgram(model, opts...)
	_, runErr := program.Run()

	if err := model.store.Save(); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	if runErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return runErr
	}
	return nil
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
