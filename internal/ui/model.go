package ui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/todolist-go/internal/todo"
)

type state int

const (
	stateIdle state = iota
	stateEditing
)

type focus int

const (
	focusDesc focus = iota
	focusDue
	focusAdd
	focusList
	focusComplete
	focusRemove
	focusClear
	focusCount
)

var buttonFocus = map[button]focus{
	buttonAdd:      focusAdd,
	buttonComplete: focusComplete,
	buttonRemove:   focusRemove,
	buttonClear:    focusClear,
}

const (
	msgEnterTask     = "Please enter a task."
	msgSelectTask    = "Please select a task."
	msgConfirmRemove = "Are you sure you want to remove this task? (y/n)"
)

// Options holds the window's interaction settings.
type Options struct {
	TooltipDelay  time.Duration
	DoubleClick   time.Duration
	ConfirmRemove bool
	Logger        *log.Logger
}

// tooltipMsg fires once the hover delay for a button has passed. seq ties
// it to the hover that scheduled it.
type tooltipMsg struct {
	seq int
}

type model struct {
	store  *todo.Store
	opts   Options
	logger *log.Logger
	now    func() time.Time

	state    state
	focus    focus
	selected int // 0-based, -1 when nothing is selected
	offset   int
	width    int
	height   int
	quitting bool

	desc textinput.Model
	due  textinput.Model

	// edit modal
	editing   int // 1-based task number being edited
	editDesc  textinput.Model
	editDue   textinput.Model
	editField int

	confirming bool
	pending    int // 1-based task number awaiting confirmation

	dragging bool
	dragRow  int

	lastClickRow int
	lastClickAt  time.Time

	hovered  button
	hoverSeq int
	tooltip  string

	status string
}

func newModel(store *todo.Store, opts Options) *model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &model{
		store:        store,
		opts:         opts,
		logger:       logger,
		now:          time.Now,
		selected:     -1,
		lastClickRow: -1,
		desc:         newInput("What needs doing?"),
		due:          newInput(todo.DueDatePlaceholder),
		editDesc:     newInput(""),
		editDue:      newInput(todo.DueDatePlaceholder),
	}
	m.desc.Focus()
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 0
	ti.Width = 40
	return ti
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeInputs()
	case tooltipMsg:
		if msg.seq == m.hoverSeq && m.hovered != buttonNone && m.state == stateIdle {
			m.tooltip = tooltips[m.hovered]
		}
	case tea.KeyMsg:
		if m.state == stateEditing {
			cmd = m.updateModal(msg)
		} else {
			cmd = m.updateKey(msg)
		}
	case tea.MouseMsg:
		if m.state == stateIdle && !m.tooSmall() {
			cmd = m.updateMouse(msg)
		}
	default:
		cmd = m.forwardToInput(msg)
	}
	m.offset = m.layout().offset
	return m, cmd
}

func (m *model) resizeInputs() {
	w := m.width - labelWidth - 2
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	for _, ti := range []*textinput.Model{&m.desc, &m.due, &m.editDesc, &m.editDue} {
		ti.Width = w
	}
}

func (m *model) updateKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if m.confirming {
		m.confirming = false
		m.status = ""
		if key == "y" || key == "Y" {
			m.removeTask(m.pending)
		}
		return nil
	}

	switch key {
	case "ctrl+c", "esc":
		return m.quit()
	case "ctrl+s":
		m.addTask()
		return nil
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "up":
		m.moveSelection(-1)
		return nil
	case "down":
		m.moveSelection(1)
		return nil
	}

	if m.focus == focusDesc || m.focus == focusDue {
		if key == "enter" {
			m.addTask()
			return nil
		}
		return m.forwardToInput(msg)
	}

	switch key {
	case "q":
		return m.quit()
	case "enter", " ":
		if b := m.focusedButton(); b != buttonNone {
			m.press(b)
			return nil
		}
		if key == "enter" {
			return m.openEdit()
		}
		m.press(buttonComplete)
	case "e":
		return m.openEdit()
	case "x":
		m.press(buttonComplete)
	case "delete":
		m.press(buttonRemove)
	case "c":
		m.press(buttonClear)
	case "home":
		if m.store.Len() > 0 {
			m.selected = 0
		}
	case "end":
		m.selected = m.store.Len() - 1
	}
	return nil
}

func (m *model) focusedButton() button {
	for b, f := range buttonFocus {
		if f == m.focus {
			return b
		}
	}
	return buttonNone
}

func (m *model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.desc.Blur()
	m.due.Blur()
	switch f {
	case focusDesc:
		return m.desc.Focus()
	case focusDue:
		return m.due.Focus()
	}
	return nil
}

func (m *model) forwardToInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.state == stateEditing && m.editField == 0:
		m.editDesc, cmd = m.editDesc.Update(msg)
	case m.state == stateEditing:
		m.editDue, cmd = m.editDue.Update(msg)
	case m.focus == focusDesc:
		m.desc, cmd = m.desc.Update(msg)
	case m.focus == focusDue:
		m.due, cmd = m.due.Update(msg)
	}
	return cmd
}

func (m *model) moveSelection(delta int) {
	n := m.store.Len()
	if n == 0 {
		m.selected = -1
		return
	}
	next := m.selected + delta
	if m.selected < 0 {
		next = 0
	}
	if next < 0 {
		next = 0
	}
	if next >= n {
		next = n - 1
	}
	m.selected = next
}

// press runs the action behind a button.
func (m *model) press(b button) {
	switch b {
	case buttonAdd:
		m.addTask()
	case buttonComplete:
		m.completeTask()
	case buttonRemove:
		m.askRemove()
	case buttonClear:
		m.clearCompleted()
	}
}

func (m *model) addTask() {
	cmd := &todo.AddCommand{Description: m.desc.Value(), DueDate: m.due.Value()}
	if err := m.store.Dispatch(cmd); err != nil {
		m.status = msgEnterTask
		return
	}
	m.desc.Reset()
	m.due.Reset()
	m.status = ""
}

func (m *model) completeTask() {
	if m.selected < 0 {
		m.status = msgSelectTask
		return
	}
	if err := m.store.Dispatch(todo.CompleteCommand{Number: m.selected + 1}); err != nil {
		m.status = msgSelectTask
		return
	}
	m.status = ""
}

func (m *model) askRemove() {
	if m.selected < 0 {
		m.status = msgSelectTask
		return
	}
	if !m.opts.ConfirmRemove {
		m.removeTask(m.selected + 1)
		return
	}
	m.confirming = true
	m.pending = m.selected + 1
	m.status = msgConfirmRemove
}

func (m *model) removeTask(n int) {
	if err := m.store.Dispatch(&todo.RemoveCommand{Number: n}); err != nil {
		m.status = msgSelectTask
		return
	}
	m.status = ""
	if m.selected >= m.store.Len() {
		m.selected = m.store.Len() - 1
	}
}

func (m *model) clearCompleted() {
	cmd := &todo.ClearCompletedCommand{}
	if err := m.store.Dispatch(cmd); err != nil {
		return
	}
	m.status = ""
	if cmd.Cleared > 0 {
		m.selected = -1
	}
}

func (m *model) openEdit() tea.Cmd {
	if m.selected < 0 {
		m.status = msgSelectTask
		return nil
	}
	t, err := m.store.Task(m.selected + 1)
	if err != nil {
		m.status = msgSelectTask
		return nil
	}
	m.state = stateEditing
	m.editing = m.selected + 1
	m.editField = 0
	m.editDesc.SetValue(t.Description)
	m.editDue.SetValue(t.DueDate)
	m.editDue.Blur()
	m.status = ""
	m.tooltip = ""
	m.dragging = false
	m.confirming = false
	return m.editDesc.Focus()
}

func (m *model) updateModal(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeEdit()
		return nil
	case "enter", "ctrl+s":
		err := m.store.Dispatch(todo.EditCommand{
			Number:      m.editing,
			Description: m.editDesc.Value(),
			DueDate:     m.editDue.Value(),
		})
		if errors.Is(err, todo.ErrEmptyDescription) {
			m.status = msgEnterTask
			return nil
		}
		m.closeEdit()
		return nil
	case "tab", "shift+tab", "up", "down":
		m.editField = 1 - m.editField
		if m.editField == 0 {
			m.editDue.Blur()
			return m.editDesc.Focus()
		}
		m.editDesc.Blur()
		return m.editDue.Focus()
	case "ctrl+c":
		m.closeEdit()
		return m.quit()
	}
	return m.forwardToInput(msg)
}

func (m *model) closeEdit() {
	m.state = stateIdle
	m.editing = 0
	m.editDesc.Blur()
	m.editDue.Blur()
	m.status = ""
}

func (m *model) updateMouse(msg tea.MouseMsg) tea.Cmd {
	l := m.layout()
	count := m.store.Len()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.moveSelection(-1)
			return nil
		case tea.MouseButtonWheelDown:
			m.moveSelection(1)
			return nil
		case tea.MouseButtonLeft:
		default:
			return nil
		}
		if m.confirming {
			m.confirming = false
			m.status = ""
		}
		if b := l.buttonAt(msg.X, msg.Y); b != buttonNone {
			cmd := m.setFocus(buttonFocus[b])
			m.press(b)
			return cmd
		}
		switch {
		case l.desc.contains(msg.X, msg.Y):
			return m.setFocus(focusDesc)
		case l.due.contains(msg.X, msg.Y):
			return m.setFocus(focusDue)
		case l.inList(msg.Y, count):
			row, _ := l.rowAt(msg.Y, count)
			return m.pressRow(row)
		}
	case tea.MouseActionMotion:
		if m.dragging {
			if row, ok := l.rowAt(msg.Y, count); ok {
				m.dragTo(row)
			}
			return nil
		}
		return m.hover(l.buttonAt(msg.X, msg.Y))
	case tea.MouseActionRelease:
		if m.dragging {
			m.logger.Debug("drag finished", "row", m.dragRow+1)
		}
		m.dragging = false
	}
	return nil
}

// pressRow selects row, opens the editor on a double click, and otherwise
// starts a drag.
func (m *model) pressRow(row int) tea.Cmd {
	cmd := m.setFocus(focusList)
	m.selected = row

	now := m.now()
	if row == m.lastClickRow && now.Sub(m.lastClickAt) <= m.opts.DoubleClick {
		m.lastClickRow = -1
		return m.openEdit()
	}
	m.lastClickRow = row
	m.lastClickAt = now

	m.dragging = true
	m.dragRow = row
	return cmd
}

// dragTo moves the dragged task one row at a time until it reaches target.
func (m *model) dragTo(target int) {
	for m.dragRow != target {
		next := m.dragRow + 1
		if target < m.dragRow {
			next = m.dragRow - 1
		}
		if err := m.store.Dispatch(todo.MoveCommand{From: m.dragRow, To: next}); err != nil {
			m.dragging = false
			return
		}
		m.dragRow = next
		m.selected = next
		m.lastClickRow = -1
	}
}

func (m *model) hover(b button) tea.Cmd {
	if b == m.hovered {
		return nil
	}
	m.hovered = b
	m.hoverSeq++
	m.tooltip = ""
	if b == buttonNone {
		return nil
	}
	seq := m.hoverSeq
	return tea.Tick(m.opts.TooltipDelay, func(time.Time) tea.Msg {
		return tooltipMsg{seq: seq}
	})
}

func (m *model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}
