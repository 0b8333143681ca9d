package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/todolist-go/internal/todo"
)

const title = "My To-Do List"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Width(labelWidth)
	buttonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	focusedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedRow  = lipgloss.NewStyle().Reverse(true)
	doneRow      = lipgloss.NewStyle().Faint(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f44336"))
	tooltipStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#9E9E9E"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
	modalStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	buttonColors = map[button]lipgloss.Color{
		buttonAdd:      "#4CAF50",
		buttonComplete: "#2196F3",
		buttonRemove:   "#f44336",
		buttonClear:    "#9E9E9E",
	}
)

const help = "tab focus | up/down select | space complete | del remove | c clear | e edit | q quit"

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall() {
		return fmt.Sprintf("Window too small: need at least %d rows.", minHeight)
	}
	if m.state == stateEditing {
		return m.viewModal()
	}

	l := m.layout()
	var b strings.Builder
	writeTitle(&b)
	m.writeInputs(&b)
	b.WriteString("\n")
	m.writeList(&b, l)
	b.WriteString("\n")
	m.writeActions(&b)
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status) + "\n")
	b.WriteString(tooltipStyle.Render(m.tooltip) + "\n")
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func writeTitle(b *strings.Builder) {
	b.WriteString(titleStyle.Render(title) + "\n\n")
}

func (m *model) writeInputs(b *strings.Builder) {
	b.WriteString(labelStyle.Render("Task:") + m.desc.View() + "\n")
	b.WriteString(labelStyle.Render("Due date:") + m.due.View() + "\n")
	b.WriteString(m.renderButton(buttonAdd) + "\n")
}

func (m *model) writeList(b *strings.Builder, l layout) {
	tasks := m.store.Tasks()
	for row := 0; row < l.listRows; row++ {
		i := l.offset + row
		if i >= len(tasks) {
			if len(tasks) == 0 && row == 0 {
				b.WriteString(helpStyle.Render("  No tasks yet.") + "\n")
				continue
			}
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.renderRow(i, tasks[i]) + "\n")
	}
}

func (m *model) renderRow(i int, t todo.Task) string {
	cursor := "  "
	if i == m.selected {
		cursor = "> "
		if m.focus == focusList {
			cursor = ">>"
		}
	}
	line := cursor + formatTask(t)
	switch {
	case i == m.selected:
		return selectedRow.Render(line)
	case t.Completed:
		return doneRow.Render(line)
	}
	return line
}

func (m *model) writeActions(b *strings.Builder) {
	parts := make([]string, 0, len(actionButtons))
	for _, btn := range actionButtons {
		parts = append(parts, m.renderButton(btn))
	}
	b.WriteString(strings.Join(parts, " ") + "\n")
}

func (m *model) renderButton(btn button) string {
	style := buttonStyle.Background(buttonColors[btn])
	if m.focus == buttonFocus[btn] {
		style = style.Inherit(focusedStyle)
	}
	return style.Render(buttonLabels[btn])
}

func (m *model) viewModal() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Edit Task") + "\n\n")
	b.WriteString(labelStyle.Render("Task:") + m.editDesc.View() + "\n")
	b.WriteString(labelStyle.Render("Due date:") + m.editDue.View() + "\n\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(helpStyle.Render("enter save | tab switch field | esc cancel"))

	modal := modalStyle.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func formatTask(t todo.Task) string {
	return todo.FormatDated(t)
}
