package ui

import "github.com/charmbracelet/lipgloss"

// Fixed screen rows above the task list.
const (
	rowTitle    = 0
	rowDesc     = 2
	rowDue      = 3
	rowAdd      = 4
	rowListTop  = 6
	minListRows = 3
	// blank, buttons, blank, status, tooltip, help
	rowsBelowList = 6
	labelWidth    = 10

	// minHeight is the shortest terminal the window is drawn in. Shorter
	// terminals get a notice and mouse input is ignored.
	minHeight = rowListTop + minListRows + rowsBelowList
)

type button int

const (
	buttonNone button = iota
	buttonAdd
	buttonComplete
	buttonRemove
	buttonClear
)

var buttonLabels = map[button]string{
	buttonAdd:      "Add Task",
	buttonComplete: "Mark Completed",
	buttonRemove:   "Remove Task",
	buttonClear:    "Clear Completed",
}

var tooltips = map[button]string{
	buttonAdd:      "Add a new task (Ctrl+S)",
	buttonComplete: "Mark selected task as completed",
	buttonRemove:   "Remove selected task (Delete)",
	buttonClear:    "Remove completed tasks",
}

// actionButtons are drawn left to right under the list.
var actionButtons = []button{buttonComplete, buttonRemove, buttonClear}

type box struct {
	x, y, w, h int
}

func (b box) contains(x, y int) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// layout is the geometry of one frame. View draws from it and mouse
// events are hit-tested against it, so both always agree.
type layout struct {
	listRows   int // visible list rows
	offset     int // index of the first visible task
	actionsRow int
	statusRow  int
	buttons    map[button]box
	desc       box
	due        box
}

func (m *model) layout() layout {
	rows := m.store.Len()
	if m.height > 0 {
		rows = m.height - rowListTop - rowsBelowList
	}
	if rows < minListRows {
		rows = minListRows
	}

	offset := m.offset
	if m.selected >= 0 {
		if m.selected < offset {
			offset = m.selected
		}
		if m.selected >= offset+rows {
			offset = m.selected - rows + 1
		}
	}
	if maxOffset := m.store.Len() - rows; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}

	l := layout{
		listRows:   rows,
		offset:     offset,
		actionsRow: rowListTop + rows + 1,
		buttons:    make(map[button]box),
		desc:       box{x: 0, y: rowDesc, w: labelWidth + m.desc.Width + 2, h: 1},
		due:        box{x: 0, y: rowDue, w: labelWidth + m.due.Width + 2, h: 1},
	}
	l.statusRow = l.actionsRow + 2
	l.buttons[buttonAdd] = box{x: 0, y: rowAdd, w: buttonWidth(buttonAdd), h: 1}

	x := 0
	for _, b := range actionButtons {
		w := buttonWidth(b)
		l.buttons[b] = box{x: x, y: l.actionsRow, w: w, h: 1}
		x += w + 1
	}
	return l
}

// tooSmall reports whether the terminal is shorter than the layout.
func (m *model) tooSmall() bool {
	return m.height > 0 && m.height < minHeight
}

// rowAt maps a screen row to a task index, clamping rows outside the list
// to the nearest visible task. ok is false when the list is empty.
func (l layout) rowAt(y, count int) (index int, ok bool) {
	if count == 0 {
		return 0, false
	}
	index = l.offset + y - rowListTop
	if index < l.offset {
		index = l.offset
	}
	if last := l.offset + l.listRows - 1; index > last {
		index = last
	}
	if index > count-1 {
		index = count - 1
	}
	return index, true
}

// inList reports whether y falls on a row that shows a task.
func (l layout) inList(y, count int) bool {
	row := y - rowListTop
	return row >= 0 && row < l.listRows && l.offset+row < count
}

func (l layout) buttonAt(x, y int) button {
	for b, r := range l.buttons {
		if r.contains(x, y) {
			return b
		}
	}
	return buttonNone
}

func buttonWidth(b button) int {
	return lipgloss.Width(buttonStyle.Render(buttonLabels[b]))
}
