package ui

import (
	"fmt"

	"github.com/Arrbel/cosmos-explorer-sub001/internal/logging/events"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		m.handleEnterKey()
	case "up":
		m.moveCursor(-1)
	case "down":
		m.moveCursor(1)
	case "pgup":
		m.moveCursorPage(-1)
	case "pgdown":
		m.moveCursorPage(1)
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

// handleEscapeKey clears an active filter; with no filter it quits.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.filter != "" {
		m.clearFilter()
		return nil
	}
	return tea.Quit
}

// handleEnterKey activates the row under the cursor. Disabled rows are
// reported and suppressed; Activate applies the same guard again before
// any callback fires.
func (m *Model) handleEnterKey() {
	line, ok := m.cursorLine()
	if !ok {
		return
	}
	if line.Disabled {
		events.UI.NavSuppressed(line.ID)
		m.setInfo(fmt.Sprintf("%s is disabled", line.Label))
		return
	}
	item, ok := nav.Find(m.items, line.ID)
	if !ok {
		return
	}
	nav.Activate(item, m.opts)
	events.UI.NavActivate(item.ID, item.Label)
	m.opts.ActiveID = item.ID
	m.errMsg = ""
	m.forceClearInfo()
	m.refreshLines()
}

// moveCursor steps the cursor by delta rows, wrapping at either end and
// skipping disabled rows. A tree of only disabled rows leaves the cursor
// where it is.
func (m *Model) moveCursor(delta int) {
	n := len(m.visible)
	if n == 0 {
		return
	}
	idx := m.cursorIdx
	for i := 0; i < n; i++ {
		idx = (idx + delta + n) % n
		if !m.visible[idx].Disabled {
			break
		}
	}
	if m.visible[idx].Disabled {
		return
	}
	m.cursorIdx = idx
	events.UI.NavCursor(m.visible[idx].ID, idx)
	m.syncViewport()
}

func (m *Model) moveCursorPage(direction int) {
	n := len(m.visible)
	if n == 0 {
		return
	}
	page := m.maxVisibleItems()
	if page <= 0 {
		page = n
	}
	idx := m.cursorIdx + direction*page
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	idx = m.nearestEnabled(idx, direction)
	if idx < 0 {
		return
	}
	if idx != m.cursorIdx {
		m.cursorIdx = idx
		events.UI.NavCursor(m.visible[idx].ID, idx)
	}
	m.syncViewport()
}

func (m *Model) moveCursorHome() {
	if idx := m.nearestEnabled(0, 1); idx >= 0 && idx != m.cursorIdx {
		m.cursorIdx = idx
		events.UI.NavCursor(m.visible[idx].ID, idx)
	}
	m.syncViewport()
}

func (m *Model) moveCursorEnd() {
	if len(m.visible) == 0 {
		return
	}
	if idx := m.nearestEnabled(len(m.visible)-1, -1); idx >= 0 && idx != m.cursorIdx {
		m.cursorIdx = idx
		events.UI.NavCursor(m.visible[idx].ID, idx)
	}
	m.syncViewport()
}

// nearestEnabled scans from idx in the given direction for an enabled row,
// then retries the opposite direction. Returns -1 when every row is
// disabled.
func (m *Model) nearestEnabled(idx, direction int) int {
	n := len(m.visible)
	if n == 0 {
		return -1
	}
	for i := idx; i >= 0 && i < n; i += direction {
		if !m.visible[i].Disabled {
			return i
		}
	}
	for i := idx; i >= 0 && i < n; i -= direction {
		if !m.visible[i].Disabled {
			return i
		}
	}
	return -1
}

// syncViewport clamps the viewport offset so the cursor stays on screen.
func (m *Model) syncViewport() {
	maxItems := m.maxVisibleItems()
	if maxItems <= 0 {
		m.viewportOffset = 0
		return
	}
	if m.cursorIdx < m.viewportOffset {
		m.viewportOffset = m.cursorIdx
	}
	if m.cursorIdx >= m.viewportOffset+maxItems {
		m.viewportOffset = m.cursorIdx - maxItems + 1
	}
	if m.viewportOffset < 0 {
		m.viewportOffset = 0
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}
