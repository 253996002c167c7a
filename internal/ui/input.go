package ui

import (
	"unicode"

	"github.com/Arrbel/cosmos-explorer-sub001/internal/logging/events"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.filterPos {
		m.filterCursorDirty = true
	}
}

// handleTextInput consumes keys that edit the filter. Returns true when the
// key was handled so the caller skips navigation bindings.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+u":
		if m.filter == "" {
			return false
		}
		m.clearFilter()
		return true
	case "ctrl+w":
		if !m.deleteFilterWordBackward() {
			return false
		}
		events.Filter.WordBackspace(m.filter)
		m.refilter()
		return true
	case "ctrl+a":
		if m.filterPos == 0 {
			return false
		}
		before := m.filterPos
		m.filterPos = 0
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.filterPos)
		return true
	case "ctrl+e":
		end := len([]rune(m.filter))
		if m.filterPos == end {
			return false
		}
		before := m.filterPos
		m.filterPos = end
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.filterPos)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.deleteFilterRuneBackward() {
			return false
		}
		events.Filter.Backspace(m.filter)
		m.refilter()
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		m.insertFilterText(string(msg.Runes))
		events.Filter.Append(m.filter)
		m.refilter()
		return true
	case tea.KeySpace:
		m.insertFilterText(" ")
		events.Filter.Append(m.filter)
		m.refilter()
		return true
	case tea.KeyLeft:
		if m.filterPos == 0 {
			return false
		}
		before := m.filterPos
		m.filterPos--
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.filterPos)
		return true
	case tea.KeyRight:
		if m.filterPos >= len([]rune(m.filter)) {
			return false
		}
		before := m.filterPos
		m.filterPos++
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.filterPos)
		return true
	}
	return false
}

func (m *Model) insertFilterText(text string) {
	before := m.filterPos
	runes := []rune(m.filter)
	if m.filterPos < 0 {
		m.filterPos = 0
	}
	if m.filterPos > len(runes) {
		m.filterPos = len(runes)
	}
	inserted := []rune(text)
	out := make([]rune, 0, len(runes)+len(inserted))
	out = append(out, runes[:m.filterPos]...)
	out = append(out, inserted...)
	out = append(out, runes[m.filterPos:]...)
	m.filter = string(out)
	m.filterPos += len(inserted)
	m.noteFilterCursorChange(before)
}

func (m *Model) deleteFilterRuneBackward() bool {
	if m.filterPos == 0 || m.filter == "" {
		return false
	}
	before := m.filterPos
	runes := []rune(m.filter)
	if m.filterPos > len(runes) {
		m.filterPos = len(runes)
	}
	out := append([]rune{}, runes[:m.filterPos-1]...)
	out = append(out, runes[m.filterPos:]...)
	m.filter = string(out)
	m.filterPos--
	m.noteFilterCursorChange(before)
	return true
}

// deleteFilterWordBackward removes the word immediately before the cursor
// along with any trailing spaces between it and the cursor.
func (m *Model) deleteFilterWordBackward() bool {
	if m.filterPos == 0 || m.filter == "" {
		return false
	}
	before := m.filterPos
	runes := []rune(m.filter)
	if m.filterPos > len(runes) {
		m.filterPos = len(runes)
	}
	i := m.filterPos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	out := append([]rune{}, runes[:i]...)
	out = append(out, runes[m.filterPos:]...)
	m.filter = string(out)
	m.filterPos = i
	m.noteFilterCursorChange(before)
	return true
}

func (m *Model) clearFilter() {
	before := m.filterPos
	m.filter = ""
	m.filterPos = 0
	m.noteFilterCursorChange(before)
	events.Filter.Cleared()
	m.refilter()
}

// refilter recomputes the visible rows and retargets the cursor after any
// filter edit. Messages are cleared: the filter is the user's new intent.
func (m *Model) refilter() {
	m.errMsg = ""
	m.forceClearInfo()
	m.visible = nav.FilterLines(m.lines, m.filter)
	m.retargetCursor()
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if m.filter == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		caretRune := string(runes[0])
		rest := string(runes[1:])
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(caretRune)
		return prompt + caret + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(m.filter)
	pos := m.filterPos
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	if pos < len(runes) {
		caretRune = string(runes[pos])
	}
	caret := m.renderFilterCursor(caretRune)
	after := ""
	if pos < len(runes) {
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
