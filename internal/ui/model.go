package ui

import (
	"reflect"
	"time"

	"github.com/Arrbel/cosmos-explorer-sub001/internal/bridge"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/nav"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/perf"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/theme"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/viewer"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultTitle = "cosmos explorer"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the viewer control console.
// It owns the navigation tree, the filter, and a read-only view of the
// renderer state fed through the bridge.
type Model struct {
	title string

	items   []nav.Item
	opts    nav.Options
	lines   []nav.Line // full flattened tree
	visible []nav.Line // rows surviving the filter

	filter    string
	filterPos int

	cursorIdx      int
	viewportOffset int

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	bridge     *bridge.Bridge
	viewerOpts viewer.Options
	lastSample perf.Sample
	haveSample bool
	sceneReady bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the console state with the navigation tree and the
// current viewer configuration.
func NewModel(title string, items []nav.Item, navOpts nav.Options, viewerOpts viewer.Options, width, height int, showFooter, verbose bool, b *bridge.Bridge) *Model {
	if title == "" {
		title = defaultTitle
	}
	m := &Model{
		title:      title,
		items:      items,
		opts:       navOpts,
		viewerOpts: viewerOpts,
		showFooter: showFooter,
		verbose:    verbose,
		bridge:     b,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.refreshLines()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.bridge != nil {
		cmds = append(cmds, waitForBridgeEvent(m.bridge))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(bridgeEventMsg{}):    m.handleBridgeEventMsg,
		reflect.TypeOf(bridgeDoneMsg{}):     m.handleBridgeDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// refreshLines recomputes the flattened rows and the filtered subset,
// keeping the cursor on a sensible row.
func (m *Model) refreshLines() {
	m.lines = nav.Lines(m.items, m.opts)
	m.visible = nav.FilterLines(m.lines, m.filter)
	if len(m.visible) == 0 {
		m.cursorIdx = 0
		m.viewportOffset = 0
		return
	}
	if m.cursorIdx >= len(m.visible) {
		m.cursorIdx = len(m.visible) - 1
	}
	if m.cursorIdx < 0 {
		m.cursorIdx = 0
	}
	m.syncViewport()
}

// retargetCursor moves the cursor to the best match after a filter change.
func (m *Model) retargetCursor() {
	if idx := nav.BestMatchIndex(m.visible, m.filter); idx >= 0 {
		m.cursorIdx = idx
	} else {
		m.cursorIdx = 0
	}
	m.syncViewport()
}

func (m *Model) cursorLine() (nav.Line, bool) {
	if m.cursorIdx < 0 || m.cursorIdx >= len(m.visible) {
		return nav.Line{}, false
	}
	return m.visible[m.cursorIdx], true
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
