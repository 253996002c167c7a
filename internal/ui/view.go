package ui

import (
	"fmt"
	"strings"

	"github.com/Arrbel/cosmos-explorer-sub001/internal/nav"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	headerSeparator = "→"
	horizontalGap   = "   "
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	if header := m.header(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	lines = append(lines, m.navLines()...)
	lines = append(lines, m.statusLines()...)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "↑/↓ move  enter activate  backspace clear  esc back  ctrl+c quit", style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (error/status + filter prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottomLines := []styledLine{
		statusLine,
		{text: m.filterPrompt(), raw: true},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

// navLines builds the rows for the navigation tree, windowed to the
// viewport in vertical mode, joined into a single row in horizontal mode.
func (m *Model) navLines() []styledLine {
	if len(m.lines) == 0 {
		if !m.opts.Visible {
			return nil
		}
		return []styledLine{{text: "(no entries)", style: styles.Info}}
	}
	if len(m.visible) == 0 {
		return []styledLine{{text: fmt.Sprintf("No matches for %q", m.filter), style: styles.Info}}
	}
	if !m.opts.Vertical {
		cells := make([]string, 0, len(m.visible))
		for i, line := range m.visible {
			cells = append(cells, m.renderNavCell(line, i))
		}
		return []styledLine{{text: strings.Join(cells, horizontalGap), raw: true}}
	}
	start := 0
	display := m.visible
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(display) > maxItems {
		start = m.viewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(display) {
			start = len(display) - maxItems
			if start < 0 {
				start = 0
			}
			m.viewportOffset = start
		}
		display = display[start : start+maxItems]
	}
	rows := make([]styledLine, 0, len(display))
	for i, line := range display {
		rows = append(rows, m.buildNavLine(line, start+i))
	}
	return rows
}

// buildNavLine constructs the styledLine for one navigation row.
func (m *Model) buildNavLine(line nav.Line, idx int) styledLine {
	indent := strings.Repeat("  ", line.Depth)
	marker := " "
	indicatorStyle := styles.ItemIndicator
	lineStyle := styles.Item
	if line.Active {
		marker = "▌"
		indicatorStyle = styles.ActiveIndicator
		lineStyle = styles.ActiveItem
	}
	if line.Disabled {
		lineStyle = styles.DisabledItem
	}
	text := line.Label
	if line.Icon != "" {
		text = line.Icon + " " + text
	}
	full := indent + marker + " " + text
	if idx == m.cursorIdx {
		lineStyle = styles.CursorRow
		if m.width > 0 {
			if pad := m.width - len([]rune(full)); pad > 0 {
				full += strings.Repeat(" ", pad)
			}
		}
	}
	return styledLine{
		text:          full,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: len([]rune(indent)) + 1,
	}
}

// renderNavCell renders one horizontal-mode cell with its styles applied.
func (m *Model) renderNavCell(line nav.Line, idx int) string {
	text := line.Label
	if line.Icon != "" {
		text = line.Icon + " " + text
	}
	style := styles.Item
	if line.Active {
		text = "▌ " + text
		style = styles.ActiveItem
	}
	if line.Disabled {
		style = styles.DisabledItem
	}
	if idx == m.cursorIdx {
		style = styles.CursorRow
	}
	if style == nil {
		return text
	}
	return style.Render(text)
}

// statusLines renders the viewer status panel below the navigation rows.
func (m *Model) statusLines() []styledLine {
	lines := []styledLine{
		{},
		{text: "Viewer", style: styles.StatusTitle},
	}
	quality := m.viewerOpts.Quality.String()
	if m.viewerOpts.AutoQualityAdjust {
		quality = fmt.Sprintf("%s (auto, target %dfps)", quality, m.viewerOpts.TargetFPS)
	}
	lines = append(lines, styledLine{text: "quality: " + quality, style: styles.StatusBody})
	lines = append(lines, styledLine{text: "camera: " + m.viewerOpts.CameraMode.String(), style: styles.StatusBody})
	lines = append(lines, styledLine{text: fmt.Sprintf(
		"grid %s  environment %s  perf monitor %s",
		onOff(m.viewerOpts.ShowGrid),
		onOff(m.viewerOpts.EnableEnvironment),
		onOff(m.viewerOpts.ShowPerformanceMonitor),
	), style: styles.StatusBody})
	if m.haveSample {
		lines = append(lines, styledLine{text: fmt.Sprintf(
			"fps: %.1f (%.1fms, %d draws, %d tris)",
			m.lastSample.FPS, m.lastSample.FrameTime, m.lastSample.DrawCalls, m.lastSample.Triangles,
		), style: styles.StatusBody})
	} else {
		lines = append(lines, styledLine{text: "fps: (waiting for renderer)", style: styles.StatusBody})
	}
	scene := "loading"
	if m.sceneReady {
		scene = "ready"
	}
	lines = append(lines, styledLine{text: "scene: " + scene, style: styles.StatusBody})
	return lines
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// header renders the title plus the breadcrumb down to the active item.
func (m *Model) header() string {
	segments := []string{m.title}
	segments = append(segments, m.activePath()...)
	return strings.Join(segments, headerSeparator)
}

// activePath returns the labels from the root down to the active row,
// reconstructed from the flattened depths.
func (m *Model) activePath() []string {
	if m.opts.ActiveID == "" {
		return nil
	}
	activeIdx := -1
	for i, line := range m.lines {
		if line.Active {
			activeIdx = i
			break
		}
	}
	if activeIdx < 0 {
		return nil
	}
	path := []string{m.lines[activeIdx].Label}
	depth := m.lines[activeIdx].Depth
	for i := activeIdx - 1; i >= 0 && depth > 0; i-- {
		if m.lines[i].Depth < depth {
			depth = m.lines[i].Depth
			path = append([]string{m.lines[i].Label}, path...)
		}
	}
	return path
}

// maxVisibleItems returns how many navigation rows fit on screen, after
// the fixed chrome is accounted for. Non-positive height disables the
// viewport entirely.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	if m.header() != "" {
		used++
	}
	used += len(m.statusLines())
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
