package nav

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Arrbel/cosmos-explorer-sub001/internal/theme"
)

const (
	activeIndicator = "▌"
	indentUnit      = "  "
	horizontalGap   = "   "
)

// Render produces the styled textual representation of the tree. Returns ""
// when the surface is not visible. Vertical layout stacks one row per item
// with depth indentation; horizontal layout joins the same rows on a single
// line. A nil style set falls back to the default theme.
func Render(items []Item, opts Options, styles *theme.Styles) string {
	if !opts.Visible {
		return ""
	}
	if styles == nil {
		styles = theme.Default()
	}
	lines := Lines(items, opts)
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, renderLine(line, opts, styles))
	}
	if opts.Vertical {
		return strings.Join(rows, "\n")
	}
	return strings.Join(rows, horizontalGap)
}

// renderLine maps one display row to styled text. Structure (marker, icon,
// label) is decided here; colours live entirely in the style set so that an
// empty set yields plain text.
func renderLine(line Line, opts Options, styles *theme.Styles) string {
	marker := " "
	markerStyle := styles.ItemIndicator
	if line.Active {
		marker = activeIndicator
		markerStyle = styles.ActiveIndicator
	}

	textStyle := styles.Item
	switch {
	case line.Disabled:
		textStyle = styles.DisabledItem
	case line.Active:
		textStyle = styles.ActiveItem
	}

	var b strings.Builder
	if opts.Vertical {
		b.WriteString(strings.Repeat(indentUnit, line.Depth))
	}
	b.WriteString(applyStyle(markerStyle, marker))
	b.WriteString(" ")
	if line.Icon != "" {
		b.WriteString(applyStyle(styles.Icon, line.Icon))
		b.WriteString(" ")
	}
	b.WriteString(applyStyle(textStyle, line.Label))
	return b.String()
}

func applyStyle(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
