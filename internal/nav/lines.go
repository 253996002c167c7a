package nav

// Line is the pre-computed display row for one navigation item. It carries
// no styling and no domain logic: every conditional (icon shown, active,
// disabled) has already been decided, so rendering is a pure mapping from
// Line to styled text.
type Line struct {
	ID       string
	Label    string
	Icon     string // empty unless icons are enabled and the item defines one
	Depth    int
	Active   bool
	Disabled bool
}

// Lines flattens the tree into display rows, depth-first in insertion
// order. Every descendant is always present; there is no collapsed state.
// Returns nil when the surface is not visible.
func Lines(items []Item, opts Options) []Line {
	if !opts.Visible {
		return nil
	}
	lines := make([]Line, 0, len(items))
	Walk(items, func(item Item, depth int) {
		icon := ""
		if opts.ShowIcons && item.Icon != "" {
			icon = item.Icon
		}
		lines = append(lines, Line{
			ID:       item.ID,
			Label:    item.Label,
			Icon:     icon,
			Depth:    depth,
			Active:   item.ID == opts.ActiveID && opts.ActiveID != "",
			Disabled: item.Disabled,
		})
	})
	return lines
}
