package ui

import (
	"testing"

	"github.com/Arrbel/cosmos-explorer-sub001/internal/nav"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/theme"
	"github.com/Arrbel/cosmos-explorer-sub001/internal/viewer"
)

// usePlainStyles swaps the package style set for an unstyled one so test
// output carries no ANSI escapes, restoring the default on cleanup.
func usePlainStyles(t *testing.T) {
	t.Helper()
	prev := styles
	styles = theme.Plain()
	t.Cleanup(func() { styles = prev })
}

func consoleTree() []nav.Item {
	return []nav.Item{
		{ID: "home", Label: "Home", Icon: "⌂"},
		{ID: "explore", Label: "Explore", Icon: "✦", Children: []nav.Item{
			{ID: "explore:planets", Label: "Planets"},
			{ID: "explore:stars", Label: "Stars", Disabled: true},
		}},
		{ID: "settings", Label: "Settings", Icon: "⚙", Disabled: true},
	}
}

func newTestModel(items []nav.Item) *Model {
	opts := nav.DefaultOptions()
	opts.ShowIcons = true
	return NewModel("console", items, opts, viewer.DefaultOptions(), 0, 0, false, false, nil)
}
