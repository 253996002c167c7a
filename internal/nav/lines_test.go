package nav

import "testing"

func sampleTree() []Item {
	return []Item{
		{ID: "home", Label: "Home", Icon: "⌂"},
		{ID: "explore", Label: "Explore", Icon: "✦", Children: []Item{
			{ID: "planets", Label: "Planets"},
			{ID: "stars", Label: "Stars", Disabled: true},
		}},
		{ID: "settings", Label: "Settings", Icon: "⚙", Disabled: true},
	}
}

func TestLinesHiddenSurfaceProducesNothing(t *testing.T) {
	opts := DefaultOptions()
	opts.Visible = false
	if lines := Lines(sampleTree(), opts); lines != nil {
		t.Fatalf("expected no lines for hidden surface, got %d", len(lines))
	}
}

func TestLinesIconsOnlyWhenEnabled(t *testing.T) {
	opts := DefaultOptions()
	for _, line := range Lines(sampleTree(), opts) {
		if line.Icon != "" {
			t.Fatalf("expected no icon for %q with icons disabled, got %q", line.ID, line.Icon)
		}
	}

	opts.ShowIcons = true
	lines := Lines(sampleTree(), opts)
	withIcon := map[string]string{"home": "⌂", "explore": "✦", "settings": "⚙"}
	for _, line := range lines {
		want := withIcon[line.ID]
		if line.Icon != want {
			t.Fatalf("expected icon %q for %q, got %q", want, line.ID, line.Icon)
		}
	}
}

func TestLinesActiveMatchesExactlyByID(t *testing.T) {
	opts := DefaultOptions()
	opts.ActiveID = "planets"
	for _, line := range Lines(sampleTree(), opts) {
		if line.Active != (line.ID == "planets") {
			t.Fatalf("active flag wrong for %q: %v", line.ID, line.Active)
		}
	}
}

func TestLinesDuplicateIDsAllHighlight(t *testing.T) {
	items := []Item{
		{ID: "dup", Label: "First"},
		{ID: "other", Label: "Other", Children: []Item{
			{ID: "dup", Label: "Second"},
		}},
	}
	opts := DefaultOptions()
	opts.ActiveID = "dup"
	active := 0
	for _, line := range Lines(items, opts) {
		if line.Active {
			active++
		}
	}
	if active != 2 {
		t.Fatalf("expected both duplicate ids highlighted, got %d", active)
	}
}

func TestLinesEmptyActiveIDHighlightsNothing(t *testing.T) {
	for _, line := range Lines(sampleTree(), DefaultOptions()) {
		if line.Active {
			t.Fatalf("expected no active line without an ActiveID, got %q", line.ID)
		}
	}
}

func TestLinesNestedChildrenAlwaysPresent(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowIcons = false
	lines := Lines(sampleTree(), opts)
	expected := []struct {
		id    string
		depth int
	}{
		{"home", 0},
		{"explore", 0},
		{"planets", 1},
		{"stars", 1},
		{"settings", 0},
	}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d", len(expected), len(lines))
	}
	for i, want := range expected {
		if lines[i].ID != want.id {
			t.Fatalf("expected line %d to be %q, got %q", i, want.id, lines[i].ID)
		}
		if lines[i].Depth != want.depth {
			t.Fatalf("expected depth %d for %q, got %d", want.depth, want.id, lines[i].Depth)
		}
	}
}

func TestLinesCarryDisabledFlag(t *testing.T) {
	lines := Lines(sampleTree(), DefaultOptions())
	disabled := map[string]bool{"stars": true, "settings": true}
	for _, line := range lines {
		if line.Disabled != disabled[line.ID] {
			t.Fatalf("disabled flag wrong for %q: %v", line.ID, line.Disabled)
		}
	}
}
