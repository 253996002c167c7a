package nav

// Item is a node in the navigation tree. The tree is supplied wholesale by
// the caller on every render pass and is never mutated here. Children are
// rendered in insertion order; absence of children marks a leaf.
//
// IDs are matched against Options.ActiveID for highlighting. Uniqueness is
// the caller's responsibility: duplicate IDs all receive the active
// treatment under a shared ActiveID.
type Item struct {
	ID       string
	Label    string
	Icon     string
	Disabled bool
	Children []Item
	OnClick  func()
}

// Options control rendering and dispatch for a navigation tree.
type Options struct {
	// Visible gates the whole surface: when false nothing is produced,
	// not merely hidden.
	Visible bool

	// ShowIcons enables per-item icons for items that define one.
	ShowIcons bool

	// Vertical selects stacking direction. Layout only; dispatch is
	// unaffected.
	Vertical bool

	// ActiveID marks the item(s) rendered with the active treatment.
	ActiveID string

	// OnItemClick is the global activation handler. It fires in addition
	// to the item's own OnClick, never instead of it.
	OnItemClick func(Item)
}

// DefaultOptions returns the option set used when the caller supplies none:
// visible, vertical, no icons, no active item.
func DefaultOptions() Options {
	return Options{Visible: true, Vertical: true}
}

// Activate dispatches the effects of a user activation gesture on item.
//
// The disabled check comes before any dispatch: a disabled item fires
// neither its own OnClick nor the global handler. Otherwise both callbacks
// fire synchronously, once each, with no ordering guarantee between them.
// Activating an item with children carries no expand/collapse semantics;
// the tree is always fully expanded.
func Activate(item Item, opts Options) {
	if item.Disabled {
		return
	}
	if item.OnClick != nil {
		item.OnClick()
	}
	if opts.OnItemClick != nil {
		opts.OnItemClick(item)
	}
}

// Find returns the first item whose ID matches, searching depth-first in
// insertion order.
func Find(items []Item, id string) (Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
		if found, ok := Find(item.Children, id); ok {
			return found, true
		}
	}
	return Item{}, false
}

// Walk visits every item depth-first in insertion order, passing the item
// and its depth. Traversal assumes an acyclic, finite tree.
func Walk(items []Item, fn func(Item, int)) {
	walk(items, 0, fn)
}

func walk(items []Item, depth int, fn func(Item, int)) {
	for _, item := range items {
		fn(item, depth)
		walk(item.Children, depth+1, fn)
	}
}
