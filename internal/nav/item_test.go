package nav

import "testing"

func TestActivateInvokesItemAndGlobalHandlersOnce(t *testing.T) {
	itemCalls := 0
	globalCalls := 0
	var received Item
	item := Item{ID: "explore", Label: "Explore", OnClick: func() { itemCalls++ }}
	opts := DefaultOptions()
	opts.OnItemClick = func(i Item) {
		globalCalls++
		received = i
	}

	Activate(item, opts)

	if itemCalls != 1 {
		t.Fatalf("expected item OnClick to fire once, got %d", itemCalls)
	}
	if globalCalls != 1 {
		t.Fatalf("expected global handler to fire once, got %d", globalCalls)
	}
	if received.ID != "explore" {
		t.Fatalf("expected global handler to receive the activated item, got %q", received.ID)
	}
}

func TestActivateDisabledSuppressesAllHandlers(t *testing.T) {
	itemCalls := 0
	globalCalls := 0
	item := Item{ID: "settings", Label: "Settings", Disabled: true, OnClick: func() { itemCalls++ }}
	opts := DefaultOptions()
	opts.OnItemClick = func(Item) { globalCalls++ }

	Activate(item, opts)

	if itemCalls != 0 {
		t.Fatalf("expected item OnClick suppressed for disabled item, got %d calls", itemCalls)
	}
	if globalCalls != 0 {
		t.Fatalf("expected global handler suppressed for disabled item, got %d calls", globalCalls)
	}
}

func TestActivateWithMissingHandlersIsANoOp(t *testing.T) {
	// Neither callback present: nothing to dispatch, nothing to panic on.
	Activate(Item{ID: "home"}, DefaultOptions())

	calls := 0
	Activate(Item{ID: "home", OnClick: func() { calls++ }}, DefaultOptions())
	if calls != 1 {
		t.Fatalf("expected item OnClick to fire without a global handler, got %d", calls)
	}

	opts := DefaultOptions()
	opts.OnItemClick = func(Item) { calls++ }
	Activate(Item{ID: "home"}, opts)
	if calls != 2 {
		t.Fatalf("expected global handler to fire without an item OnClick, got %d", calls)
	}
}

func TestActivateLocalizedMenu(t *testing.T) {
	items := []Item{
		{ID: "home", Label: "首页"},
		{ID: "settings", Label: "设置", Disabled: true},
	}
	calls := 0
	var last Item
	opts := DefaultOptions()
	opts.OnItemClick = func(i Item) {
		calls++
		last = i
	}

	Activate(items[0], opts)
	if calls != 1 {
		t.Fatalf("expected one call after activating 首页, got %d", calls)
	}
	if last.ID != "home" || last.Label != "首页" {
		t.Fatalf("expected handler to receive the home item, got %+v", last)
	}

	Activate(items[1], opts)
	if calls != 1 {
		t.Fatalf("expected no call after activating disabled 设置, got %d", calls)
	}
}

func TestActivateParentHasNoExpansionSideEffects(t *testing.T) {
	childCalls := 0
	parent := Item{
		ID:    "explore",
		Label: "Explore",
		Children: []Item{
			{ID: "planets", Label: "Planets", OnClick: func() { childCalls++ }},
		},
	}
	parentCalls := 0
	parent.OnClick = func() { parentCalls++ }

	Activate(parent, DefaultOptions())

	if parentCalls != 1 {
		t.Fatalf("expected parent OnClick to fire, got %d", parentCalls)
	}
	if childCalls != 0 {
		t.Fatalf("expected child handlers untouched by parent activation, got %d", childCalls)
	}
}

func TestFindLocatesNestedItems(t *testing.T) {
	items := []Item{
		{ID: "home", Label: "Home"},
		{ID: "explore", Label: "Explore", Children: []Item{
			{ID: "planets", Label: "Planets", Children: []Item{
				{ID: "earth", Label: "Earth"},
			}},
		}},
	}
	item, ok := Find(items, "earth")
	if !ok {
		t.Fatalf("expected to find nested item")
	}
	if item.Label != "Earth" {
		t.Fatalf("expected Earth, got %q", item.Label)
	}
	if _, ok := Find(items, "missing"); ok {
		t.Fatalf("expected miss for unknown id")
	}
}

func TestWalkVisitsDepthFirstInInsertionOrder(t *testing.T) {
	items := []Item{
		{ID: "a", Children: []Item{
			{ID: "a1"},
			{ID: "a2"},
		}},
		{ID: "b"},
	}
	var visited []string
	var depths []int
	Walk(items, func(item Item, depth int) {
		visited = append(visited, item.ID)
		depths = append(depths, depth)
	})
	expected := []string{"a", "a1", "a2", "b"}
	if len(visited) != len(expected) {
		t.Fatalf("expected %d visits, got %d", len(expected), len(visited))
	}
	for i, id := range expected {
		if visited[i] != id {
			t.Fatalf("expected visit %d to be %q, got %q", i, id, visited[i])
		}
	}
	expectedDepths := []int{0, 1, 1, 0}
	for i, d := range expectedDepths {
		if depths[i] != d {
			t.Fatalf("expected depth %d at visit %d, got %d", d, i, depths[i])
		}
	}
}
