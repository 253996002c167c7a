package events

import "github.com/Arrbel/cosmos-explorer-sub001/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) NavCursor(itemID string, cursor int) {
	logging.Trace("nav.cursor", map[string]interface{}{"item": itemID, "cursor": cursor})
}

func (UITracer) NavActivate(itemID, label string) {
	logging.Trace("nav.activate", map[string]interface{}{"item": itemID, "label": label})
}

func (UITracer) NavSuppressed(itemID string) {
	logging.Trace("nav.suppressed", map[string]interface{}{"item": itemID})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}
