package ui

import (
	"fmt"

	"github.com/Arrbel/cosmos-explorer-sub001/internal/bridge"
	tea "github.com/charmbracelet/bubbletea"
)

type bridgeEventMsg struct {
	event bridge.Event
}

type bridgeDoneMsg struct{}

// waitForBridgeEvent blocks on the next renderer event and wraps it as a
// tea message. The returned command re-arms itself from the handler.
func waitForBridgeEvent(b *bridge.Bridge) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev := <-b.Events():
			return bridgeEventMsg{event: ev}
		case <-b.Done():
			return bridgeDoneMsg{}
		}
	}
}

func (m *Model) handleBridgeEventMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(bridgeEventMsg)
	if !ok {
		return nil
	}
	switch ev.event.Kind {
	case bridge.KindPerformance:
		m.lastSample = ev.event.Sample
		m.haveSample = true
	case bridge.KindQualityChange:
		m.viewerOpts.Quality = ev.event.Quality
		m.setInfo(fmt.Sprintf("Renderer switched to %s quality", ev.event.Quality))
	case bridge.KindSceneReady:
		m.sceneReady = true
	}
	if m.bridge == nil {
		return nil
	}
	return waitForBridgeEvent(m.bridge)
}

func (m *Model) handleBridgeDoneMsg(tea.Msg) tea.Cmd {
	return nil
}
