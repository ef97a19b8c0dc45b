package tui

import (
	"time"

	"github.com/akyairhashvil/restbreak/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is the one second heartbeat. Gen identifies the tick chain that
// scheduled it; ticks from a stopped chain are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// StoppedMsg reports that an embedded exercises panel finished its session.
type StoppedMsg struct{}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(config.Heartbeat, func(t time.Time) tea.Msg { return TickMsg{Gen: gen, Time: t} })
}

func stoppedCmd() tea.Msg { return StoppedMsg{} }

// ClosedMsg reports that an embedded preferences dialog was closed.
type ClosedMsg struct{}

func closedCmd() tea.Msg { return ClosedMsg{} }
