// Package tui provides the Bubble Tea front end for Rabduction.
// It owns the terminal loop, maps keys to game actions, records finished
// runs and serves the same models over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick loop that scheduled it.
type TickMsg struct {
	Loop uint64
	Time time.Time
}

var tickLoops atomic.Uint64

// newTickLoop returns a fresh loop id so stale ticks from a finished game
// are not picked up by the next one.
func newTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
