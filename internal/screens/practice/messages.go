package practice

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/algebra/internal/session"
)

// autoAdvanceMsg is delivered when a correct answer's advance delay elapses.
type autoAdvanceMsg struct {
	Token session.Token
}

// shakeDoneMsg is delivered when an incorrect answer's shake delay elapses.
type shakeDoneMsg struct {
	Token session.Token
}

// scheduleAdvance returns a command that delivers tok after its delay.
func scheduleAdvance(tok session.Token) tea.Cmd {
	return tea.Tick(tok.Delay, func(time.Time) tea.Msg {
		return autoAdvanceMsg{Token: tok}
	})
}

// scheduleShakeDone returns a command that delivers tok after its delay.
func scheduleShakeDone(tok session.Token) tea.Cmd {
	return tea.Tick(tok.Delay, func(time.Time) tea.Msg {
		return shakeDoneMsg{Token: tok}
	})
}
