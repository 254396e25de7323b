package session

import "time"

// Token identifies a deferred UI transition (auto-advance or shake clear).
// The host schedules it after Delay and hands it back to the Engine, which
// acts only if nothing has happened since the token was issued.
type Token struct {
	Generation uint64
	Topic      string
	Index      int
	Seq        uint64 // submission that issued the token
	Delay      time.Duration
}

// Default delays.
const (
	DefaultAutoAdvanceDelay = 2 * time.Second
	DefaultShakeDelay       = 400 * time.Millisecond
)

func (e *Engine) issue(delay time.Duration) *Token {
	return &Token{
		Generation: e.state.Generation,
		Topic:      e.state.TopicID,
		Index:      e.state.ProblemIndex,
		Seq:        e.seq,
		Delay:      delay,
	}
}

// Live reports whether tok was issued by the most recent submission on the
// problem currently loaded.
func (e *Engine) Live(tok Token) bool {
	return tok.Generation == e.state.Generation &&
		tok.Topic == e.state.TopicID &&
		tok.Index == e.state.ProblemIndex &&
		tok.Seq == e.seq
}

// AutoAdvance moves to the next problem if tok is still live. A stale token
// is a no-op and returns false.
func (e *Engine) AutoAdvance(tok Token) (Navigation, bool) {
	if !e.Live(tok) {
		e.log.Debug("stale auto-advance ignored",
			"token_generation", tok.Generation, "generation", e.state.Generation)
		return Navigation{}, false
	}
	nav, err := e.NextProblem()
	if err != nil {
		e.log.Warn("auto-advance failed", "error", err)
		return Navigation{}, false
	}
	return nav, true
}

// ShakeExpired reports whether the shake effect started by tok should now be
// cleared. It is false if a newer submission or a problem load superseded it.
func (e *Engine) ShakeExpired(tok Token) bool {
	return e.Live(tok)
}
