package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// DefaultTransition is the delay between leaving one tab and showing the next.
const DefaultTransition = 500 * time.Millisecond

// Tab identifies a top-level view.
type Tab int

const (
	TabReviews Tab = iota
	TabWatchlist
)

func (t Tab) String() string {
	if t == TabWatchlist {
		return "Watch List"
	}
	return "Reviews"
}

// Other returns the tab that is not t.
func (t Tab) Other() Tab {
	if t == TabReviews {
		return TabWatchlist
	}
	return TabReviews
}

// transitionDoneMsg ends the fade started by generation seq.
type transitionDoneMsg struct {
	seq    uint64
	target Tab
}

// Transition tracks the fade between tabs. While fading, the current tab is
// dimmed and input that would start another switch is ignored.
type Transition struct {
	Duration time.Duration
	fading   bool
	target   Tab
	seq      uint64
}

// NewTransition creates a transition with the given delay. A zero delay
// switches tabs immediately.
func NewTransition(d time.Duration) Transition {
	return Transition{Duration: max(d, 0)}
}

// Fading reports whether a switch is pending.
func (t Transition) Fading() bool {
	return t.fading
}

// Target returns the tab a pending switch will show.
func (t Transition) Target() Tab {
	return t.target
}

// Start begins a switch to target. It returns false when a switch is already
// pending or the delay is zero; in the zero case the caller switches at once.
func (t *Transition) Start(target Tab) (tea.Cmd, bool) {
	if t.fading || t.Duration == 0 {
		return nil, false
	}
	t.seq++
	t.fading = true
	t.target = target

	seq := t.seq
	return tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return transitionDoneMsg{seq: seq, target: target}
	}), true
}

// Finish completes the switch for msg. It reports false for a message from
// an older generation.
func (t *Transition) Finish(msg transitionDoneMsg) (Tab, bool) {
	if !t.fading || msg.seq != t.seq {
		return 0, false
	}
	t.fading = false
	return msg.target, true
}
