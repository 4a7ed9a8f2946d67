// Package suggest coordinates city-name autocomplete: keystroke debouncing,
// request epochs that invalidate stale in-flight queries, and wrap-around
// navigation through the suggestion list.
package suggest

import (
	"time"

	"github.com/mvanholt/breeze/internal/owm"
)

// Phase is the coordinator's current state.
type Phase int

const (
	Idle Phase = iota
	Debouncing
	Querying
	Showing
)

const (
	// DebounceInterval is how long input must stay quiet before a query fires.
	DebounceInterval = 400 * time.Millisecond
	// MinQueryLen is the shortest prefix worth querying.
	MinQueryLen = 2
)

// Coordinator tracks the autocomplete state machine. It is driven entirely
// from the UI event loop and is not safe for concurrent use; the epoch
// mechanism handles cross-goroutine staleness at message-delivery time.
type Coordinator struct {
	phase    Phase
	query    string
	timerSeq int
	epoch    int
	items    []owm.Suggestion
	selected int
}

// New returns an idle coordinator.
func New() *Coordinator {
	return &Coordinator{}
}

// Keystroke records changed input text. Any pending debounce timer is
// superseded; the returned sequence number identifies the newly armed timer.
func (c *Coordinator) Keystroke(text string) (seq int) {
	c.query = text
	c.timerSeq++
	c.phase = Debouncing
	return c.timerSeq
}

// TimerFired handles a debounce timer expiring. Stale timers (superseded by
// a later keystroke) are ignored. When the query is long enough a new epoch
// is issued and returned for the caller to tag its fetch with; otherwise the
// list hides and the coordinator returns to idle.
func (c *Coordinator) TimerFired(seq int) (epoch int, query string, ok bool) {
	if seq != c.timerSeq || c.phase != Debouncing {
		return 0, "", false
	}
	if len(c.query) < MinQueryLen {
		c.hide()
		return 0, "", false
	}
	c.epoch++
	c.phase = Querying
	return c.epoch, c.query, true
}

// Deliver applies a query result. Results tagged with a stale epoch, or
// arriving after the query was abandoned (blur, selection, new keystroke),
// are dropped without any state change. Returns true when applied.
func (c *Coordinator) Deliver(epoch int, items []owm.Suggestion) bool {
	if epoch != c.epoch || c.phase != Querying {
		return false
	}
	if len(items) == 0 {
		c.hide()
		return true
	}
	c.items = items
	c.selected = 0
	c.phase = Showing
	return true
}

// Visible reports whether the suggestion list is shown.
func (c *Coordinator) Visible() bool { return c.phase == Showing }

// Phase returns the current state machine phase.
func (c *Coordinator) Phase() Phase { return c.phase }

// Items returns the current suggestion list.
func (c *Coordinator) Items() []owm.Suggestion { return c.items }

// Selected returns the highlighted index.
func (c *Coordinator) Selected() int { return c.selected }

// Next moves the highlight down, wrapping past the end.
func (c *Coordinator) Next() {
	if c.phase != Showing || len(c.items) == 0 {
		return
	}
	c.selected = (c.selected + 1) % len(c.items)
}

// Prev moves the highlight up, wrapping past the start.
func (c *Coordinator) Prev() {
	if c.phase != Showing || len(c.items) == 0 {
		return
	}
	c.selected = (c.selected - 1 + len(c.items)) % len(c.items)
}

// Select confirms the highlighted suggestion and hides the list.
func (c *Coordinator) Select() (label string, ok bool) {
	if c.phase != Showing || len(c.items) == 0 {
		return "", false
	}
	label = c.items[c.selected].Label
	c.hide()
	return label, true
}

// Blur hides the list on loss of input focus.
func (c *Coordinator) Blur() {
	c.hide()
}

func (c *Coordinator) hide() {
	c.phase = Idle
	c.items = nil
	c.selected = 0
}
