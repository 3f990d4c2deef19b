package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// keyInput turns terminal key presses into the loop's event stream.
//
// Terminals only report presses (and auto-repeat presses while a key is
// held), never releases. A key counts as released once no press has been
// seen for its window: repeatDelay until the key has auto-repeated once,
// releaseAfter from then on. Its key-up is emitted on the next Poll, ahead
// of that poll's new presses.
type keyInput struct {
	queue        []core.Event
	held         map[core.Key]heldKey
	releaseAfter time.Duration
	repeatDelay  time.Duration
	now          func() time.Time
}

type heldKey struct {
	last     time.Time // last press
	repeated bool      // seen a second press while held
}

// newKeyInput creates an input source. A repeatDelay shorter than
// releaseAfter is raised to it.
func newKeyInput(releaseAfter, repeatDelay time.Duration, now func() time.Time) *keyInput {
	if now == nil {
		now = time.Now
	}
	return &keyInput{
		held:         make(map[core.Key]heldKey),
		releaseAfter: releaseAfter,
		repeatDelay:  max(repeatDelay, releaseAfter),
		now:          now,
	}
}

// Press records a key press.
func (in *keyInput) Press(k core.Key) {
	in.queue = append(in.queue, core.KeyDown(k))
	_, down := in.held[k]
	in.held[k] = heldKey{last: in.now(), repeated: down}
}

// Quit queues a quit event.
func (in *keyInput) Quit() {
	in.queue = append(in.queue, core.Quit())
}

// Poll implements engine.InputSource.
func (in *keyInput) Poll() []core.Event {
	now := in.now()

	// Keys pressed since the last poll are down for at least this tick.
	fresh := make(map[core.Key]bool, len(in.queue))
	for _, e := range in.queue {
		if e.Kind == core.EventKeyDown {
			fresh[e.Key] = true
		}
	}

	var released []core.Key
	for k, h := range in.held {
		window := in.repeatDelay
		if h.repeated {
			window = in.releaseAfter
		}
		if !fresh[k] && now.Sub(h.last) >= window {
			released = append(released, k)
		}
	}
	slices.Sort(released)

	events := make([]core.Event, 0, len(released)+len(in.queue))
	for _, k := range released {
		delete(in.held, k)
		events = append(events, core.KeyUp(k))
	}
	events = append(events, in.queue...)
	in.queue = in.queue[:0]

	if len(events) == 0 {
		return nil
	}
	return events
}
