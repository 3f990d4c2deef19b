package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// mapKey translates an ebiten key into a game key.
func mapKey(k ebiten.Key) core.Key {
	switch k {
	case ebiten.KeyArrowLeft:
		return core.KeyLeft
	case ebiten.KeyArrowRight:
		return core.KeyRight
	case ebiten.KeySpace:
		return core.KeySpace
	default:
		return core.KeyUnknown
	}
}

// translate builds one tick's events from the keys released and pressed
// since the previous tick. Releases come first. Escape and a close request
// both quit.
func translate(pressed, released []ebiten.Key, closing bool) []core.Event {
	var events []core.Event
	for _, k := range released {
		if k == ebiten.KeyEscape {
			continue
		}
		events = append(events, core.KeyUp(mapKey(k)))
	}
	for _, k := range pressed {
		if k == ebiten.KeyEscape {
			events = append(events, core.Quit())
			continue
		}
		events = append(events, core.KeyDown(mapKey(k)))
	}
	if closing {
		events = append(events, core.Quit())
	}
	return events
}

// windowInput hands the events sampled in Update to the loop.
type windowInput struct {
	pending []core.Event
}

func (in *windowInput) set(events []core.Event) {
	in.pending = events
}

// Poll implements engine.InputSource.
func (in *windowInput) Poll() []core.Event {
	events := in.pending
	in.pending = nil
	return events
}
