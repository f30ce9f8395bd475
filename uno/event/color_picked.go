package event

import "github.com/uno-arena/server/uno/card/color"

type ColorPickedPayload struct {
	Seat       int
	PlayerName string
	Color      color.Color
}

type ColorPickedListener interface {
	OnColorPicked(ColorPickedPayload)
}

type ColorPickedEmitter struct {
	listeners []ColorPickedListener
}

func (e *ColorPickedEmitter) AddListener(listener ColorPickedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *ColorPickedEmitter) Emit(payload ColorPickedPayload) {
	for _, listener := range e.listeners {
		listener.OnColorPicked(payload)
	}
}
