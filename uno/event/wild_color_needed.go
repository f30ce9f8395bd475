package event

// WildColorNeeded fires when a human plays a wild without naming a color.
// The engine leaves its state untouched; the presentation layer collects a
// color and resubmits the play.
type WildColorNeededPayload struct {
	Seat       int
	PlayerName string
}

type WildColorNeededListener interface {
	OnWildColorNeeded(WildColorNeededPayload)
}

type WildColorNeededEmitter struct {
	listeners []WildColorNeededListener
}

func (e *WildColorNeededEmitter) AddListener(listener WildColorNeededListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *WildColorNeededEmitter) Emit(payload WildColorNeededPayload) {
	for _, listener := range e.listeners {
		listener.OnWildColorNeeded(payload)
	}
}
