package event

type CardsDrawnPayload struct {
	Seat       int
	PlayerName string
	Count      int
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type CardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *CardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *CardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}
