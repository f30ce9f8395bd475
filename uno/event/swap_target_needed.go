package event

// SwapTargetNeeded fires when a human plays a seven under the seven-swap
// rule without naming the seat to swap hands with.
type SwapTargetNeededPayload struct {
	Seat       int
	PlayerName string
}

type SwapTargetNeededListener interface {
	OnSwapTargetNeeded(SwapTargetNeededPayload)
}

type SwapTargetNeededEmitter struct {
	listeners []SwapTargetNeededListener
}

func (e *SwapTargetNeededEmitter) AddListener(listener SwapTargetNeededListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *SwapTargetNeededEmitter) Emit(payload SwapTargetNeededPayload) {
	for _, listener := range e.listeners {
		listener.OnSwapTargetNeeded(payload)
	}
}
