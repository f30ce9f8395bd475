// Package event carries the engine's notifications to the presentation
// layer. Every emitter is owned by a per-table Bus so tables never hear
// each other's traffic.
package event

type Bus struct {
	CardPlayed       *CardPlayedEmitter
	ColorPicked      *ColorPickedEmitter
	WildColorNeeded  *WildColorNeededEmitter
	SwapTargetNeeded *SwapTargetNeededEmitter
	CardsDrawn       *CardsDrawnEmitter
	TurnSkipped      *TurnSkippedEmitter
	AwaitingComputer *AwaitingComputerEmitter
	RoundFinished    *RoundFinishedEmitter
}

func NewBus() *Bus {
	return &Bus{
		CardPlayed:       &CardPlayedEmitter{},
		ColorPicked:      &ColorPickedEmitter{},
		WildColorNeeded:  &WildColorNeededEmitter{},
		SwapTargetNeeded: &SwapTargetNeededEmitter{},
		CardsDrawn:       &CardsDrawnEmitter{},
		TurnSkipped:      &TurnSkippedEmitter{},
		AwaitingComputer: &AwaitingComputerEmitter{},
		RoundFinished:    &RoundFinishedEmitter{},
	}
}

// Subscribe attaches a listener to every emitter it implements.
func (b *Bus) Subscribe(listener interface{}) {
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(WildColorNeededListener); ok {
		b.WildColorNeeded.AddListener(l)
	}
	if l, ok := listener.(SwapTargetNeededListener); ok {
		b.SwapTargetNeeded.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		b.TurnSkipped.AddListener(l)
	}
	if l, ok := listener.(AwaitingComputerListener); ok {
		b.AwaitingComputer.AddListener(l)
	}
	if l, ok := listener.(RoundFinishedListener); ok {
		b.RoundFinished.AddListener(l)
	}
}
