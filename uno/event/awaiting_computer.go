package event

// AwaitingComputer fires when the turn lands on a computer seat. The
// presentation layer schedules its delay and then asks the engine to play
// the computer's move; the engine never sleeps on its own.
type AwaitingComputerPayload struct {
	Seat       int
	PlayerName string
}

type AwaitingComputerListener interface {
	OnAwaitingComputer(AwaitingComputerPayload)
}

type AwaitingComputerEmitter struct {
	listeners []AwaitingComputerListener
}

func (e *AwaitingComputerEmitter) AddListener(listener AwaitingComputerListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *AwaitingComputerEmitter) Emit(payload AwaitingComputerPayload) {
	for _, listener := range e.listeners {
		listener.OnAwaitingComputer(payload)
	}
}
