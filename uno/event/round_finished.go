package event

// PlayerResult is one seat's line in the end-of-round report.
type PlayerResult struct {
	Seat       int
	PlayerName string
	Score      int
	TotalScore int
	FinishRank int
	CardsLeft  int
}

type RoundFinishedPayload struct {
	Results []PlayerResult
}

type RoundFinishedListener interface {
	OnRoundFinished(RoundFinishedPayload)
}

type RoundFinishedEmitter struct {
	listeners []RoundFinishedListener
}

func (e *RoundFinishedEmitter) AddListener(listener RoundFinishedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *RoundFinishedEmitter) Emit(payload RoundFinishedPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundFinished(payload)
	}
}
