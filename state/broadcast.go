package state

import (
	"github.com/uno-arena/server/service"
	"github.com/uno-arena/server/uno/event"
	"github.com/uno-arena/server/uno/msg"
)

// broadcaster relays engine notifications to everyone in the room. It is
// subscribed per round, before the opening card's effect runs.
type broadcaster struct {
	room *service.Room
}

func (b *broadcaster) OnCardPlayed(payload event.CardPlayedPayload) {
	service.Broadcast(b.room.ID, msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (b *broadcaster) OnColorPicked(payload event.ColorPickedPayload) {
	service.Broadcast(b.room.ID, msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (b *broadcaster) OnCardsDrawn(payload event.CardsDrawnPayload) {
	service.Broadcast(b.room.ID, msg.Message.PlayerDrewCards(payload.PlayerName, payload.Count))
}

func (b *broadcaster) OnTurnSkipped(payload event.TurnSkippedPayload) {
	service.Broadcast(b.room.ID, msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (b *broadcaster) OnAwaitingComputer(payload event.AwaitingComputerPayload) {
	service.Broadcast(b.room.ID, msg.Message.PlayerIsThinking(payload.PlayerName))
}

func (b *broadcaster) OnRoundFinished(payload event.RoundFinishedPayload) {
	service.Broadcast(b.room.ID, msg.Message.RoundResults(payload.Results))
}
