package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/card/color"
	"github.com/uno-arena/server/uno/event"
)

func TestCardPlayed(t *testing.T) {
	bus := event.NewBus()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	bus.CardPlayed.AddListener(listenerOne)
	bus.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{Seat: 0, PlayerName: "Someone", Card: card.New(color.Wild, card.NoFace)},
		{Seat: 2, PlayerName: "Somebody", Card: card.New(color.Green, card.Draw2)},
	}
	for _, payload := range payloads {
		bus.CardPlayed.Emit(payload)
	}

	require.Len(t, listenerOne.ReceivedPayloads(), 2)
	require.Equal(t, listenerOne.ReceivedPayloads(), listenerTwo.ReceivedPayloads())
}

func TestSubscribe(t *testing.T) {
	bus := event.NewBus()
	listener := event.NewDummyListener()
	bus.Subscribe(listener)

	bus.ColorPicked.Emit(event.ColorPickedPayload{Seat: 1, PlayerName: "Someone", Color: color.Blue})
	bus.TurnSkipped.Emit(event.TurnSkippedPayload{Seat: 3, PlayerName: "Somebody"})
	bus.RoundFinished.Emit(event.RoundFinishedPayload{})

	require.Len(t, listener.ReceivedPayloads(), 3)
}

func TestBusesAreIsolated(t *testing.T) {
	busOne := event.NewBus()
	busTwo := event.NewBus()
	listener := event.NewDummyListener()
	busOne.Subscribe(listener)

	busTwo.CardsDrawn.Emit(event.CardsDrawnPayload{Seat: 0, PlayerName: "Someone", Count: 2})

	require.Empty(t, listener.ReceivedPayloads())
}
