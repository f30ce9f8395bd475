package game

import (
	"fmt"
	"math/rand"

	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/card/color"
	"github.com/uno-arena/server/uno/event"
)

func fixedRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func fixedRngSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func humanSeats(n int) []PlayerType {
	types := make([]PlayerType, n)
	for i := range types {
		types[i] = Human
	}
	return types
}

// testGame assembles a table in a known mid-round state: given hands, a
// given active card and a stacked (unshuffled) deck.
func testGame(opts Options, types []PlayerType, hands [][]card.Card, top card.Card, deckCards []card.Card) *Game {
	players := make([]*Player, len(hands))
	seats := make([]*GamePlayer, len(hands))
	for i, handCards := range hands {
		players[i] = &Player{Name: fmt.Sprintf("Player %d", i+1), Type: types[i]}
		seats[i] = newGamePlayer(players[i])
		seats[i].hand.AddCards(handCards)
	}
	pile := NewPile()
	pile.Add(top)
	return &Game{
		players: players,
		seats:   seats,
		deck:    &Deck{rng: fixedRng(), cards: append([]card.Card(nil), deckCards...)},
		pile:    pile,
		cycler:  NewCycler(len(hands)),
		opts:    opts,
		rng:     fixedRng(),
		bus:     event.NewBus(),
	}
}

// manyCards fills a stacked deck with harmless number cards.
func manyCards(n int) []card.Card {
	cards := make([]card.Card, 0, n)
	faces := []card.Face{card.One, card.Two, card.Three, card.Four}
	for i := 0; i < n; i++ {
		cards = append(cards, card.New(color.Playable[i%len(color.Playable)], faces[i%len(faces)]))
	}
	return cards
}

// scriptedAgent plays a fixed answer for every decision, for driving
// computer turns deterministically.
type scriptedAgent struct {
	card   card.Card
	play   bool
	color  color.Color
	target int
}

func (a scriptedAgent) ChooseCard(Snapshot) (card.Card, bool) { return a.card, a.play }
func (a scriptedAgent) ChooseColor(Snapshot) color.Color      { return a.color }
func (a scriptedAgent) ChooseSwapTarget(Snapshot) int         { return a.target }
