package game

import (
	"math/rand"

	"github.com/uno-arena/server/uno/card"
)

// Deck is the face-down draw pile. The head of the slice is the next card
// drawn. All shuffling goes through the injected random source so rounds
// are reproducible under test.
type Deck struct {
	rng   *rand.Rand
	cards []card.Card
}

func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{rng: rng, cards: card.BuildDeck()}
	deck.Shuffle()
	return deck
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// DrawOne pops the head card. Callers check Empty first; the engine
// recycles the discard pile before drawing from an empty deck.
func (d *Deck) DrawOne() card.Card {
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c
}

func (d *Deck) Add(cards []card.Card) {
	d.cards = append(d.cards, cards...)
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
