package game

import "github.com/uno-arena/server/uno/card"

// Pile is the face-up discard pile. The tail of the slice is the active
// card that defines the color and face a play must match.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(c card.Card) {
	p.cards = append(p.cards, c)
}

func (p *Pile) Top() card.Card {
	return p.cards[len(p.cards)-1]
}

func (p *Pile) Size() int {
	return len(p.cards)
}

func (p *Pile) Contains(c card.Card) bool {
	for _, cardInPile := range p.cards {
		if cardInPile == c {
			return true
		}
	}
	return false
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// TakeAllButTop removes and returns everything under the active card, which
// stays on the pile to keep the current color/face context.
func (p *Pile) TakeAllButTop() []card.Card {
	taken := make([]card.Card, len(p.cards)-1)
	copy(taken, p.cards[:len(p.cards)-1])
	p.cards[0] = p.cards[len(p.cards)-1]
	p.cards = p.cards[:1]
	return taken
}
