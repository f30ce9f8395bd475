package game

import (
	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/card/color"
)

// Hand keeps a seat's cards ordered by sorting value at all times. Draws
// insert at the sorted position instead of re-sorting the whole hand.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) Insert(c card.Card) {
	index := 0
	for index < len(h.cards) && h.cards[index].SortingValue() < c.SortingValue() {
		index++
	}
	h.cards = append(h.cards, card.Card{})
	copy(h.cards[index+1:], h.cards[index:])
	h.cards[index] = c
}

func (h *Hand) AddCards(cards []card.Card) {
	for _, c := range cards {
		h.Insert(c)
	}
}

// Remove takes one instance of the card out of the hand.
func (h *Hand) Remove(c card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand == c {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Contains(c card.Card) bool {
	for _, cardInHand := range h.cards {
		if cardInHand == c {
			return true
		}
	}
	return false
}

func (h *Hand) HasColor(col color.Color) bool {
	for _, cardInHand := range h.cards {
		if cardInHand.Color == col {
			return true
		}
	}
	return false
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}
