package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/card/color"
)

func TestHand_keeps_sorted_order_on_insert(t *testing.T) {
	hand := NewHand()
	hand.Insert(card.New(color.Green, card.Nine))
	hand.Insert(card.New(color.Red, card.Two))
	hand.Insert(card.New(color.Wild, card.Draw4))
	hand.Insert(card.New(color.Red, card.Skip))

	cards := hand.Cards()
	for i := 1; i < len(cards); i++ {
		assert.LessOrEqual(t, cards[i-1].SortingValue(), cards[i].SortingValue())
	}
}

func TestHand_remove_takes_a_single_instance(t *testing.T) {
	hand := NewHand()
	hand.Insert(card.New(color.Red, card.Two))
	hand.Insert(card.New(color.Red, card.Two))

	require.True(t, hand.Remove(card.New(color.Red, card.Two)))
	assert.Equal(t, 1, hand.Size())
	assert.True(t, hand.Contains(card.New(color.Red, card.Two)))

	assert.False(t, hand.Remove(card.New(color.Blue, card.Nine)))
}

func TestDeck_draws_from_the_head(t *testing.T) {
	deck := &Deck{rng: fixedRng(), cards: []card.Card{
		card.New(color.Red, card.One),
		card.New(color.Blue, card.Two),
	}}

	assert.Equal(t, card.New(color.Red, card.One), deck.DrawOne())
	assert.Equal(t, card.New(color.Blue, card.Two), deck.DrawOne())
	assert.True(t, deck.Empty())
}

func TestPile_take_all_but_top_keeps_the_active_card(t *testing.T) {
	pile := NewPile()
	pile.Add(card.New(color.Red, card.One))
	pile.Add(card.New(color.Blue, card.Two))
	pile.Add(card.New(color.Green, card.Three))

	taken := pile.TakeAllButTop()

	assert.ElementsMatch(t, []card.Card{
		card.New(color.Red, card.One),
		card.New(color.Blue, card.Two),
	}, taken)
	assert.Equal(t, 1, pile.Size())
	assert.Equal(t, card.New(color.Green, card.Three), pile.Top())
}

func TestCycler(t *testing.T) {
	cycler := NewCycler(3)
	assert.Equal(t, 0, cycler.Current())
	assert.Equal(t, 1, cycler.Next())
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 0, cycler.Next())

	cycler.Reverse()
	assert.False(t, cycler.Clockwise())
	assert.Equal(t, 2, cycler.Next())
	assert.Equal(t, 1, cycler.Peek(2))

	cycler.Reverse()
	assert.True(t, cycler.Clockwise())
	assert.Equal(t, 0, cycler.Next())
}
