package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/card/color"
)

func TestCheckPlayability(t *testing.T) {
	newTable := func(opts Options, hand []card.Card, top card.Card) *Game {
		return testGame(opts, humanSeats(2),
			[][]card.Card{hand, {card.New(color.Yellow, card.One)}},
			top, manyCards(4))
	}

	t.Run("membership_beats_every_rule_verdict", func(t *testing.T) {
		g := newTable(DefaultOptions(),
			[]card.Card{card.New(color.Blue, card.Three)},
			card.New(color.Red, card.Five))

		// A Draw4 the player does not hold reports the membership failure,
		// never the Draw4 restriction.
		assert.Equal(t, StatusNotInHand, g.CheckPlayability(card.New(color.Wild, card.Draw4)))
	})

	t.Run("card_on_the_pile_is_told_apart_from_a_foreign_card", func(t *testing.T) {
		g := newTable(DefaultOptions(),
			[]card.Card{card.New(color.Blue, card.Three)},
			card.New(color.Red, card.Five))

		assert.Equal(t, StatusInDiscardPile, g.CheckPlayability(card.New(color.Red, card.Five)))
		assert.Equal(t, StatusNotInHand, g.CheckPlayability(card.New(color.Green, card.Eight)))
	})

	t.Run("color_or_face_must_match", func(t *testing.T) {
		g := newTable(DefaultOptions(),
			[]card.Card{
				card.New(color.Red, card.Two),
				card.New(color.Blue, card.Five),
				card.New(color.Green, card.Eight),
			},
			card.New(color.Red, card.Five))

		assert.Equal(t, StatusOk, g.CheckPlayability(card.New(color.Red, card.Two)))
		assert.Equal(t, StatusOk, g.CheckPlayability(card.New(color.Blue, card.Five)))
		assert.Equal(t, StatusWrongColor, g.CheckPlayability(card.New(color.Green, card.Eight)))
	})

	t.Run("draw4_is_a_last_resort", func(t *testing.T) {
		hand := []card.Card{
			card.New(color.Wild, card.Draw4),
			card.New(color.Red, card.Two),
		}
		g := newTable(DefaultOptions(), hand, card.New(color.Red, card.Five))
		assert.Equal(t, StatusDraw4NotAllowed, g.CheckPlayability(card.New(color.Wild, card.Draw4)))

		opts := DefaultOptions()
		opts.AllowDraw4Always = true
		g = newTable(opts, hand, card.New(color.Red, card.Five))
		assert.Equal(t, StatusOk, g.CheckPlayability(card.New(color.Wild, card.Draw4)))

		g = newTable(DefaultOptions(),
			[]card.Card{card.New(color.Wild, card.Draw4), card.New(color.Blue, card.Two)},
			card.New(color.Red, card.Five))
		assert.Equal(t, StatusOk, g.CheckPlayability(card.New(color.Wild, card.Draw4)))
	})

	t.Run("plain_wild_always_matches", func(t *testing.T) {
		g := newTable(DefaultOptions(),
			[]card.Card{card.New(color.Wild, card.NoFace)},
			card.New(color.Red, card.Five))

		assert.Equal(t, StatusOk, g.CheckPlayability(card.New(color.Wild, card.NoFace)))
	})

	t.Run("pending_draw_blocks_everything_but_draw_cards", func(t *testing.T) {
		g := newTable(DefaultOptions(),
			[]card.Card{
				card.New(color.Red, card.Two),
				card.New(color.Red, card.Draw2),
			},
			card.New(color.Red, card.Draw2))
		g.pending.toDraw = 2

		assert.Equal(t, StatusMustDraw, g.CheckPlayability(card.New(color.Red, card.Two)))
		assert.Equal(t, StatusOk, g.CheckPlayability(card.New(color.Red, card.Draw2)))
	})
}

func TestActiveColor_follows_the_wild_choice(t *testing.T) {
	g := testGame(DefaultOptions(), humanSeats(2),
		[][]card.Card{
			{card.New(color.Green, card.Eight)},
			{card.New(color.Yellow, card.One)},
		},
		card.New(color.Wild, card.NoFace), manyCards(4))
	g.wildColor = color.Green

	require.Equal(t, color.Green, g.ActiveColor())
	assert.Equal(t, StatusOk, g.CheckPlayability(card.New(color.Green, card.Eight)))
}
