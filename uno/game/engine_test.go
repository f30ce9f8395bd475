package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/card/color"
	"github.com/uno-arena/server/uno/event"
)

func TestPlayCard_draw_stacking(t *testing.T) {
	g := testGame(DefaultOptions(), humanSeats(3),
		[][]card.Card{
			{card.New(color.Red, card.Draw2), card.New(color.Blue, card.Three)},
			{card.New(color.Wild, card.Draw4), card.New(color.Green, card.Seven)},
			{card.New(color.Yellow, card.One), card.New(color.Yellow, card.Two)},
		},
		card.New(color.Red, card.Five), manyCards(10))
	listener := event.NewDummyListener()
	g.Events().Subscribe(listener)

	require.Equal(t, StatusOk, g.PlayCard(NewIntent(card.New(color.Red, card.Draw2))))
	assert.Equal(t, 2, g.PendingDraw())
	assert.Equal(t, 1, g.Current())

	// The stack can only be answered with another draw card.
	assert.Equal(t, StatusMustDraw, g.CheckPlayability(card.New(color.Green, card.Seven)))

	in := NewIntent(card.New(color.Wild, card.Draw4))
	in.WildColor = color.Blue
	require.Equal(t, StatusOk, g.PlayCard(in))
	assert.Equal(t, 6, g.PendingDraw())
	assert.Equal(t, 2, g.Current())

	// The whole stack lands on the seat that cannot answer it.
	require.Equal(t, PickOk, g.Pickup())
	assert.Equal(t, 8, g.SeatAt(2).HandSize())
	assert.Equal(t, 6, g.SeatAt(2).CardsPickedUp)
	assert.Equal(t, 0, g.PendingDraw())
	assert.Equal(t, 0, g.Current())
}

func TestPlayCard_wild_without_color_is_cancelled(t *testing.T) {
	g := testGame(DefaultOptions(), humanSeats(2),
		[][]card.Card{
			{card.New(color.Wild, card.NoFace), card.New(color.Blue, card.Three)},
			{card.New(color.Yellow, card.One)},
		},
		card.New(color.Red, card.Five), manyCards(4))
	listener := event.NewDummyListener()
	g.Events().Subscribe(listener)

	require.Equal(t, StatusCancelled, g.PlayCard(NewIntent(card.New(color.Wild, card.NoFace))))

	assert.Equal(t, 2, g.SeatAt(0).HandSize())
	assert.Equal(t, 0, g.Current())
	assert.Equal(t, card.New(color.Red, card.Five), g.TopCard())
	require.Len(t, listener.ReceivedPayloads(), 1)
	assert.IsType(t, event.WildColorNeededPayload{}, listener.ReceivedPayloads()[0])
}

func TestPlayCard_skip(t *testing.T) {
	g := testGame(DefaultOptions(), humanSeats(3),
		[][]card.Card{
			{card.New(color.Red, card.Skip), card.New(color.Blue, card.Three)},
			{card.New(color.Yellow, card.One)},
			{card.New(color.Green, card.Two)},
		},
		card.New(color.Red, card.Five), manyCards(4))
	listener := event.NewDummyListener()
	g.Events().Subscribe(listener)

	require.Equal(t, StatusOk, g.PlayCard(NewIntent(card.New(color.Red, card.Skip))))

	assert.Equal(t, 2, g.Current())
	skipped := 0
	for _, payload := range listener.ReceivedPayloads() {
		if p, ok := payload.(event.TurnSkippedPayload); ok {
			skipped++
			assert.Equal(t, 1, p.Seat)
		}
	}
	assert.Equal(t, 1, skipped)
}

func TestPlayCard_skip_all_grants_no_extra_turn(t *testing.T) {
	g := testGame(DefaultOptions(), humanSeats(3),
		[][]card.Card{
			{card.New(color.Red, card.SkipAll), card.New(color.Blue, card.Three)},
			{card.New(color.Yellow, card.One)},
			{card.New(color.Green, card.Two)},
		},
		card.New(color.Red, card.Five), manyCards(4))

	require.Equal(t, StatusOk, g.PlayCard(NewIntent(card.New(color.Red, card.SkipAll))))

	// Every other seat sits the cycle out and play resumes one seat on;
	// the seat that played the card does not go again.
	assert.Equal(t, 1, g.Current())
}

func TestPlayCard_reverse(t *testing.T) {
	g := testGame(DefaultOptions(), humanSeats(3),
		[][]card.Card{
			{card.New(color.Red, card.Reverse), card.New(color.Blue, card.Three)},
			{card.New(color.Yellow, card.One)},
			{card.New(color.Red, card.Reverse), card.New(color.Green, card.Two)},
		},
		card.New(color.Red, card.Five), manyCards(4))

	require.Equal(t, StatusOk, g.PlayCard(NewIntent(card.New(color.Red, card.Reverse))))
	assert.Equal(t, 2, g.Current())

	require.Equal(t, StatusOk, g.PlayCard(NewIntent(card.New(color.Red, card.Reverse))))
	assert.Equal(t, 0, g.Current())
}

func TestPickup_tnt_draws_four(t *testing.T) {
	g := testGame(DefaultOptions(), humanSeats(2),
		[][]card.Card{
			{card.New(color.Red, card.TNT), card.New(color.Blue, card.Three)},
			{card.New(color.Yellow, card.One), card.New(color.Yellow, card.Two)},
		},
		card.New(color.Red, card.Five), manyCards(6))

	require.Equal(t, StatusOk, g.PlayCard(NewIntent(card.New(color.Red, card.TNT))))
	require.Equal(t, 1, g.Current())

	require.Equal(t, PickOk, g.Pickup())
	assert.Equal(t, 6, g.SeatAt(1).HandSize())
	assert.Equal(t, 4, g.SeatAt(1).CardsPickedUp)
}

func TestPickup_tnt_quadruples_a_pending_stack(t *testing.T) {
	g := testGame(DefaultOptions(), humanSeats(3),
		[][]card.Card{
			{card.New(color.Red, card.TNT), card.New(color.Blue, card.Three)},
			{card.New(color.Red, card.Draw2), card.New(color.Yellow, card.One)},
			{card.New(color.Green, card.Two), card.New(color.Green, card.Three)},
		},
		card.New(color.Red, card.Five), manyCards(8))

	require.Equal(t, StatusOk, g.PlayCard(NewIntent(card.New(color.Red, card.TNT))))
	require.Equal(t, StatusOk, g.PlayCard(NewIntent(card.New(color.Red, card.Draw2))))

	require.Equal(t, PickOk, g.Pickup())
	assert.Equal(t, 6, g.SeatAt(2).CardsPickedUp)
}

func TestPlayCard_random_draw_hits_every_seat_immediately(t *testing.T) {
	g := testGame(DefaultOptions(), humanSeats(3),
		[][]card.Card{
			{card.New(color.Red, card.RandomDraw), card.New(color.Blue, card.Three)},
			{card.New(color.Yellow, card.One)},
			{card.New(color.Green, card.Two)},
		},
		card.New(color.Red, card.Five), manyCards(15))

	require.Equal(t, StatusOk, g.PlayCard(NewIntent(card.New(color.Red, card.RandomDraw))))

	for seat := 0; seat < 3; seat++ {
		picked := g.SeatAt(seat).CardsPickedUp
		assert.GreaterOrEqual(t, picked, 1, "seat %d", seat)
		assert.LessOrEqual(t, picked, 5, "seat %d", seat)
	}
	assert.Equal(t, 0, g.PendingDraw())
	assert.Equal(t, 1, g.Current())
}

func TestPlayCard_seven_swaps_hands(t *testing.T) {
	opts := DefaultOptions()
	opts.SwapHandsOnSeven = true
	g := testGame(opts, humanSeats(3),
		[][]card.Card{
			{card.New(color.Red, card.Seven), card.New(color.Blue, card.Three)},
			{card.New(color.Yellow, card.One)},
			{card.New(color.Green, card.Two), card.New(color.Green, card.Four), card.New(color.Green, card.Six)},
		},
		card.New(color.Red, card.Five), manyCards(4))

	in := NewIntent(card.New(color.Red, card.Seven))
	in.SwapTarget = 2
	require.Equal(t, StatusOk, g.PlayCard(in))

	assert.ElementsMatch(t,
		[]card.Card{card.New(color.Green, card.Two), card.New(color.Green, card.Four), card.New(color.Green, card.Six)},
		g.HandOf(0))
	assert.ElementsMatch(t, []card.Card{card.New(color.Blue, card.Three)}, g.HandOf(2))
}

func TestPlayCard_seven_without_target_is_cancelled(t *testing.T) {
	opts := DefaultOptions()
	opts.SwapHandsOnSeven = true
	g := testGame(opts, humanSeats(2),
		[][]card.Card{
			{card.New(color.Red, card.Seven), card.New(color.Blue, card.Three)},
			{card.New(color.Yellow, card.One)},
		},
		card.New(color.Red, card.Five), manyCards(4))
	listener := event.NewDummyListener()
	g.Events().Subscribe(listener)

	require.Equal(t, StatusCancelled, g.PlayCard(NewIntent(card.New(color.Red, card.Seven))))

	assert.Equal(t, 2, g.SeatAt(0).HandSize())
	assert.Equal(t, 0, g.Current())
	require.Len(t, listener.ReceivedPayloads(), 1)
	assert.IsType(t, event.SwapTargetNeededPayload{}, listener.ReceivedPayloads()[0])
}

func TestPlayCard_zero_rotates_hands_along_direction(t *testing.T) {
	opts := DefaultOptions()
	opts.SwapHandsOnZero = true
	g := testGame(opts, humanSeats(3),
		[][]card.Card{
			{card.New(color.Red, card.Zero), card.New(color.Blue, card.Three)},
			{card.New(color.Yellow, card.One)},
			{card.New(color.Green, card.Two)},
		},
		card.New(color.Red, card.Five), manyCards(4))

	require.Equal(t, StatusOk, g.PlayCard(NewIntent(card.New(color.Red, card.Zero))))

	assert.ElementsMatch(t, []card.Card{card.New(color.Green, card.Two)}, g.HandOf(0))
	assert.ElementsMatch(t, []card.Card{card.New(color.Blue, card.Three)}, g.HandOf(1))
	assert.ElementsMatch(t, []card.Card{card.New(color.Yellow, card.One)}, g.HandOf(2))
}

func TestPickup_recycles_the_discard_pile(t *testing.T) {
	g := testGame(DefaultOptions(), humanSeats(2),
		[][]card.Card{
			{card.New(color.Blue, card.Three)},
			{card.New(color.Yellow, card.One)},
		},
		card.New(color.Red, card.Five), nil)
	g.pile.Add(card.New(color.Green, card.Two))
	// Active card on top of two recyclable ones.
	g.pile.Add(card.New(color.Red, card.Five))

	require.Equal(t, PickOk, g.Pickup())

	assert.Equal(t, 2, g.SeatAt(0).HandSize())
	assert.Equal(t, 1, g.pile.Size())
	assert.Equal(t, card.New(color.Red, card.Five), g.TopCard())
	assert.Equal(t, 1, g.deck.Size())
}

func TestPickup_fails_with_nothing_to_draw(t *testing.T) {
	g := testGame(DefaultOptions(), humanSeats(2),
		[][]card.Card{
			{card.New(color.Blue, card.Three)},
			{card.New(color.Yellow, card.One)},
		},
		card.New(color.Red, card.Five), nil)

	require.Equal(t, PickDeckExhausted, g.Pickup())
	assert.Equal(t, 0, g.Current())
	assert.Equal(t, 1, g.SeatAt(0).HandSize())
}

func TestWrongActor_gates_both_directions(t *testing.T) {
	g := testGame(DefaultOptions(), []PlayerType{Human, BasicComputer},
		[][]card.Card{
			{card.New(color.Red, card.Five), card.New(color.Blue, card.Three)},
			{card.New(color.Yellow, card.One)},
		},
		card.New(color.Red, card.Nine), manyCards(4))

	agent := scriptedAgent{card: card.New(color.Red, card.Five), play: true}
	assert.Equal(t, StatusWrongActor, g.PlayComputerTurn(agent))

	require.Equal(t, StatusOk, g.PlayCard(NewIntent(card.New(color.Red, card.Five))))
	require.Equal(t, 1, g.Current())

	assert.Equal(t, StatusWrongActor, g.PlayCard(NewIntent(card.New(color.Yellow, card.One))))
	assert.Equal(t, PickWrongActor, g.Pickup())
}

func TestPlayComputerTurn(t *testing.T) {
	t.Run("plays_the_chosen_card", func(t *testing.T) {
		g := testGame(DefaultOptions(), []PlayerType{BasicComputer, Human},
			[][]card.Card{
				{card.New(color.Red, card.Five), card.New(color.Blue, card.Three)},
				{card.New(color.Yellow, card.One)},
			},
			card.New(color.Red, card.Nine), manyCards(4))

		agent := scriptedAgent{card: card.New(color.Red, card.Five), play: true}
		require.Equal(t, StatusOk, g.PlayComputerTurn(agent))
		assert.Equal(t, 1, g.SeatAt(0).HandSize())
		assert.Equal(t, 1, g.Current())
	})

	t.Run("draws_when_the_agent_declines", func(t *testing.T) {
		g := testGame(DefaultOptions(), []PlayerType{BasicComputer, Human},
			[][]card.Card{
				{card.New(color.Blue, card.Three)},
				{card.New(color.Yellow, card.One)},
			},
			card.New(color.Red, card.Nine), manyCards(4))

		require.Equal(t, StatusOk, g.PlayComputerTurn(scriptedAgent{}))
		assert.Equal(t, 2, g.SeatAt(0).HandSize())
		assert.Equal(t, 1, g.Current())
	})

	t.Run("answers_wild_and_swap_prompts_itself", func(t *testing.T) {
		opts := DefaultOptions()
		opts.SwapHandsOnSeven = true
		g := testGame(opts, []PlayerType{SmartComputer, Human},
			[][]card.Card{
				{card.New(color.Red, card.Seven), card.New(color.Blue, card.Three)},
				{card.New(color.Yellow, card.One)},
			},
			card.New(color.Red, card.Nine), manyCards(4))

		agent := scriptedAgent{card: card.New(color.Red, card.Seven), play: true, target: 1}
		require.Equal(t, StatusOk, g.PlayComputerTurn(agent))
		assert.ElementsMatch(t, []card.Card{card.New(color.Yellow, card.One)}, g.HandOf(0))
	})

	t.Run("ends_the_round_when_stuck_with_no_draw", func(t *testing.T) {
		g := testGame(DefaultOptions(), []PlayerType{BasicComputer, Human},
			[][]card.Card{
				{card.New(color.Blue, card.Three)},
				{card.New(color.Yellow, card.One)},
			},
			card.New(color.Red, card.Nine), nil)

		require.Equal(t, StatusOk, g.PlayComputerTurn(scriptedAgent{}))
		assert.True(t, g.Finished())
	})
}

func TestRoundOver_rejects_further_play(t *testing.T) {
	g := testGame(DefaultOptions(), humanSeats(2),
		[][]card.Card{
			{card.New(color.Red, card.Five)},
			{card.New(color.Yellow, card.One)},
		},
		card.New(color.Red, card.Nine), manyCards(4))
	g.finished = true

	assert.Equal(t, StatusRoundOver, g.PlayCard(NewIntent(card.New(color.Red, card.Five))))
	assert.Equal(t, PickRoundOver, g.Pickup())
}

func TestRound_ends_at_first_finisher_with_early_stop(t *testing.T) {
	opts := DefaultOptions()
	opts.StopAfterFirstFinisher = true
	g := testGame(opts, humanSeats(3),
		[][]card.Card{
			{card.New(color.Red, card.Five)},
			{card.New(color.Yellow, card.One)},
			{card.New(color.Green, card.Two)},
		},
		card.New(color.Red, card.Nine), manyCards(4))

	require.Equal(t, StatusOk, g.PlayCard(NewIntent(card.New(color.Red, card.Five))))

	assert.True(t, g.Finished())
	assert.Equal(t, 0, g.SeatAt(0).FinishRank)
}
