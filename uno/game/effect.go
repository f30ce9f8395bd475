package game

import (
	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/event"
)

// Effect is the tagged action a played face triggers. Keeping the mapping
// explicit makes every arm of the pending-effect machine testable on its
// own.
type Effect int

const (
	EffectNone Effect = iota
	EffectDraw2
	EffectDraw4
	EffectRandomDraw
	EffectSkip
	EffectSkipAll
	EffectTNT
	EffectReverse
	EffectRotateHands
	EffectSwapHands
)

// EffectOf maps a face to its effect under the given options. The zero and
// seven swaps only exist when their house rules are switched on.
func EffectOf(f card.Face, opts Options) Effect {
	switch f {
	case card.Draw2:
		return EffectDraw2
	case card.Draw4:
		return EffectDraw4
	case card.RandomDraw:
		return EffectRandomDraw
	case card.Skip:
		return EffectSkip
	case card.SkipAll:
		return EffectSkipAll
	case card.TNT:
		return EffectTNT
	case card.Reverse:
		return EffectReverse
	case card.Zero:
		if opts.SwapHandsOnZero {
			return EffectRotateHands
		}
	case card.Seven:
		if opts.SwapHandsOnSeven {
			return EffectSwapHands
		}
	}
	return EffectNone
}

// pendingEffects are the transient flags between a play and the next turn
// settlement. They live on the aggregate so state can be snapshotted.
type pendingEffects struct {
	toDraw   int
	skipNext bool
	skipAll  bool
	tnt      bool
}

func (g *Game) applyEffect(e Effect, swapTarget int) {
	switch e {
	case EffectDraw2:
		g.pending.toDraw += 2
	case EffectDraw4:
		g.pending.toDraw += 4
	case EffectRandomDraw:
		g.randomDraw()
	case EffectSkip:
		g.pending.skipNext = true
	case EffectSkipAll:
		g.pending.skipAll = true
	case EffectTNT:
		g.pending.tnt = true
	case EffectReverse:
		g.cycler.Reverse()
	case EffectRotateHands:
		g.rotateHands()
	case EffectSwapHands:
		g.swapHands(swapTarget)
	}
}

// randomDraw makes every seat still in the round draw one to five cards on
// the spot. Unlike Draw2/Draw4 nothing is queued; the asymmetry is part of
// the rule set.
func (g *Game) randomDraw() {
	for seat, gp := range g.seats {
		if gp.Finished() {
			continue
		}
		g.drawCards(seat, 1+g.rng.Intn(5))
	}
}

// rotateHands passes every active seat's hand one seat along the current
// direction of play.
func (g *Game) rotateHands() {
	actives := make([]int, 0, len(g.seats))
	for seat, gp := range g.seats {
		if !gp.Finished() {
			actives = append(actives, seat)
		}
	}
	if len(actives) < 2 {
		return
	}
	moved := make(map[int]*Hand, len(actives))
	for _, seat := range actives {
		moved[g.nextActiveFrom(seat)] = g.seats[seat].hand
	}
	for seat, hand := range moved {
		g.seats[seat].hand = hand
	}
}

// swapHands exchanges the current seat's hand with the target seat's.
func (g *Game) swapHands(target int) {
	current := g.cycler.Current()
	g.seats[current].hand, g.seats[target].hand = g.seats[target].hand, g.seats[current].hand
}

// validSwapTarget reports whether a seven-swap target is usable: a seated
// opponent still holding cards.
func (g *Game) validSwapTarget(target int) bool {
	if target < 0 || target >= len(g.seats) || target == g.cycler.Current() {
		return false
	}
	return !g.seats[target].Finished()
}

// drawCards moves up to count cards from the deck into the seat's hand,
// recycling the discard pile as needed, and reports how many arrived.
func (g *Game) drawCards(seat int, count int) int {
	drawn := 0
	for i := 0; i < count; i++ {
		if g.deck.Empty() && !g.recycle() {
			break
		}
		g.seats[seat].hand.Insert(g.deck.DrawOne())
		g.seats[seat].CardsPickedUp++
		drawn++
	}
	if drawn > 0 {
		g.bus.CardsDrawn.Emit(event.CardsDrawnPayload{
			Seat:       seat,
			PlayerName: g.players[seat].Name,
			Count:      drawn,
		})
	}
	return drawn
}

// recycle rebuilds the deck from the discard pile, leaving the active card
// in place. Fails when there is nothing under the active card.
func (g *Game) recycle() bool {
	if g.pile.Size() < 2 {
		return false
	}
	g.deck.Add(g.pile.TakeAllButTop())
	g.deck.Shuffle()
	return true
}

// nextActiveFrom walks from the seat in the current direction to the next
// seat still in the round.
func (g *Game) nextActiveFrom(seat int) int {
	next := g.cycler.Peek(seat)
	for g.seats[next].Finished() && next != seat {
		next = g.cycler.Peek(next)
	}
	return next
}
