package game

import (
	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/card/color"
	"github.com/uno-arena/server/uno/event"
)

// NoSwapTarget marks an intent that has not chosen a seven-swap seat.
const NoSwapTarget = -1

// Intent is one attempt to play a card. WildColor stays color.None and
// SwapTarget stays NoSwapTarget until the acting player has answered the
// corresponding prompt.
type Intent struct {
	Card       card.Card
	WildColor  color.Color
	SwapTarget int
}

// NewIntent wraps a card with the unanswered-prompt defaults.
func NewIntent(c card.Card) Intent {
	return Intent{Card: c, WildColor: color.None, SwapTarget: NoSwapTarget}
}

// PlayCard resolves a human seat's play intent. Computer seats can only be
// moved through PlayComputerTurn; a direct request reports WrongActor. The
// call either commits the whole resolution cycle or changes nothing.
func (g *Game) PlayCard(in Intent) PlayStatus {
	if g.finished {
		return StatusRoundOver
	}
	if g.CurrentPlayer().IsComputer() {
		return StatusWrongActor
	}
	return g.resolvePlay(in)
}

// Pickup is the human seat's "draw instead of playing" intent. Under a
// live TNT flag the single pickup becomes four cards.
func (g *Game) Pickup() PickStatus {
	if g.finished {
		return PickRoundOver
	}
	if g.CurrentPlayer().IsComputer() {
		return PickWrongActor
	}
	return g.pickupCurrent()
}

// PlayComputerTurn computes and applies the current computer seat's move.
// The presentation layer calls this after its own delay; the engine never
// schedules anything itself.
func (g *Game) PlayComputerTurn(agent Agent) PlayStatus {
	if g.finished {
		return StatusRoundOver
	}
	if !g.CurrentPlayer().IsComputer() {
		return StatusWrongActor
	}
	snap := g.Snapshot()
	chosen, ok := agent.ChooseCard(snap)
	if !ok {
		if g.pickupCurrent() == PickDeckExhausted {
			// Nothing to play and nothing to draw: the round cannot move.
			g.EndRound()
		}
		return StatusOk
	}
	in := NewIntent(chosen)
	if chosen.Color == color.Wild {
		in.WildColor = agent.ChooseColor(snap)
	}
	if EffectOf(chosen.Face, g.opts) == EffectSwapHands {
		in.SwapTarget = agent.ChooseSwapTarget(snap)
	}
	return g.resolvePlay(in)
}

// EndRound finalizes scoring early, for when the table cannot continue
// (both draw sources empty). Safe to call once; later calls are no-ops.
func (g *Game) EndRound() {
	g.finishRound()
}

func (g *Game) resolvePlay(in Intent) PlayStatus {
	if st := g.CheckPlayability(in.Card); st != StatusOk {
		return st
	}
	seat := g.cycler.Current()
	gp := g.seats[seat]

	// Collect every answer the play needs before touching any zone, so a
	// missing one leaves the state exactly as it was.
	if in.Card.Color == color.Wild && in.WildColor == color.None {
		g.bus.WildColorNeeded.Emit(event.WildColorNeededPayload{
			Seat:       seat,
			PlayerName: g.players[seat].Name,
		})
		return StatusCancelled
	}
	effect := EffectOf(in.Card.Face, g.opts)
	if effect == EffectSwapHands && !g.validSwapTarget(in.SwapTarget) {
		g.bus.SwapTargetNeeded.Emit(event.SwapTargetNeededPayload{
			Seat:       seat,
			PlayerName: g.players[seat].Name,
		})
		return StatusCancelled
	}

	gp.hand.Remove(in.Card)
	g.pile.Add(in.Card)
	if in.Card.Color == color.Wild {
		g.wildColor = in.WildColor
		g.bus.ColorPicked.Emit(event.ColorPickedPayload{
			Seat:       seat,
			PlayerName: g.players[seat].Name,
			Color:      in.WildColor,
		})
	}
	g.bus.CardPlayed.Emit(event.CardPlayedPayload{
		Seat:       seat,
		PlayerName: g.players[seat].Name,
		Card:       in.Card,
	})

	// The effect runs before the finish check: a seven-swap can hand the
	// player a fresh set of cards on what looked like their last play.
	g.applyEffect(effect, in.SwapTarget)
	gp.CardsPlayed++
	if gp.hand.Empty() && gp.FinishRank == NoRank {
		gp.FinishRank = g.finishedCount() - 1
	}

	if g.roundOver() {
		g.finishRound()
		return StatusOk
	}
	g.advance()
	return StatusOk
}

// pickupCurrent resolves a draw for the acting seat. A voluntary pickup
// is one card; a pending stack is drawn whole; a live TNT flag turns the
// single card into four, or adds four on top of a stack.
func (g *Game) pickupCurrent() PickStatus {
	count := 1
	if g.pending.toDraw > 0 {
		count = g.pending.toDraw
	}
	if g.pending.tnt {
		if g.pending.toDraw > 0 {
			count += 4
		} else {
			count = 4
		}
		g.pending.tnt = false
	}
	g.pending.toDraw = 0
	if g.drawCards(g.cycler.Current(), count) == 0 {
		return PickDeckExhausted
	}
	g.advance()
	return PickOk
}

// roundOver is the termination condition: without teams the round ends
// when all but one seat has finished; with teams (or the early-stop
// option) the first finisher ends it. The asymmetry is deliberate.
func (g *Game) roundOver() bool {
	finished := g.finishedCount()
	if g.opts.EnableTeams || g.opts.StopAfterFirstFinisher {
		return finished > 0
	}
	return finished >= len(g.seats)-1
}

// advance settles the pending flags and hands the turn to the next
// eligible seat.
func (g *Game) advance() {
	if g.pending.skipAll {
		// Everyone else sits the cycle out and the player who caused it
		// gets no extra turn: play resumes one seat on.
		g.pending.skipAll = false
		g.moveToNextActive()
		g.beginTurn()
		return
	}
	g.moveToNextActive()
	if g.pending.skipNext {
		g.pending.skipNext = false
		g.emitTurnSkipped(g.cycler.Current())
		g.moveToNextActive()
	}
	g.beginTurn()
}

// settleOpening runs the skip settlement for the starting card, before
// seat zero has taken a turn. A starting draw card simply leaves its
// stack pending for seat zero to answer.
func (g *Game) settleOpening() {
	if g.pending.skipNext {
		g.pending.skipNext = false
		g.emitTurnSkipped(g.cycler.Current())
		g.moveToNextActive()
	}
	g.pending.skipAll = false
	g.beginTurn()
}

func (g *Game) moveToNextActive() {
	for {
		g.cycler.Next()
		if !g.seats[g.cycler.Current()].Finished() {
			return
		}
	}
}

func (g *Game) beginTurn() {
	seat := g.cycler.Current()
	g.seats[seat].TurnsTaken++
	if g.players[seat].IsComputer() {
		g.bus.AwaitingComputer.Emit(event.AwaitingComputerPayload{
			Seat:       seat,
			PlayerName: g.players[seat].Name,
		})
	}
}

func (g *Game) emitTurnSkipped(seat int) {
	g.bus.TurnSkipped.Emit(event.TurnSkippedPayload{
		Seat:       seat,
		PlayerName: g.players[seat].Name,
	})
}
