package game

import (
	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/card/color"
)

// PlayStatus is the outcome of a play intent. Exactly one status is
// returned; when several conditions hold the earlier constant wins.
type PlayStatus int

const (
	StatusOk PlayStatus = iota
	StatusNotInHand
	StatusInDiscardPile
	StatusWrongColor
	StatusDraw4NotAllowed
	StatusMustDraw
	StatusCancelled
	StatusWrongActor
	StatusRoundOver
)

var playStatusNames = map[PlayStatus]string{
	StatusOk:              "ok",
	StatusNotInHand:       "card is not in your hand",
	StatusInDiscardPile:   "card is already in the discard pile",
	StatusWrongColor:      "card matches neither the color nor the face",
	StatusDraw4NotAllowed: "draw four is only allowed with no matching color in hand",
	StatusMustDraw:        "a pending draw must be stacked on or picked up",
	StatusCancelled:       "play cancelled",
	StatusWrongActor:      "that seat is not yours to play",
	StatusRoundOver:       "the round is over",
}

func (s PlayStatus) String() string {
	return playStatusNames[s]
}

// PickStatus is the outcome of a voluntary pickup.
type PickStatus int

const (
	PickOk PickStatus = iota
	PickWrongActor
	PickDeckExhausted
	PickRoundOver
)

var pickStatusNames = map[PickStatus]string{
	PickOk:            "ok",
	PickWrongActor:    "that seat is not yours to play",
	PickDeckExhausted: "no cards left to draw",
	PickRoundOver:     "the round is over",
}

func (s PickStatus) String() string {
	return pickStatusNames[s]
}

// CheckPlayability reports whether the current seat may legally play the
// card. Membership is checked first so a foreign card never leaks a rule
// verdict; the discard pile is consulted to tell the two apart.
func (g *Game) CheckPlayability(c card.Card) PlayStatus {
	gp := g.seats[g.cycler.Current()]
	if !gp.hand.Contains(c) {
		if g.pile.Contains(c) {
			return StatusInDiscardPile
		}
		return StatusNotInHand
	}
	// A pending draw can only be answered in kind: stack another draw
	// card on it, or pick the whole stack up.
	if g.pending.toDraw > 0 && c.Face != card.Draw2 && c.Face != card.Draw4 {
		return StatusMustDraw
	}
	if c.Color != color.Wild && c.Color != g.ActiveColor() && c.Face != g.ActiveFace() {
		return StatusWrongColor
	}
	if c.Face == card.Draw4 && !g.opts.AllowDraw4Always && gp.hand.HasColor(g.ActiveColor()) {
		return StatusDraw4NotAllowed
	}
	return StatusOk
}

// ActiveColor is the color a play must match: the chosen wild color when
// the active card is wild, the card's own color otherwise.
func (g *Game) ActiveColor() color.Color {
	top := g.pile.Top()
	if top.Color == color.Wild {
		return g.wildColor
	}
	return top.Color
}

func (g *Game) ActiveFace() card.Face {
	return g.pile.Top().Face
}
