package game

import (
	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/card/color"
)

// Snapshot is a read-only view of the table from the acting seat. It is
// the only thing an Agent ever sees, so a strategy cannot reach into live
// game state.
type Snapshot struct {
	Seat        int
	Hand        []card.Card
	Playable    []card.Card
	TopCard     card.Card
	ActiveColor color.Color
	ActiveFace  card.Face
	PendingDraw int
	HandCounts  []int
	Finished    []bool
	Clockwise   bool
}

// Agent decides a computer seat's moves from a snapshot. ChooseCard
// reports false to draw instead of playing.
type Agent interface {
	ChooseCard(s Snapshot) (card.Card, bool)
	ChooseColor(s Snapshot) color.Color
	ChooseSwapTarget(s Snapshot) int
}

// Snapshot captures the acting seat's view of the table.
func (g *Game) Snapshot() Snapshot {
	seat := g.cycler.Current()
	hand := g.seats[seat].Hand()
	playable := make([]card.Card, 0, len(hand))
	for _, c := range hand {
		if g.CheckPlayability(c) == StatusOk {
			playable = append(playable, c)
		}
	}
	finished := make([]bool, len(g.seats))
	for i, gp := range g.seats {
		finished[i] = gp.Finished()
	}
	return Snapshot{
		Seat:        seat,
		Hand:        hand,
		Playable:    playable,
		TopCard:     g.pile.Top(),
		ActiveColor: g.ActiveColor(),
		ActiveFace:  g.ActiveFace(),
		PendingDraw: g.PendingDraw(),
		HandCounts:  g.HandSizes(),
		Finished:    finished,
		Clockwise:   g.cycler.Clockwise(),
	}
}
