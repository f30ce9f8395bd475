package game

import "github.com/uno-arena/server/uno/card"

// PlayerType labels who drives a seat.
type PlayerType int

const (
	Human PlayerType = iota
	BasicComputer
	SmartComputer
)

// Player is the cross-round identity record. The table layer owns it; the
// engine only references it and adds to its cumulative score.
type Player struct {
	Name  string
	Type  PlayerType
	Team  int
	Score int
}

func (p *Player) IsComputer() bool {
	return p.Type != Human
}

// NoRank marks a seat that has not emptied its hand yet.
const NoRank = -1

// GamePlayer is one seat's per-round state: the sorted hand, counters, the
// round score and the finish rank.
type GamePlayer struct {
	Player *Player

	hand          *Hand
	CardsPickedUp int
	CardsPlayed   int
	TurnsTaken    int
	Score         int
	FinishRank    int
}

func newGamePlayer(p *Player) *GamePlayer {
	return &GamePlayer{
		Player:     p,
		hand:       NewHand(),
		FinishRank: NoRank,
	}
}

// Finished is the single derived predicate for "out of the round": the hand
// is empty or a rank has been assigned. It is never stored redundantly.
func (gp *GamePlayer) Finished() bool {
	return gp.hand.Empty() || gp.FinishRank != NoRank
}

func (gp *GamePlayer) Hand() []card.Card {
	return gp.hand.Cards()
}

func (gp *GamePlayer) HandSize() int {
	return gp.hand.Size()
}
