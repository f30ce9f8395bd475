package player

import (
	"math/rand"

	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/card/color"
	"github.com/uno-arena/server/uno/game"
)

// basicPlayer is the easy tier: any legal card is as good as any other.
type basicPlayer struct {
	rng *rand.Rand
}

func NewBasicPlayer(rng *rand.Rand) game.Agent {
	return basicPlayer{rng: rng}
}

func (p basicPlayer) ChooseCard(s game.Snapshot) (card.Card, bool) {
	if len(s.Playable) == 0 {
		return card.Card{}, false
	}
	return s.Playable[p.rng.Intn(len(s.Playable))], true
}

func (p basicPlayer) ChooseColor(s game.Snapshot) color.Color {
	return color.Playable[p.rng.Intn(len(color.Playable))]
}

func (p basicPlayer) ChooseSwapTarget(s game.Snapshot) int {
	return fewestCardsOpponent(s)
}

// fewestCardsOpponent picks the still-playing opponent holding the fewest
// cards, ties broken by the lowest seat index.
func fewestCardsOpponent(s game.Snapshot) int {
	best, bestCount := game.NoSwapTarget, int(^uint(0)>>1)
	for seat, count := range s.HandCounts {
		if seat == s.Seat || s.Finished[seat] {
			continue
		}
		if count < bestCount {
			best, bestCount = seat, count
		}
	}
	return best
}
