package player

import (
	"math/rand"

	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/card/color"
	"github.com/uno-arena/server/uno/game"
)

// smartPlayer is the harder tier. It keeps its strongest color alive and
// sheds expensive cards first: prefer cards matching the active color,
// then the active face, then wilds; within the preferred set play the
// highest sorting value.
type smartPlayer struct {
	rng *rand.Rand
}

func NewSmartPlayer(rng *rand.Rand) game.Agent {
	return smartPlayer{rng: rng}
}

func (p smartPlayer) ChooseCard(s game.Snapshot) (card.Card, bool) {
	if len(s.Playable) == 0 {
		return card.Card{}, false
	}

	candidates := filterCards(s.Playable, func(c card.Card) bool { return c.Color == s.ActiveColor })
	if len(candidates) == 0 {
		candidates = filterCards(s.Playable, func(c card.Card) bool { return c.Face == s.ActiveFace && c.Color != color.Wild })
	}
	if len(candidates) == 0 {
		candidates = filterCards(s.Playable, func(c card.Card) bool { return c.Color == color.Wild })
	}
	if len(candidates) == 0 {
		candidates = s.Playable
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.SortingValue() > best.SortingValue() {
			best = c
		}
	}
	return best, true
}

// ChooseColor picks the color the hand holds the most of, breaking ties
// uniformly among the co-leaders.
func (p smartPlayer) ChooseColor(s game.Snapshot) color.Color {
	counts := make(map[color.Color]int, len(color.Playable))
	for _, c := range s.Hand {
		if c.Color != color.Wild {
			counts[c.Color]++
		}
	}

	most := 0
	for _, amount := range counts {
		if amount > most {
			most = amount
		}
	}
	if most == 0 {
		return color.Playable[p.rng.Intn(len(color.Playable))]
	}

	leaders := make([]color.Color, 0, len(color.Playable))
	for _, col := range color.Playable {
		if counts[col] == most {
			leaders = append(leaders, col)
		}
	}
	return leaders[p.rng.Intn(len(leaders))]
}

func (p smartPlayer) ChooseSwapTarget(s game.Snapshot) int {
	return fewestCardsOpponent(s)
}

func filterCards(cards []card.Card, keep func(card.Card) bool) []card.Card {
	kept := make([]card.Card, 0, len(cards))
	for _, c := range cards {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	return kept
}
