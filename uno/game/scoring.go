package game

import (
	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/event"
)

// HandScore is the official point value of a set of cards: face value for
// numbers, 20 for colored action cards, 50 for wilds.
func HandScore(cards []card.Card) int {
	total := 0
	for _, c := range cards {
		total += c.ScoringValue()
	}
	return total
}

// finishRound freezes the round, scores every seat under the configured
// system and publishes the results. Lower is better in both systems.
func (g *Game) finishRound() {
	if g.finished {
		return
	}
	g.finished = true

	g.results = g.results[:0]
	for seat, gp := range g.seats {
		score := 0
		switch g.opts.Scoring {
		case ScoringBasic:
			// Placement scoring: your finishing rank, or the full table
			// size if you never went out.
			if gp.FinishRank == NoRank {
				score = len(g.seats)
			} else {
				score = gp.FinishRank
			}
		case ScoringOfficial:
			score = HandScore(gp.hand.Cards())
		}
		gp.Score = score
		g.players[seat].Score += score

		g.results = append(g.results, event.PlayerResult{
			Seat:       seat,
			PlayerName: g.players[seat].Name,
			Score:      score,
			TotalScore: g.players[seat].Score,
			FinishRank: gp.FinishRank,
			CardsLeft:  gp.hand.Size(),
		})
	}

	g.bus.RoundFinished.Emit(event.RoundFinishedPayload{Results: g.results})
}
