package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/card/color"
	"github.com/uno-arena/server/uno/event"
)

var (
	ErrPlayerCount   = errors.New("a table seats 2 to 4 players")
	ErrHandSize      = errors.New("cards per player must be positive")
	ErrDeckExhausted = errors.New("deck exhausted while dealing")
)

// Game is the aggregate root for one round. It exclusively owns the deck,
// the discard pile and every seat's hand; the Player identity records are
// referenced, never owned. A Game is created per round and discarded after
// scoring.
type Game struct {
	players []*Player
	seats   []*GamePlayer
	deck    *Deck
	pile    *Pile
	cycler  *Cycler
	opts    Options
	rng     *rand.Rand
	bus     *event.Bus

	wildColor color.Color
	pending   pendingEffects
	finished  bool
	results   []event.PlayerResult
}

// StartGame builds and deals a round: shuffled deck, round-robin deal,
// non-wild starting card. The starting card's action is not applied until
// Begin so the presentation layer can subscribe to notifications first.
// Pass a nil rng to seed from the clock.
func StartGame(players []*Player, opts Options, rng *rand.Rand) (*Game, error) {
	if len(players) < 2 || len(players) > 4 {
		return nil, ErrPlayerCount
	}
	if opts.CardsPerPlayer <= 0 {
		return nil, ErrHandSize
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		players: players,
		seats:   make([]*GamePlayer, 0, len(players)),
		deck:    NewDeck(rng),
		pile:    NewPile(),
		cycler:  NewCycler(len(players)),
		opts:    opts,
		rng:     rng,
		bus:     event.NewBus(),
	}
	for _, p := range players {
		g.seats = append(g.seats, newGamePlayer(p))
	}

	// One card per seat per pass, in seating order.
	for i := 0; i < opts.CardsPerPlayer; i++ {
		for _, gp := range g.seats {
			if g.deck.Empty() {
				return nil, ErrDeckExhausted
			}
			gp.hand.Insert(g.deck.DrawOne())
		}
	}

	// Flip the starting card, burying wilds until a colored card shows.
	for {
		if g.deck.Empty() {
			return nil, ErrDeckExhausted
		}
		c := g.deck.DrawOne()
		g.pile.Add(c)
		if c.Color != color.Wild {
			break
		}
	}

	return g, nil
}

// Begin applies the starting card's action (a Skip can cost seat zero its
// first turn, a Draw2 queues a pending draw, and so on) and opens the
// first turn.
func (g *Game) Begin() {
	first := g.pile.Top()
	// A seven flipped at setup has no actor to ask; swap with the
	// smallest opposing hand as a computer would.
	target := NoSwapTarget
	if EffectOf(first.Face, g.opts) == EffectSwapHands {
		target = g.smallestOpposingHand()
	}
	g.applyEffect(EffectOf(first.Face, g.opts), target)
	g.settleOpening()
}

// Events is the notification surface for the presentation layer.
func (g *Game) Events() *event.Bus {
	return g.bus
}

func (g *Game) Options() Options {
	return g.opts
}

// Current is the acting seat.
func (g *Game) Current() int {
	return g.cycler.Current()
}

func (g *Game) CurrentPlayer() *Player {
	return g.players[g.cycler.Current()]
}

func (g *Game) NumPlayers() int {
	return len(g.players)
}

func (g *Game) PlayerAt(seat int) *Player {
	return g.players[seat]
}

// SeatAt exposes a seat's per-round record for the query surface.
func (g *Game) SeatAt(seat int) *GamePlayer {
	return g.seats[seat]
}

// HandOf is the full hand view, for the owning seat and for debugging.
// Opponents see only HandSizes.
func (g *Game) HandOf(seat int) []card.Card {
	return g.seats[seat].Hand()
}

func (g *Game) HandSizes() []int {
	sizes := make([]int, len(g.seats))
	for seat, gp := range g.seats {
		sizes[seat] = gp.hand.Size()
	}
	return sizes
}

func (g *Game) TopCard() card.Card {
	return g.pile.Top()
}

// PendingDraw is the accumulated draw stack the acting seat must answer,
// zero when no draw card is outstanding.
func (g *Game) PendingDraw() int {
	return g.pending.toDraw
}

// Finished reports whether the round has ended and been scored.
func (g *Game) Finished() bool {
	return g.finished
}

// Results is the scored outcome, available once the round has finished.
func (g *Game) Results() []event.PlayerResult {
	return g.results
}

func (g *Game) finishedCount() int {
	count := 0
	for _, gp := range g.seats {
		if gp.Finished() {
			count++
		}
	}
	return count
}

// smallestOpposingHand picks the opponent holding the fewest cards, ties
// broken by the lowest seat index.
func (g *Game) smallestOpposingHand() int {
	current := g.cycler.Current()
	best, bestSize := NoSwapTarget, int(^uint(0)>>1)
	for seat, gp := range g.seats {
		if seat == current || gp.Finished() {
			continue
		}
		if gp.hand.Size() < bestSize {
			best, bestSize = seat, gp.hand.Size()
		}
	}
	return best
}
