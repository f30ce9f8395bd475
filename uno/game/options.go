package game

// ScoringSystem selects how a finished round is scored.
type ScoringSystem int

const (
	// ScoringBasic scores finishers by rank and everyone else the player
	// count.
	ScoringBasic ScoringSystem = iota
	// ScoringOfficial scores each hand's remaining card values.
	ScoringOfficial
)

// Options is the per-round rule configuration. The engine reads everything
// except ComputerMoveDelayMs, which belongs to the presentation layer.
type Options struct {
	CardsPerPlayer         int
	AllowDraw4Always       bool
	SwapHandsOnZero        bool
	SwapHandsOnSeven       bool
	EnableTeams            bool
	StopAfterFirstFinisher bool
	Scoring                ScoringSystem
	ComputerMoveDelayMs    int
}

func DefaultOptions() Options {
	return Options{
		CardsPerPlayer:      7,
		Scoring:             ScoringOfficial,
		ComputerMoveDelayMs: 800,
	}
}
