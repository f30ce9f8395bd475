package card

import (
	"fmt"

	"github.com/uno-arena/server/uno/card/color"
)

// Face is a card's face value. Zero through Nine are the numeric faces;
// the rest are action faces. NoFace only appears on the plain wild card.
type Face int

const (
	Zero Face = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	Draw2
	RandomDraw
	SkipAll
	TNT
	Draw4
	NoFace
)

const (
	actionScore = 20
	wildScore   = 50
)

var faceLabels = map[Face]string{
	Skip:       "(/)",
	Reverse:    "<=>",
	Draw2:      "+2!",
	RandomDraw: "?!?",
	SkipAll:    "(//)",
	TNT:        "TNT",
	Draw4:      "+4!",
	NoFace:     "(*)",
}

func (f Face) IsNumber() bool {
	return f >= Zero && f <= Nine
}

func (f Face) String() string {
	if f.IsNumber() {
		return fmt.Sprintf("%d", int(f))
	}
	return faceLabels[f]
}

// Card is an immutable color/face pair. The same value may exist twice in
// the construction multiset; zone bookkeeping moves one instance at a time.
type Card struct {
	Color color.Color
	Face  Face
}

func New(c color.Color, f Face) Card {
	return Card{Color: c, Face: f}
}

// SortingValue orders a hand by color first, then face. Wilds sort last.
func (c Card) SortingValue() int {
	return int(c.Color)*100 + int(c.Face)
}

// ScoringValue is the card's worth when left in a losing hand: numeric
// cards score their face, action cards a flat 20, wilds a flat 50.
func (c Card) ScoringValue() int {
	switch {
	case c.Color == color.Wild:
		return wildScore
	case c.Face.IsNumber():
		return int(c.Face)
	default:
		return actionScore
	}
}

func (c Card) String() string {
	if c.Face.IsNumber() {
		return c.Color.Paintf("[%d]", int(c.Face))
	}
	return c.Color.Paint(faceLabels[c.Face])
}

// BuildDeck generates the full construction multiset: per color one Zero
// and two copies of every other colored face, plus four plain wilds and
// four wild Draw4s. This is the house variant the game has always shipped
// with, not the retail 108-card set; do not "fix" the counts.
func BuildDeck() []Card {
	deck := make([]Card, 0, 132)
	for _, col := range color.Playable {
		for f := Zero; f <= TNT; f++ {
			deck = append(deck, New(col, f))
			if f != Zero {
				deck = append(deck, New(col, f))
			}
		}
	}
	for i := 0; i < 4; i++ {
		deck = append(deck, New(color.Wild, NoFace))
		deck = append(deck, New(color.Wild, Draw4))
	}
	return deck
}
