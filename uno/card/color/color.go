package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Color identifies one of the four playable card colors, the colorless
// wild marker, or None when no color has been chosen yet.
type Color int

const (
	None Color = iota
	Red
	Yellow
	Green
	Blue
	Wild
)

var names = map[Color]string{
	None:   "none",
	Red:    "red",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Wild:   "wild",
}

var paints = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Wild:   color.New(color.FgHiMagenta).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// Playable lists the colors a wild card may take, in seating-chart order.
var Playable = []Color{Red, Yellow, Green, Blue}

func (c Color) Name() string {
	return names[c]
}

func (c Color) Paint(text string) string {
	paint := paints[c]
	if paint == nil {
		return text
	}
	return paint(text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	return c.Paint(fmt.Sprintf(format, args...))
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// ByName resolves a player-typed color name.
func ByName(name string) (Color, error) {
	for _, c := range Playable {
		if names[c] == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
