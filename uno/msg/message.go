package msg

import (
	"fmt"
	"strings"

	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/card/color"
	"github.com/uno-arena/server/uno/event"
	"github.com/uno-arena/server/uno/game"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s!!!",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return Sprintfln("It's %s's turn! ", playerName)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s! ", playerName)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, playedCard card.Card) string {
	return Sprintfln("%s played %s! ", playerName, playedCard)
}

func (m MessageWriter) PlayerPickedColor(playerName string, pickedColor color.Color) string {
	return Sprintfln("%s picked color %s! ", playerName, pickedColor)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return Sprintfln("%s drew a card! ", playerName)
	}
	return Sprintfln("%s drew %d cards! ", playerName, amount)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped! ", playerName)
}

func (m MessageWriter) PlayerIsThinking(playerName string) string {
	return Sprintfln("%s is thinking... ", playerName)
}

func (m MessageWriter) PlayerFinished(playerName string) string {
	return Sprintfln("%s has no cards left! ", playerName)
}

// Table renders the acting player's view of the game: the active card,
// the color in force and everyone's card counts.
func (m MessageWriter) Table(g *game.Game) string {
	lines := make([]string, 0, g.NumPlayers()+2)
	lines = append(lines, fmt.Sprintf("Top card: %s  Active color: %s", g.TopCard(), g.ActiveColor()))
	if pending := g.PendingDraw(); pending > 0 {
		lines = append(lines, fmt.Sprintf("Pending draw: %d cards! Stack a draw card or pick them up.", pending))
	}
	for seat := 0; seat < g.NumPlayers(); seat++ {
		marker := "  "
		if seat == g.Current() {
			marker = "->"
		}
		lines = append(lines, fmt.Sprintf("%s %-20s %d cards", marker, g.PlayerAt(seat).Name, g.SeatAt(seat).HandSize()))
	}
	return Sprintlns(lines)
}

func (m MessageWriter) Hand(cards []card.Card) string {
	painted := make([]string, 0, len(cards))
	for _, c := range cards {
		painted = append(painted, c.String())
	}
	return Sprintfln("Your cards: %s", strings.Join(painted, " "))
}

// RoundResults renders the scored outcome as a table, winners first.
func (m MessageWriter) RoundResults(results []event.PlayerResult) string {
	lines := []string{
		"Round finished!",
		fmt.Sprintf("%-20s%-10s%-10s%-10s", "Name", "Rank", "Score", "Total"),
	}
	for _, result := range results {
		rank := "-"
		if result.FinishRank != game.NoRank {
			rank = fmt.Sprintf("%d", result.FinishRank+1)
		}
		lines = append(lines, fmt.Sprintf("%-20s%-10s%-10d%-10d", result.PlayerName, rank, result.Score, result.TotalScore))
	}
	return Sprintlns(lines)
}
