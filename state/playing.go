package state

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/uno-arena/server/consts"
	"github.com/uno-arena/server/service"
	"github.com/uno-arena/server/uno/card"
	"github.com/uno-arena/server/uno/card/color"
	"github.com/uno-arena/server/uno/game"
	"github.com/uno-arena/server/uno/msg"
	aiplayer "github.com/uno-arena/server/uno/player"
)

const initialRune = 'A'

type runeSequence struct {
	currentRune rune
}

func (s *runeSequence) next() rune {
	if s.currentRune == 0 {
		s.currentRune = initialRune
	}
	currentRune := s.currentRune
	s.currentRune++
	return currentRune
}

type playing struct{}

func (s *playing) Next(player *service.Player) (consts.StateID, error) {
	room := service.GetRoom(player.RoomID)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsExist)
	}
	if room.Game == nil {
		return consts.StateWaiting, nil
	}
	if seat := room.SeatOf(player.ID); seat >= 0 {
		_ = player.WriteString(msg.Message.Hand(room.Game.HandOf(seat)))
	}
	for {
		if room.State == consts.RoomStateWaiting {
			return consts.StateWaiting, nil
		}
		g := room.Game
		if g == nil {
			return consts.StateWaiting, nil
		}
		if g.Finished() {
			if room.Creator == player.ID {
				room.Lock()
				room.EndRound()
				room.Unlock()
			}
			return consts.StateWaiting, nil
		}
		seat := room.SeatOf(player.ID)
		if g.Current() == seat {
			if err := playTurn(room, player, g, seat); err != nil {
				return 0, err
			}
			continue
		}
		if g.CurrentPlayer().IsComputer() && room.Creator == player.ID {
			driveComputer(room, g)
			continue
		}
		time.Sleep(200 * time.Millisecond)
	}
}

func (*playing) Exit(player *service.Player) consts.StateID {
	return consts.StateHome
}

// driveComputer makes the owner's session play the acting computer seat
// after the configured delay. The engine itself never sleeps.
func driveComputer(room *service.Room, g *game.Game) {
	time.Sleep(time.Duration(g.Options().ComputerMoveDelayMs) * time.Millisecond)
	room.Lock()
	defer room.Unlock()
	if room.Game != g || g.Finished() || !g.CurrentPlayer().IsComputer() {
		return
	}
	agent := aiplayer.ForType(g.CurrentPlayer().Type, rand.New(rand.NewSource(time.Now().UnixNano())))
	g.PlayComputerTurn(agent)
}

func playTurn(room *service.Room, player *service.Player, g *game.Game, seat int) error {
	service.Broadcast(room.ID, msg.Message.PlayerTurnStarted(player.Name), player.ID)

	hand := g.HandOf(seat)
	sequence := runeSequence{}
	options := make(map[string]card.Card, len(hand))
	lines := []string{
		msg.Message.HumanPlayerTurnStarted(player.Name) + msg.Message.Table(g),
		"Select a card to play, or 'd' to draw:",
	}
	for _, c := range hand {
		label := string(sequence.next())
		options[label] = c
		lines = append(lines, fmt.Sprintf("%s: %s", label, c))
	}
	_ = player.WriteString(msg.Sprintlns(lines))

	signal, err := player.AskForString(consts.PlayTimeout)
	if err != nil {
		if err == consts.ErrorsTimeout {
			return pickup(room, player, g, seat)
		}
		return player.WriteError(err)
	}
	if strings.EqualFold(signal, "d") {
		return pickup(room, player, g, seat)
	}
	selected, found := options[strings.ToUpper(signal)]
	if !found {
		service.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, signal))
		return nil
	}

	in := game.NewIntent(selected)
	if selected.Color == color.Wild {
		in.WildColor, err = askForColor(player)
		if err != nil {
			return player.WriteError(err)
		}
	}
	if selected.Face == card.Seven && g.Options().SwapHandsOnSeven {
		in.SwapTarget, err = askForSwapTarget(player, g, seat)
		if err != nil {
			return player.WriteError(err)
		}
	}

	room.Lock()
	status := g.PlayCard(in)
	room.Unlock()
	if status != game.StatusOk {
		_ = player.WriteString(msg.Sprintln(status))
	}
	return nil
}

func pickup(room *service.Room, player *service.Player, g *game.Game, seat int) error {
	room.Lock()
	status := g.Pickup()
	room.Unlock()
	switch status {
	case game.PickOk:
		_ = player.WriteString(msg.Message.Hand(g.HandOf(seat)))
	case game.PickDeckExhausted:
		// Both draw sources are empty, the round cannot move: score it as
		// it stands.
		service.Broadcast(room.ID, msg.Sprintln("No cards left to draw, scoring the round as it stands."))
		room.Lock()
		g.EndRound()
		room.Unlock()
	default:
		_ = player.WriteString(msg.Sprintln(status))
	}
	return nil
}

func askForColor(player *service.Player) (color.Color, error) {
	for {
		_ = player.WriteString(fmt.Sprintf(
			"Select a color: %s, %s, %s or %s ? \n",
			color.Red, color.Yellow, color.Green, color.Blue,
		))
		colorName, err := player.AskForString(consts.PlayTimeout)
		if err != nil {
			if err == consts.ErrorsTimeout {
				return color.Red, nil
			}
			return color.None, err
		}
		chosenColor, err := color.ByName(strings.ToLower(colorName))
		if err != nil {
			_ = player.WriteString(fmt.Sprintf("Unknown color '%s' \n", colorName))
			continue
		}
		return chosenColor, nil
	}
}

func askForSwapTarget(player *service.Player, g *game.Game, seat int) (int, error) {
	lines := []string{"Select a player to swap hands with:"}
	for other := 0; other < g.NumPlayers(); other++ {
		if other == seat || g.SeatAt(other).Finished() {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d: %s (%d cards)", other+1, g.PlayerAt(other).Name, g.SeatAt(other).HandSize()))
	}
	for {
		_ = player.WriteString(msg.Sprintlns(lines))
		selected, err := player.AskForInt(consts.PlayTimeout)
		if err != nil {
			if err == consts.ErrorsTimeout {
				return smallestOtherHand(g, seat), nil
			}
			return game.NoSwapTarget, err
		}
		target := selected - 1
		if target >= 0 && target < g.NumPlayers() && target != seat && !g.SeatAt(target).Finished() {
			return target, nil
		}
		_ = player.WriteString(msg.Sprintln(consts.ErrorsInputInvalid.Msg))
	}
}

func smallestOtherHand(g *game.Game, seat int) int {
	best, bestSize := game.NoSwapTarget, int(^uint(0)>>1)
	for other := 0; other < g.NumPlayers(); other++ {
		if other == seat || g.SeatAt(other).Finished() {
			continue
		}
		if size := g.SeatAt(other).HandSize(); size < bestSize {
			best, bestSize = other, size
		}
	}
	return best
}
