package state

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/uno-arena/server/consts"
	"github.com/uno-arena/server/service"
	"github.com/uno-arena/server/uno/game"
	aiplayer "github.com/uno-arena/server/uno/player"
)

type waiting struct{}

func (s *waiting) Next(player *service.Player) (consts.StateID, error) {
	room := service.GetRoom(player.RoomID)
	if room == nil {
		return 0, consts.ErrorsExist
	}
	access, err := waitingForStart(player, room)
	if err != nil {
		return 0, err
	}
	if access {
		return consts.StatePlaying, nil
	}
	return s.Exit(player), nil
}

func (*waiting) Exit(player *service.Player) consts.StateID {
	room := service.GetRoom(player.RoomID)
	if room != nil {
		isOwner := room.Creator == player.ID
		service.LeaveRoom(room.ID, player.ID)
		service.Broadcast(room.ID, fmt.Sprintf("%s exited room! room current has %d players\n", player.Name, room.Players))
		if isOwner {
			if newOwner := service.GetPlayer(room.Creator); newOwner != nil {
				service.Broadcast(room.ID, fmt.Sprintf("%s become new owner\n", newOwner.Name))
			}
		}
	}
	return consts.StateHome
}

func waitingForStart(player *service.Player, room *service.Room) (bool, error) {
	access := false
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		signal, err := player.AskForStringWithoutTransaction(time.Second)
		if err != nil && err != consts.ErrorsTimeout {
			return access, err
		}
		if room.State == consts.RoomStateRunning {
			access = true
			break
		}
		signal = strings.ToLower(signal)
		if isLs(signal) {
			viewRoomPlayers(room, player)
		} else if (signal == "start" || signal == "s") && room.Creator == player.ID {
			if room.Players+room.Robots < consts.MinPlayers {
				_ = player.WriteError(consts.ErrorsPlayersInvalid)
				continue
			}
			room.Lock()
			err = startRound(room)
			if err != nil {
				room.Unlock()
				_ = player.WriteError(err)
				continue
			}
			room.State = consts.RoomStateRunning
			room.Unlock()
			access = true
			break
		} else if len(signal) > 0 {
			service.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, signal))
		}
	}
	return access, nil
}

// startRound seats everyone, builds the engine round and deals. Identity
// records are reused between rounds when the lineup has not changed, so
// total scores keep accumulating.
func startRound(room *service.Room) error {
	ids := make([]int64, 0, room.Players)
	for id := range service.RoomPlayers(room.ID) {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	humans := make([]*game.Player, 0, len(ids))
	for _, id := range ids {
		humans = append(humans, &game.Player{Name: service.GetPlayer(id).Name, Type: game.Human})
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	seats := room.Seats
	if !sameLineup(seats, humans, room.Robots, room.RobotTier) {
		seats = append(humans, aiplayer.CreateBots(room.Robots, room.RobotTier, rng)...)
	}

	g, err := game.StartGame(seats, room.Options, rng)
	if err != nil {
		return err
	}
	for seat, id := range ids {
		room.Seat(id, seat)
	}
	room.Seats = seats
	room.Game = g
	g.Events().Subscribe(&broadcaster{room: room})
	g.Begin()
	return nil
}

func sameLineup(previous, humans []*game.Player, robots int, tier game.PlayerType) bool {
	if len(previous) != len(humans)+robots {
		return false
	}
	for i, human := range humans {
		if previous[i].Name != human.Name || previous[i].Type != game.Human {
			return false
		}
	}
	for _, bot := range previous[len(humans):] {
		if bot.Type != tier {
			return false
		}
	}
	return true
}

func viewRoomPlayers(room *service.Room, currPlayer *service.Player) {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Room ID: %d\n", room.ID))
	buf.WriteString(fmt.Sprintf("%-20s%-10s%-10s\n", "Name", "Score", "Title"))
	for playerId := range service.RoomPlayers(room.ID) {
		title := "player"
		if playerId == room.Creator {
			title = "owner"
		}
		player := service.GetPlayer(playerId)
		buf.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", player.Name, player.Score, title))
	}
	buf.WriteString(fmt.Sprintf("Robots: %d\n", room.Robots))
	_ = currPlayer.WriteString(buf.String())
}
