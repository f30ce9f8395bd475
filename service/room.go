package service

import (
	"sync"
	"time"

	"github.com/ratel-online/core/log"

	"github.com/uno-arena/server/consts"
	"github.com/uno-arena/server/uno/game"
)

// Room is one table. It holds the lobby bookkeeping, the rule options and,
// while a round runs, the engine aggregate plus the seat assignment that
// ties connected players and bots to engine seats.
type Room struct {
	sync.Mutex

	ID         int64
	State      int
	Players    int
	Robots     int
	RobotTier  game.PlayerType
	Creator    int64
	ActiveTime time.Time
	Options    game.Options

	Game         *game.Game
	Seats        []*game.Player
	seatByPlayer map[int64]int
}

// SeatOf maps a connected player to their engine seat, -1 when the player
// is not seated in the running round.
func (room *Room) SeatOf(playerID int64) int {
	if seat, ok := room.seatByPlayer[playerID]; ok {
		return seat
	}
	return -1
}

// Seat records a player's engine seat for the running round.
func (room *Room) Seat(playerID int64, seat int) {
	if room.seatByPlayer == nil {
		room.seatByPlayer = map[int64]int{}
	}
	room.seatByPlayer[playerID] = seat
}

// EndRound tears the running round down and puts the room back in the
// lobby. Seats stay so cumulative scores carry into the next round.
func (room *Room) EndRound() {
	room.Game = nil
	room.seatByPlayer = nil
	room.State = consts.RoomStateWaiting
}

func (room *Room) removePlayer(player *Player) {
	if room == nil || player == nil {
		return
	}
	room.ActiveTime = time.Now()
	playerIds := getRoomPlayers(room.ID)
	if _, ok := playerIds[player.ID]; ok {
		room.Players--
		player.RoomID = 0
		delete(playerIds, player.ID)
		if len(playerIds) > 0 && room.Creator == player.ID {
			for k := range playerIds {
				room.Creator = k
				break
			}
		}
	}
	if len(playerIds) == 0 {
		room.delete()
	}
}

// Cancel removes the room when nobody in it is still online, or when it
// has sat idle for a day.
func (room *Room) Cancel() {
	if room.ActiveTime.Add(24 * time.Hour).Before(time.Now()) {
		log.Infof("room %d is timeout 24 hours, removed.\n", room.ID)
		room.delete()
		return
	}
	living := false
	for id := range getRoomPlayers(room.ID) {
		if player := getPlayer(id); player != nil && player.online {
			living = true
			break
		}
	}
	if !living {
		log.Infof("room %d is not living, removed.\n", room.ID)
		room.delete()
	}
}

func (room *Room) broadcast(msg string, exclude ...int64) {
	room.ActiveTime = time.Now()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for playerId := range getRoomPlayers(room.ID) {
		if player := getPlayer(playerId); player != nil && !excludeSet[playerId] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

func (room *Room) delete() {
	if room != nil {
		rooms.Del(room.ID)
		roomPlayers.Del(room.ID)
	}
}
