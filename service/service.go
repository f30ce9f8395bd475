package service

import (
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"

	"github.com/uno-arena/server/consts"
	"github.com/uno-arena/server/uno/game"
)

var (
	roomIds     int64
	players     = hashmap.New()
	rooms       = hashmap.New()
	roomPlayers = hashmap.New()
)

func init() {
	async.Async(func() {
		for range time.Tick(consts.RoomSweepEvery) {
			sweepRooms()
		}
	})
}

// Connected registers an authenticated connection and hands back its
// player record.
func Connected(conn *network.Conn, info *model.AuthInfo) *Player {
	player := &Player{
		ID:        info.ID,
		SessionID: uuid.NewString(),
		Name:      info.Name,
		Score:     info.Score,
	}
	player.Conn(conn)
	players.Set(info.ID, player)
	return player
}

func GetPlayer(playerId int64) *Player {
	return getPlayer(playerId)
}

func getPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func CreateRoom(creator int64, opts game.Options) *Room {
	room := &Room{
		ID:         atomic.AddInt64(&roomIds, 1),
		State:      consts.RoomStateWaiting,
		Creator:    creator,
		ActiveTime: time.Now(),
		RobotTier:  game.BasicComputer,
		Options:    opts,
	}
	rooms.Set(room.ID, room)
	roomPlayers.Set(room.ID, map[int64]bool{})
	return room
}

func GetRooms() []*Room {
	list := make([]*Room, 0)
	rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	return list
}

func GetRoom(roomId int64) *Room {
	return getRoom(roomId)
}

func getRoom(roomId int64) *Room {
	if v, ok := rooms.Get(roomId); ok {
		return v.(*Room)
	}
	return nil
}

func getRoomPlayers(roomId int64) map[int64]bool {
	if v, ok := roomPlayers.Get(roomId); ok {
		return v.(map[int64]bool)
	}
	return nil
}

// RoomPlayers is the set of connected player ids seated in the room.
func RoomPlayers(roomId int64) map[int64]bool {
	return getRoomPlayers(roomId)
}

func JoinRoom(roomId, playerId int64) error {
	player := getPlayer(playerId)
	if player == nil {
		return consts.ErrorsExist
	}
	room := getRoom(roomId)
	if room == nil {
		return consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.Players+room.Robots >= consts.MaxPlayers {
		return consts.ErrorsRoomPlayersIsFull
	}
	getRoomPlayers(roomId)[playerId] = true
	room.Players++
	room.ActiveTime = time.Now()
	player.RoomID = roomId
	return nil
}

func LeaveRoom(roomId, playerId int64) {
	room := getRoom(roomId)
	player := getPlayer(playerId)
	if room == nil || player == nil {
		return
	}
	room.Lock()
	defer room.Unlock()
	room.removePlayer(player)
}

func Broadcast(roomId int64, msg string, exclude ...int64) {
	room := getRoom(roomId)
	if room == nil {
		return
	}
	room.broadcast(msg, exclude...)
}

func BroadcastChat(player *Player, msg string) {
	log.Infof("chat msg, player %s %s say: %s\n", player, player.IP, msg)
	Broadcast(player.RoomID, msg, player.ID)
}

func sweepRooms() {
	for _, room := range GetRooms() {
		room.Lock()
		room.Cancel()
		room.Unlock()
	}
}
