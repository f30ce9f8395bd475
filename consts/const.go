package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateJoin
	StateCreate
	StateWaiting
	StatePlaying
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	MinPlayers = 2
	MaxPlayers = 4

	RoomStateWaiting = 1
	RoomStateRunning = 2

	PlayTimeout    = 40 * time.Second
	AuthTimeout    = 3 * time.Second
	RoomSweepEvery = time.Minute
)

var RoomStates = map[int]string{
	RoomStateWaiting: "Waiting",
	RoomStateRunning: "Running",
}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist                  = NewErr(1, true, "Exist. ")
	ErrorsChanClosed             = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout                = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid           = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail               = NewErr(1, true, "Auth fail. ")
	ErrorsRoomInvalid            = NewErr(1, true, "Room invalid. ")
	ErrorsRoomPlayersIsFull      = NewErr(1, false, "Room players is full. ")
	ErrorsJoinFailForRoomRunning = NewErr(1, false, "Join fail, room is running. ")
	ErrorsPlayersInvalid         = NewErr(1, false, "A table seats 2 to 4 players. ")
	ErrorsRobotsInvalid          = NewErr(1, false, "Robots invalid. ")
	ErrorsRoomNotRunning         = NewErr(1, false, "Room is not running. ")
)
