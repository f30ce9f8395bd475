package state

import (
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"

	"github.com/uno-arena/server/consts"
	"github.com/uno-arena/server/service"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateJoin, &join{})
	register(consts.StateCreate, &create{})
	register(consts.StateWaiting, &waiting{})
	register(consts.StatePlaying, &playing{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	Next(player *service.Player) (consts.StateID, error)
	Exit(player *service.Player) consts.StateID
}

// Run drives one player's session through the state machine until an
// exit-grade error ends it.
func Run(player *service.Player) {
	defer func() {
		if err := recover(); err != nil {
			async.PrintStackTrace(err)
		}
	}()
	player.State(consts.StateWelcome)
	for {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			log.Error(err)
			break
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}

func isExit(signal string) bool {
	signal = strings.ToLower(signal)
	return signal == "e" || signal == "exit"
}

func isLs(signal string) bool {
	signal = strings.ToLower(signal)
	return signal == "ls" || signal == "v"
}
