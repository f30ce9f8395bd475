package state

import (
	"github.com/uno-arena/server/consts"
	"github.com/uno-arena/server/service"
	"github.com/uno-arena/server/uno/msg"
)

type welcome struct{}

func (*welcome) Next(player *service.Player) (consts.StateID, error) {
	err := player.WriteString(msg.Message.Welcome())
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateHome, nil
}

func (*welcome) Exit(player *service.Player) consts.StateID {
	return 0
}
