package state

import (
	"bytes"
	"fmt"

	"github.com/uno-arena/server/config"
	"github.com/uno-arena/server/consts"
	"github.com/uno-arena/server/service"
	"github.com/uno-arena/server/uno/game"
)

type create struct{}

func (s *create) Next(player *service.Player) (consts.StateID, error) {
	buf := bytes.Buffer{}
	buf.WriteString("New Room\n")
	buf.WriteString(fmt.Sprintf("Robots (0-%d): \n", consts.MaxPlayers-1))
	err := player.WriteString(buf.String())
	if err != nil {
		return 0, player.WriteError(err)
	}
	robots, err := player.AskForInt()
	if err != nil {
		return 0, player.WriteError(err)
	}
	if robots < 0 || robots > consts.MaxPlayers-1 {
		return 0, player.WriteError(consts.ErrorsRobotsInvalid)
	}

	tier := game.BasicComputer
	if robots > 0 {
		err = player.WriteString("Robot tier: 1.Basic 2.Smart\n")
		if err != nil {
			return 0, player.WriteError(err)
		}
		selected, err := player.AskForInt()
		if err != nil {
			return 0, player.WriteError(err)
		}
		switch selected {
		case 1:
			tier = game.BasicComputer
		case 2:
			tier = game.SmartComputer
		default:
			return 0, player.WriteError(consts.ErrorsInputInvalid)
		}
	}

	room := service.CreateRoom(player.ID, config.Current().Options())
	room.Robots = robots
	room.RobotTier = tier
	err = service.JoinRoom(room.ID, player.ID)
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateWaiting, nil
}

func (*create) Exit(player *service.Player) consts.StateID {
	return consts.StateHome
}
