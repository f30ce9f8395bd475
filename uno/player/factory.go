package player

import (
	"math/rand"

	"github.com/uno-arena/server/uno/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// ForType builds the agent driving a computer seat. Human seats have no
// agent; their intents come in over the wire.
func ForType(playerType game.PlayerType, rng *rand.Rand) game.Agent {
	switch playerType {
	case game.SmartComputer:
		return NewSmartPlayer(rng)
	default:
		return NewBasicPlayer(rng)
	}
}

// CreateBots mints identity records for computer seats, with names drawn
// without repeats.
func CreateBots(amount int, playerType game.PlayerType, rng *rand.Rand) []*game.Player {
	names := append([]string(nil), botNames...)
	rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	bots := make([]*game.Player, 0, amount)
	for _, name := range names[:amount] {
		bots = append(bots, &game.Player{Name: name, Type: playerType})
	}
	return bots
}
