package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uno-arena/server/uno/game"
)

func TestLoad_missing_file_uses_defaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":9998", conf.Server.TCPAddr)
	assert.Equal(t, game.DefaultOptions().CardsPerPlayer, conf.Game.CardsPerPlayer)
	assert.Equal(t, game.ScoringOfficial, conf.Options().Scoring)
}

func TestLoad_reads_yaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  tcp_addr: ":7001"
game:
  cards_per_player: 5
  swap_hands_on_seven: true
  scoring: basic
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7001", conf.Server.TCPAddr)
	assert.Equal(t, ":9997", conf.Server.WSAddr)

	opts := conf.Options()
	assert.Equal(t, 5, opts.CardsPerPlayer)
	assert.True(t, opts.SwapHandsOnSeven)
	assert.Equal(t, game.ScoringBasic, opts.Scoring)
}

func TestLoad_rejects_garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
