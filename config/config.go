package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/uno-arena/server/uno/game"
)

type Server struct {
	TCPAddr string `yaml:"tcp_addr"`
	WSAddr  string `yaml:"ws_addr"`
}

type Game struct {
	CardsPerPlayer         int    `yaml:"cards_per_player"`
	AllowDraw4Always       bool   `yaml:"allow_draw4_always"`
	SwapHandsOnZero        bool   `yaml:"swap_hands_on_zero"`
	SwapHandsOnSeven       bool   `yaml:"swap_hands_on_seven"`
	EnableTeams            bool   `yaml:"enable_teams"`
	StopAfterFirstFinisher bool   `yaml:"stop_after_first_finisher"`
	Scoring                string `yaml:"scoring"`
	ComputerMoveDelayMs    int    `yaml:"computer_move_delay_ms"`
}

type Config struct {
	Server Server `yaml:"server"`
	Game   Game   `yaml:"game"`
}

func defaults() Config {
	opts := game.DefaultOptions()
	return Config{
		Server: Server{TCPAddr: ":9998", WSAddr: ":9997"},
		Game: Game{
			CardsPerPlayer:      opts.CardsPerPlayer,
			Scoring:             "official",
			ComputerMoveDelayMs: opts.ComputerMoveDelayMs,
		},
	}
}

var loaded = defaults()

// Set installs the active configuration for the process.
func Set(conf Config) {
	loaded = conf
}

func Current() Config {
	return loaded
}

// Load reads the YAML config at path, falling back to defaults when the
// file does not exist. Unset fields keep their default values.
func Load(path string) (Config, error) {
	conf := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return conf, nil
		}
		return conf, err
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, err
	}
	if conf.Game.CardsPerPlayer <= 0 {
		conf.Game.CardsPerPlayer = defaults().Game.CardsPerPlayer
	}
	return conf, nil
}

// Options converts the config into the engine's options record.
func (c Config) Options() game.Options {
	scoring := game.ScoringOfficial
	if strings.EqualFold(c.Game.Scoring, "basic") {
		scoring = game.ScoringBasic
	}
	return game.Options{
		CardsPerPlayer:         c.Game.CardsPerPlayer,
		AllowDraw4Always:       c.Game.AllowDraw4Always,
		SwapHandsOnZero:        c.Game.SwapHandsOnZero,
		SwapHandsOnSeven:       c.Game.SwapHandsOnSeven,
		EnableTeams:            c.Game.EnableTeams,
		StopAfterFirstFinisher: c.Game.StopAfterFirstFinisher,
		Scoring:                scoring,
		ComputerMoveDelayMs:    c.Game.ComputerMoveDelayMs,
	}
}
