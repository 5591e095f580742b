package env

import "slot_engine/internal/config"

type gamesConfig struct {
	dir         string
	statsWindow int
}

func NewGamesConfig() (config.GamesConfig, error) {
	s, err := process()
	if err != nil {
		return nil, err
	}
	return &gamesConfig{dir: s.GamesDir, statsWindow: s.StatsWindow}, nil
}

func (cfg *gamesConfig) Dir() string      { return cfg.dir }
func (cfg *gamesConfig) StatsWindow() int { return cfg.statsWindow }
