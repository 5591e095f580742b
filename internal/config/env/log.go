package env

import "slot_engine/internal/config"

type logConfig struct {
	env   string
	level string
}

func NewLogConfig() (config.LogConfig, error) {
	s, err := process()
	if err != nil {
		return nil, err
	}
	return &logConfig{env: s.AppEnv, level: s.LogLevel}, nil
}

func (cfg *logConfig) Env() string   { return cfg.env }
func (cfg *logConfig) Level() string { return cfg.level }
